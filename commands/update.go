package commands

import (
	"github.com/spf13/cobra"

	"github.com/workbooktools/workbook-app-graph/workbook"
)

func newUpdateCommand() *cobra.Command {
	var fileID string
	var worksheet string
	var area string
	var file string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Writes a CSV file to a worksheet range",
		Long: `Loads a CSV file into a table and PATCHes it to the worksheet. Unless a
range is given explicitly, the table is written to the range it occupies
starting at cell A1.`,
		Example: `  ` + APP + ` update --id "01BEQXWXBQ2QNOPSCY4NB2EEE3V2K53RA5" --worksheet "Sheet1" --file "out.csv"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := workbook.LoadTable(file)
			if err != nil {
				return err
			}

			if area == "" {
				if area, err = table.RangeOf(); err != nil {
					return err
				}
			}

			if options.Debug {
				debugf("Workbook - ID:%s  worksheet:%s  range:%s", fileID, worksheet, area)
			}

			descriptor, err := workbook.UpdateRange(fileID, worksheet, area, table.Values(), workbook.UpdateOptions{})
			if err != nil {
				return err
			}

			return execute(descriptor)
		},
	}

	cmd.Flags().StringVar(&fileID, "id", "", "Drive item id of the workbook")
	cmd.Flags().StringVar(&worksheet, "worksheet", "", "Worksheet name e.g. 'Sheet1'")
	cmd.Flags().StringVar(&area, "range", "", "Cell range e.g. 'A1:B3'. Defaults to the range occupied by the file")
	cmd.Flags().StringVar(&file, "file", "", "CSV file with the table to write")

	return cmd
}
