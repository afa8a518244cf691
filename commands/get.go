package commands

import (
	"github.com/spf13/cobra"

	"github.com/workbooktools/workbook-app-graph/workbook"
)

func newGetCommand() *cobra.Command {
	var fileID string
	var worksheet string
	var area string

	cmd := &cobra.Command{
		Use:     "get",
		Short:   "Retrieves the properties of a worksheet range",
		Example: `  ` + APP + ` get --id "01BEQXWXBQ2QNOPSCY4NB2EEE3V2K53RA5" --worksheet "Sheet1" --range "A1:B3"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptor, err := workbook.GetRange(fileID, worksheet, area)
			if err != nil {
				return err
			}

			return execute(descriptor)
		},
	}

	cmd.Flags().StringVar(&fileID, "id", "", "Drive item id of the workbook")
	cmd.Flags().StringVar(&worksheet, "worksheet", "", "Worksheet name e.g. 'Sheet1'")
	cmd.Flags().StringVar(&area, "range", "", "Cell range e.g. 'A1:B3'")

	return cmd
}
