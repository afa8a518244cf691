package commands

import (
	"github.com/spf13/cobra"

	"github.com/workbooktools/workbook-app-graph/workbook"
)

func newDeleteCommand() *cobra.Command {
	var fileID string
	var worksheet string
	var area string
	var shift string

	cmd := &cobra.Command{
		Use:     "delete",
		Short:   "Deletes the cells of a worksheet range",
		Example: `  ` + APP + ` delete --id "01BEQXWXBQ2QNOPSCY4NB2EEE3V2K53RA5" --worksheet "Sheet1" --range "A1:B3" --shift "Left"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptor, err := workbook.DeleteRange(fileID, worksheet, area, shift)
			if err != nil {
				return err
			}

			return execute(descriptor)
		},
	}

	cmd.Flags().StringVar(&fileID, "id", "", "Drive item id of the workbook")
	cmd.Flags().StringVar(&worksheet, "worksheet", "", "Worksheet name e.g. 'Sheet1'")
	cmd.Flags().StringVar(&area, "range", "", "Cell range e.g. 'A1:B3'")
	cmd.Flags().StringVar(&shift, "shift", "Up", "Direction to shift the remaining cells - 'Up' or 'Left'")

	return cmd
}
