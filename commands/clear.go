package commands

import (
	"github.com/spf13/cobra"

	"github.com/workbooktools/workbook-app-graph/workbook"
)

func newClearCommand() *cobra.Command {
	var fileID string
	var worksheet string
	var area string
	var applyTo string

	cmd := &cobra.Command{
		Use:     "clear",
		Short:   "Clears the values and/or formats of a worksheet range",
		Example: `  ` + APP + ` clear --id "01BEQXWXBQ2QNOPSCY4NB2EEE3V2K53RA5" --worksheet "Sheet1" --range "A1:B3" --apply-to "Contents"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptor, err := workbook.ClearRange(fileID, worksheet, area, applyTo)
			if err != nil {
				return err
			}

			return execute(descriptor)
		},
	}

	cmd.Flags().StringVar(&fileID, "id", "", "Drive item id of the workbook")
	cmd.Flags().StringVar(&worksheet, "worksheet", "", "Worksheet name e.g. 'Sheet1'")
	cmd.Flags().StringVar(&area, "range", "", "Cell range e.g. 'A1:B3'")
	cmd.Flags().StringVar(&applyTo, "apply-to", "All", "Clear action - 'All', 'Formats' or 'Contents'")

	return cmd
}
