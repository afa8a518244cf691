package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VERSION is the CLI version in the format v<major>.<minor>.<build>.
const VERSION = "v0.1.0"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Displays the current version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s\n", VERSION)
		},
	}
}
