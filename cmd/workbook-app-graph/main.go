package main

import (
	"fmt"
	"os"

	"github.com/workbooktools/workbook-app-graph/commands"
)

func main() {
	if err := commands.Root().Execute(); err != nil {
		fmt.Printf("\nERROR: %v\n\n", err)
		os.Exit(1)
	}
}
