package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/workbooktools/workbook-app-graph/auth"
	"github.com/workbooktools/workbook-app-graph/graph"
	"github.com/workbooktools/workbook-app-graph/workbook"
)

func newAuthoriseCommand() *cobra.Command {
	var fileID string
	var worksheet string
	var area string
	var file string
	var operation string
	var shift string
	var applyTo string

	cmd := &cobra.Command{
		Use:   "authorise",
		Short: "Authorises " + APP + " to access a workbook and fires a single range request",
		Long: `Runs the OAuth2 authorization-code flow in the browser - redirect, consent,
token exchange - then executes one workbook range request with the obtained
access token and renders the JSON response. The access token is also cached
in the workdir for the other subcommands.`,
		Example: `  ` + APP + ` authorise --id "01BEQXWXBQ2QNOPSCY4NB2EEE3V2K53RA5" --worksheet "Sheet1" --range "A1:B3"
  ` + APP + ` authorise --id "01BEQXWXBQ2QNOPSCY4NB2EEE3V2K53RA5" --worksheet "Sheet1" --file "out.csv" --operation update`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return authorise(fileID, worksheet, area, file, operation, shift, applyTo)
		},
	}

	cmd.Flags().StringVar(&fileID, "id", "", "Drive item id of the workbook")
	cmd.Flags().StringVar(&worksheet, "worksheet", "", "Worksheet name e.g. 'Sheet1'")
	cmd.Flags().StringVar(&area, "range", "", "Cell range e.g. 'A1:B3'. Defaults to the range occupied by --file")
	cmd.Flags().StringVar(&file, "file", "", "CSV file with the table to operate on")
	cmd.Flags().StringVar(&operation, "operation", "get", "Range operation to fire after authorisation - one of get/update/insert/clear/delete/format")
	cmd.Flags().StringVar(&shift, "shift", "", "Shift direction for insert (Down/Right) and delete (Up/Left)")
	cmd.Flags().StringVar(&applyTo, "apply-to", "", "Clear action - one of All/Formats/Contents")

	return cmd
}

func authorise(fileID, worksheet, area, file, operation, shift, applyTo string) error {
	conf, err := LoadConfig(options.Config)
	if err != nil {
		return err
	}

	descriptor, err := buildDescriptor(operation, fileID, worksheet, area, file, shift, applyTo)
	if err != nil {
		return err
	}

	port := conf.Port
	if port == 0 {
		if port, err = auth.FindPort(conf.Host, 5000, 6000); err != nil {
			return err
		}
	}

	config := oauth2.Config{
		ClientID:     conf.ClientID,
		ClientSecret: conf.ClientSecret,
		RedirectURL:  fmt.Sprintf("http://%s:%d/getAToken", conf.Host, port),
		Endpoint:     auth.Endpoint(conf.Authority, conf.Tenant),
	}

	flow := auth.NewFlow(&config, conf.Resource, graph.NewClient(conf.Resource, conf.APIVersion), descriptor)

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.Host, port),
		Handler: flow.Handler(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			errorf("%v", err)
		}
	}()

	// ... CTRL-C handler
	interrupt := make(chan os.Signal, 1)

	signal.Notify(interrupt, os.Interrupt)

	// ... open the flow in the browser
	url := fmt.Sprintf("http://%s:%d/", conf.Host, port)

	infof("Authorisation flow listening at %s", url)

	if err := auth.OpenBrowser(url); err != nil {
		infof("Could not open the authorisation page in your browser - please open %s manually", url)
	}

	// ... cache tokens until interrupted
loop:
	for {
		select {
		case <-interrupt:
			fmt.Printf("\n.. cancelled\n\n")
			break loop

		case token := <-flow.Tokens:
			if err := saveToken(tokensPath(), token); err != nil {
				warnf("Unable to cache access token (%v)", err)
			} else {
				infof("Cached access token to %s", tokensPath())
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}

// buildDescriptor constructs the one request descriptor that the flow fires
// after authorisation. When a CSV file is supplied and no range is given,
// the range is the area the table occupies starting at A1.
func buildDescriptor(operation, fileID, worksheet, area, file, shift, applyTo string) (workbook.Descriptor, error) {
	var table workbook.Table

	if file != "" {
		t, err := workbook.LoadTable(file)
		if err != nil {
			return workbook.Descriptor{}, err
		}

		table = t

		if area == "" {
			if area, err = table.RangeOf(); err != nil {
				return workbook.Descriptor{}, err
			}
		}
	}

	switch operation {
	case "get":
		return workbook.GetRange(fileID, worksheet, area)

	case "update":
		if table == nil {
			return workbook.Descriptor{}, fmt.Errorf("--file is required for the 'update' operation")
		}
		return workbook.UpdateRange(fileID, worksheet, area, table.Values(), workbook.UpdateOptions{})

	case "insert":
		return workbook.InsertEmptyCells(fileID, worksheet, area, shift)

	case "clear":
		return workbook.ClearRange(fileID, worksheet, area, applyTo)

	case "delete":
		return workbook.DeleteRange(fileID, worksheet, area, shift)

	case "format":
		return workbook.GetRangeFormat(fileID, worksheet, area)

	default:
		return workbook.Descriptor{}, fmt.Errorf("invalid operation '%s' - expected one of get/update/insert/clear/delete/format", operation)
	}
}
