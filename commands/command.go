package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/workbooktools/workbook-app-graph/graph"
	"github.com/workbooktools/workbook-app-graph/workbook"
)

const APP = "workbook-app-graph"

// Options are the global command-line options shared by all subcommands.
type Options struct {
	Config  string
	Workdir string
	Tokens  string
	Debug   bool
}

var options = Options{
	Config:  DEFAULT_CONFIG,
	Workdir: DEFAULT_WORKDIR,
}

// Root assembles the CLI command tree.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           APP,
		Short:         "Command-line client for the Microsoft Graph workbook range API",
		Long:          APP + ` builds and executes Microsoft Graph workbook range requests - get, update, insert, clear, delete and format - against an Excel online worksheet, after authorising access with the OAuth2 authorization-code flow.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&options.Config, "config", options.Config, "Path to the TOML configuration file")
	cmd.PersistentFlags().StringVar(&options.Workdir, "workdir", options.Workdir, "Directory for working files (cached tokens, etc)")
	cmd.PersistentFlags().StringVar(&options.Tokens, "tokens", options.Tokens, "Path to the cached tokens file. Defaults to '<workdir>/workbook.tokens'")
	cmd.PersistentFlags().BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")

	cmd.AddCommand(newAuthoriseCommand())
	cmd.AddCommand(newGetCommand())
	cmd.AddCommand(newUpdateCommand())
	cmd.AddCommand(newInsertCommand())
	cmd.AddCommand(newClearCommand())
	cmd.AddCommand(newDeleteCommand())
	cmd.AddCommand(newFormatCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// execute fires a single request descriptor against the configured Graph
// host with the cached access token and prints the JSON response.
func execute(descriptor workbook.Descriptor) error {
	conf, err := LoadConfig(options.Config)
	if err != nil {
		return err
	}

	token, err := tokenFromFile(tokensPath())
	if err != nil {
		return fmt.Errorf("no cached access token - run '%s authorise' first (%v)", APP, err)
	}

	if options.Debug {
		debugf("%s %s", descriptor.Method, descriptor.Path)
	}

	client := graph.NewClient(conf.Resource, conf.APIVersion)

	response, err := client.Execute(context.Background(), descriptor, token.AccessToken)
	if err != nil {
		return err
	}

	if response == nil {
		infof("Request completed (empty response)")
		return nil
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, response, "", "  "); err != nil {
		fmt.Printf("%s\n", response)
	} else {
		fmt.Printf("%s\n", pretty.String())
	}

	return nil
}

func tokensPath() string {
	if options.Tokens != "" {
		return options.Tokens
	}

	return filepath.Join(options.Workdir, "workbook.tokens")
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}

func errorf(format string, args ...any) {
	log.Printf("%-5s %s", "ERROR", fmt.Sprintf(format, args...))
}
