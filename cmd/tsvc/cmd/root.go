package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"transcription-service/cmd/tsvc/cmd/export"
	"transcription-service/cmd/tsvc/cmd/serve"
	"transcription-service/cmd/tsvc/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tsvc",
	Short: "A CRUD service for transcription jobs over HTTP",
	Long: `A CRUD service for transcription jobs over HTTP.
- Serve the REST API with a pluggable transcription engine
- Jobs are held in memory for the lifetime of the process
- Export stored transcriptions to excel from a running instance`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
