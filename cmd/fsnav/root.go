package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fsnav",
		Short: "Navigate and search the filesystem",
		Long: `fsnav lists directories, finds files by name, searches file contents and
reads files without ever modifying anything.

Examples:
  # List the current directory, including hidden files
  fsnav ls --all

  # Find Go test files, skipping vendored code
  fsnav find '_test\.go$' --exclude vendor

  # Show two lines around every TODO
  fsnav grep TODO --file main.go --context 2

  # Serve tool calls over stdin/stdout
  fsnav serve`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	cmd.PersistentFlags().StringVar(&a.opts.baseDir, "base-dir", "",
		"Initial working directory (default: config, $FSNAV_BASE_DIR, $BASE_DIR or the process directory)")
	cmd.PersistentFlags().BoolVar(&a.opts.jsonOut, "json", false,
		"Print the raw JSON result")
	cmd.PersistentFlags().BoolVar(&a.opts.plain, "plain", false,
		"Disable the progress spinner and markdown styling")
	cmd.PersistentFlags().StringVar(&a.opts.logLevel, "log-level", "",
		"Log level: debug, info, warn or error")

	cmd.AddCommand(
		newPwdCmd(a),
		newTypeCmd(a),
		newLsCmd(a),
		newFindCmd(a),
		newGrepCmd(a),
		newCatCmd(a),
		newServeCmd(a),
		newToolsCmd(a),
	)

	return cmd
}
