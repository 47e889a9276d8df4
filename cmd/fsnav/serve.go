package main

import (
	"encoding/json"

	"github.com/Cyclone1070/fsnav/internal/provider/gemini"
	"github.com/Cyclone1070/fsnav/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve JSON-lines tool calls on stdin and stdout",
		Long: `Read one request per line from stdin:

  {"id": "1", "name": "list_files", "args": {"base_dir": "."}}

and write progress events and the final result, tagged with the request id, to
stdout. The working directory persists across requests, so change_dir affects
every later call.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.New(a.registry, a.logger).Serve(cmd.Context(), a.in, a.out)
		},
	}
}

func newToolsCmd(a *app) *cobra.Command {
	var geminiFormat bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Print the tool declarations as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var v any = a.registry.Declarations()
			if geminiFormat {
				v = gemini.ToGeminiTools(a.registry.Declarations())
			}
			enc := json.NewEncoder(a.out)
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		},
	}

	cmd.Flags().BoolVar(&geminiFormat, "gemini", false, "Print Gemini function declarations instead")
	return cmd
}
