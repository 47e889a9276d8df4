package main

import (
	"github.com/spf13/cobra"
)

func newPwdCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pwd",
		Short: "Print the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTool(cmd.Context(), "get_current_dir", map[string]any{})
		},
	}
}

func newTypeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "type PATH...",
		Short: "Classify paths as file, directory, symbolic-link, not-found or unknown",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTool(cmd.Context(), "get_path_type", map[string]any{"paths": args})
		},
	}
}

func newLsCmd(a *app) *cobra.Command {
	var (
		all       bool
		limit     int
		startFrom int
		absPath   bool
		gitignore bool
	)

	cmd := &cobra.Command{
		Use:   "ls [DIR]",
		Short: "List a directory, sorted by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"show_hidden":       all,
				"start_from":        startFrom,
				"abs_path":          absPath,
				"respect_gitignore": gitignore,
			}
			if len(args) == 1 {
				req["base_dir"] = args[0]
			}
			if cmd.Flags().Changed("limit") {
				req["limit"] = limit
			}
			return a.runTool(cmd.Context(), "list_files", req)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include hidden entries")
	cmd.Flags().IntVarP(&limit, "limit", "n", -1, "Maximum number of entries (-1 = no limit)")
	cmd.Flags().IntVar(&startFrom, "start-from", 0, "Index of the first entry to return")
	cmd.Flags().BoolVar(&absPath, "abs", false, "Print absolute paths")
	cmd.Flags().BoolVar(&gitignore, "gitignore", false, "Skip entries matched by the directory's .gitignore")
	return cmd
}

func newFindCmd(a *app) *cobra.Command {
	var (
		exclude   []string
		root      string
		timeLimit float64
		maxLevel  int
	)

	cmd := &cobra.Command{
		Use:   "find PATTERN...",
		Short: "Find files whose name matches any regex, level by level",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"regex_pattern":          args,
				"exclude_regex_patterns": exclude,
				"path":                   root,
			}
			if cmd.Flags().Changed("time-limit") {
				req["time_limit"] = timeLimit
			}
			if cmd.Flags().Changed("max-level") {
				req["max_level"] = maxLevel
			}
			return a.runTool(cmd.Context(), "search_file_name", req)
		},
	}

	cmd.Flags().StringArrayVarP(&exclude, "exclude", "x", nil, "Skip directories whose path matches this regex (repeatable)")
	cmd.Flags().StringVarP(&root, "path", "p", "", "Directory to search from (default: current directory)")
	cmd.Flags().Float64Var(&timeLimit, "time-limit", 0, "Seconds before returning partial results (-1 = no limit)")
	cmd.Flags().IntVar(&maxLevel, "max-level", 0, "Depth to descend (0 = root only, -1 = unlimited)")
	return cmd
}

func newGrepCmd(a *app) *cobra.Command {
	var (
		patterns     []string
		files        []string
		contextLines int
		timeLimit    float64
	)

	cmd := &cobra.Command{
		Use:   "grep [PATTERN] [FILE...]",
		Short: "Show the line blocks around lines matching any regex",
		Long: `Search files for lines matching any of the patterns and show each match with
its surrounding context. The first argument is the pattern unless -e is given;
remaining arguments are added to the --file list.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pats := append([]string(nil), patterns...)
			if len(pats) == 0 && len(args) > 0 {
				pats = append(pats, args[0])
				args = args[1:]
			}
			paths := append(append([]string(nil), files...), args...)

			req := map[string]any{
				"paths":          paths,
				"regex_patterns": pats,
			}
			if cmd.Flags().Changed("context") {
				req["context_lines"] = contextLines
			}
			if cmd.Flags().Changed("time-limit") {
				req["time_limit"] = timeLimit
			}
			return a.runTool(cmd.Context(), "search_file_lines", req)
		},
	}

	cmd.Flags().StringArrayVarP(&patterns, "regexp", "e", nil, "Pattern to match (repeatable)")
	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "File to search (repeatable)")
	cmd.Flags().IntVarP(&contextLines, "context", "C", 0, "Lines of context around each match")
	cmd.Flags().Float64Var(&timeLimit, "time-limit", 0, "Seconds before stopping early (-1 = no limit)")
	return cmd
}

func newCatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cat FILE...",
		Short: "Print the full text of files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTool(cmd.Context(), "read_file", map[string]any{"file_paths": args})
		},
	}
}
