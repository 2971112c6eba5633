package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jward/codescope"
	"github.com/jward/codescope/internal/config"
	"github.com/jward/codescope/internal/output"
	"github.com/spf13/cobra"
)

var (
	flags          featureFlags
	flagOutputPath string
	flagClipboard  bool
	flagExclude    []string
	flagIndent     int
	flagConfig     string
	flagVerbose    bool
)

// errorHandled is set when an error has already been reported so main()
// doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "codescope [project_path]",
	Short: "Summarize a Python project for use as model context",
	Long: "Codescope walks a Python project and prints a single text report: README, directory tree, " +
		"an outline of classes and functions with optional docstrings, and optionally every source file.",
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runSummary,
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&flags.Readme, "readme", "r", false, "include README.md content")
	f.BoolVarP(&flags.Tree, "tree", "t", false, "include the project structure tree")
	f.BoolVarP(&flags.Inspection, "inspection", "i", false, "include key functions and classes")
	f.BoolVarP(&flags.Docstrings, "docstrings", "d", false, "include docstrings in the inspection")
	f.BoolVarP(&flags.Prompt, "prompt", "p", false, "include the context prompt")
	f.BoolVarP(&flags.FullContent, "full-content", "f", false, "include the full content of every source file")
	f.BoolVarP(&flags.All, "all", "a", false, "include every section")
	f.StringVarP(&flagOutputPath, "output-filepath", "o", "", "write the summary to this file instead of stdout")
	f.BoolVarP(&flagClipboard, "clipboard", "c", false, "copy the summary to the clipboard")
	f.StringArrayVarP(&flagExclude, "exclude", "e", nil, "directory name to exclude (repeatable)")
	f.IntVar(&flagIndent, "indent", codescope.DefaultIndentWidth, "spaces per level in the project tree")
	f.StringVar(&flagConfig, "config", "", "config file (default: nearest .codescope.toml or .codescope.yaml)")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "log traversal details to stderr")
}

func runSummary(cmd *cobra.Command, args []string) error {
	logger := newLogger(flagVerbose)

	projectPath, err := resolveProjectPath(args)
	if err != nil {
		return err
	}

	cfg, cfgPath, err := config.Resolve(flagConfig, projectPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfgPath != "" {
		logger.Debug("using config", "path", cfgPath)
	}

	opts := []codescope.Option{
		codescope.WithLogger(logger),
		codescope.WithExclusions(cfg.Exclude...),
		codescope.WithExclusions(flagExclude...),
		codescope.WithContextPrompt(cfg.ContextPrompt),
	}
	opts = append(opts, codescope.WithIndentWidth(cfg.IndentWidth))
	if cmd.Flags().Changed("indent") {
		if flagIndent < 1 {
			return fmt.Errorf("--indent must be positive, got %d", flagIndent)
		}
		opts = append(opts, codescope.WithIndentWidth(flagIndent))
	}

	engine := codescope.New(opts...)
	summary, err := engine.CompileReport(projectPath, resolveOptions(flags, cfg.Defaults))
	if err != nil {
		return err
	}

	output.NewSink(cmd.OutOrStdout(), cmd.ErrOrStderr()).Export(summary, flagOutputPath, flagClipboard)
	return nil
}

// resolveProjectPath checks that the project path names a directory. The
// path is returned as given so that report labels match the user's input.
func resolveProjectPath(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	info, err := os.Stat(dir)
	if err != nil {
		abs, _ := filepath.Abs(dir)
		return "", fmt.Errorf("directory not found: %s", abs)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", dir)
	}
	return dir, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
