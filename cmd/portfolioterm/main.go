// Package main provides the portfolioterm CLI entry point: a retro terminal
// that presents a personal portfolio as a small virtual filesystem.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"portfolioterm/internal/config"
	"portfolioterm/internal/logger"
	"portfolioterm/internal/output"
	"portfolioterm/internal/shell"
	"portfolioterm/internal/tui"
	"portfolioterm/internal/version"
)

var (
	v          = viper.New()
	cfg        *config.Config
	configFile string
	format     string
	live       bool
	detailed   bool
)

// rootCmd runs the full-screen terminal when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "portfolioterm",
	Short: "Retro portfolio terminal",
	Long: `portfolioterm presents a personal portfolio as a retro terminal session.
Browse sections with ls and cat, restyle the terminal with color, theme and
accent, and type "help" to see everything else.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runTUI,
}

// lineCmd runs the line-mode shell
var lineCmd = &cobra.Command{
	Use:   "line",
	Short: "Start the terminal in line mode",
	Long:  `Start a line-mode shell that prints each command's output as plain lines.`,
	RunE:  runLine,
}

// batchCmd runs commands from a file
var batchCmd = &cobra.Command{
	Use:   "batch <file|->",
	Short: "Run commands from a file and print the transcript",
	Long: `Run one command per line from a file, or from stdin when the file is "-",
and print the resulting transcript. Blank lines and lines starting with # are
skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := version.ValidateVersion(); err != nil {
			return err
		}
		if detailed {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetDetailedVersion())
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), version.GetFormattedVersion())
		return nil
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String("log-file", "", "Write logs to file instead of stderr")
	flags.StringVar(&configFile, "config", "", "Config file [default: <user config dir>/portfolioterm/config.yaml]")
	flags.Bool("no-animation", false, "Print output instantly instead of typing it")

	bindings := map[string]string{
		"log.level":    "log-level",
		"log.file":     "log-file",
		"no_animation": "no-animation",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	batchCmd.Flags().StringVar(&format, "format", "plain", "Transcript format (plain|styled|json)")
	batchCmd.Flags().BoolVar(&live, "live", false, "Load live project and award records before running")
	versionCmd.Flags().BoolVar(&detailed, "detailed", false, "Show build details")

	rootCmd.AddCommand(lineCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and configures the logger. The full-screen
// interface discards logs unless a log file is given.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(v, configFile)
	if err != nil {
		return err
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile, fullScreen(cmd)); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}
	return nil
}

// fullScreen reports whether cmd is the root command, which owns the screen.
func fullScreen(cmd *cobra.Command) bool {
	return cmd.Parent() == nil
}

func newTerminal() (*shell.Terminal, error) {
	term, err := shell.New(cfg, shell.Options{})
	if err != nil {
		return nil, err
	}
	logger.Debug("Terminal created", "session", term.State.ID(), "version", version.Version)
	return term, nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	term, err := newTerminal()
	if err != nil {
		return err
	}
	defer term.Close()
	return tui.Run(cmd.Context(), term)
}

func runLine(cmd *cobra.Command, _ []string) error {
	term, err := newTerminal()
	if err != nil {
		return err
	}
	defer term.Close()

	printer := output.NewPrinter(output.WithStyles(term.Theme), output.SkipEcho())
	return shell.RunLine(cmd.Context(), term, printer)
}

func runBatch(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open batch file: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	term, err := newTerminal()
	if err != nil {
		return err
	}
	defer term.Close()

	opts := []output.Option{output.WithWriter(cmd.OutOrStdout())}
	switch format {
	case "plain":
		opts = append(opts, output.PlainText())
	case "json":
		opts = append(opts, output.JSON())
	case "styled":
		opts = append(opts, output.WithStyles(term.Theme))
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if live {
		term.LoadData(cmd.Context())
	}
	logger.Info("Running batch", "file", args[0])
	return shell.RunBatch(cmd.Context(), term, in, output.NewPrinter(opts...))
}
