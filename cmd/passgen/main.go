package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/clipboard"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/tui"
	"github.com/vaultpass/passgen-go/internal/widget"
)

type options struct {
	length  int
	digits  bool
	symbols bool
	print   bool
	copy    bool
}

func newRootCmd(cfg config.Config) *cobra.Command {
	opts := options{
		length:  cfg.Generator.Length,
		digits:  cfg.Generator.IncludeDigits,
		symbols: cfg.Generator.IncludeSymbols,
	}

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate random passwords",
		Long: `passgen generates random passwords from letters, optionally digits and
symbols. Without --print it opens an interactive widget that regenerates the
password whenever the length or character options change.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			genCfg := generator.Configuration{
				Length:         generator.ClampLength(opts.length),
				IncludeDigits:  opts.digits,
				IncludeSymbols: opts.symbols,
			}
			exporter := clipboard.NewExporter(nil,
				clipboard.WithStatusTTL(cfg.StatusTTL),
				clipboard.WithFailureAutoClear(cfg.FailureAutoClear),
			)

			if opts.print {
				return runPrint(cmd.OutOrStdout(), cmd.ErrOrStderr(), genCfg, exporter, opts.copy)
			}
			return runInteractive(genCfg, exporter)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.length, "length", "l", opts.length,
		fmt.Sprintf("password length (%d-%d)", generator.MinLength, generator.MaxLength))
	flags.BoolVarP(&opts.digits, "numbers", "n", opts.digits, "include digits (0-9)")
	flags.BoolVarP(&opts.symbols, "symbols", "s", opts.symbols, "include symbols ("+generator.Symbols+")")
	flags.BoolVarP(&opts.print, "print", "p", false, "print one password and exit")
	flags.BoolVarP(&opts.copy, "copy", "c", false, "with --print, also copy the password to the clipboard")

	return cmd
}

func runPrint(stdout, stderr io.Writer, cfg generator.Configuration, exporter *clipboard.Exporter, copyIt bool) error {
	store, err := widget.NewStore(cfg, nil)
	if err != nil {
		return err
	}
	password := store.State().Password
	fmt.Fprintln(stdout, password)

	if !copyIt {
		return nil
	}
	if out := exporter.Copy(password); out.OK() {
		fmt.Fprintln(stderr, widget.CopySuccessMessage)
	} else {
		fmt.Fprintln(stderr, widget.CopyFailureMessage)
	}
	return nil
}

func runInteractive(cfg generator.Configuration, exporter *clipboard.Exporter) error {
	store, err := widget.NewStore(cfg, nil)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(store, exporter), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running widget: %w", err)
	}
	return nil
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logFile, err := config.SetupFileLogging(cfg.Env, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "opening log file:", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err := newRootCmd(cfg).Execute(); err != nil {
		slog.Error("passgen failed", "error", err)
		os.Exit(1)
	}
}
