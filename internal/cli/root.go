// Package cli provides the command-line interface of sarf.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/npillmayer/sarf"
	"github.com/npillmayer/sarf/internal/config"
	"github.com/npillmayer/sarf/rootfile"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
)

// tracer writes to trace with key 'sarf.cli'
func tracer() tracing.Trace {
	return tracing.Select("sarf.cli")
}

// workspace is the state shared by all subcommands of one invocation.
type workspace struct {
	cfgFile string
	custom  []string // NAME=PATTERN
	cfg     *config.Config
	roots   *sarf.RootIndex
	schemes *sarf.SchemeTable
	engine  *sarf.Engine
}

// NewRootCmd creates the sarf command with all subcommands.
func NewRootCmd(version string) *cobra.Command {
	ws := &workspace{}
	rootCmd := &cobra.Command{
		Use:   "sarf",
		Short: "sarf - Arabic root and scheme morphology",
		Long: `sarf derives, validates and decomposes Arabic words from trilateral roots
and morphological schemes.

Roots are read from a plain text root list (one root per line); the ten
standard schemes are always available.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			return ws.open(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&ws.cfgFile, "config", "", "config file (default: ./sarf.yaml)")
	rootCmd.PersistentFlags().String("roots", "", "Path to the root list")
	rootCmd.PersistentFlags().Int("capacity", 0, "Initial capacity of the scheme table")
	rootCmd.PersistentFlags().String("order", "", "Scheme order for first-match (table|name)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringArrayVar(&ws.custom, "scheme", nil, "Add a custom scheme NAME=PATTERN (repeatable)")

	if err := rootCmd.RegisterFlagCompletionFunc("order", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "name"}, cobra.ShellCompDirectiveNoFileComp
	}); err != nil {
		tracer().Errorf("cannot register completion for --order: %v", err)
	}

	rootCmd.AddCommand(
		newGenerateCommand(ws),
		newDeriveCommand(ws),
		newValidateCommand(ws),
		newDecomposeCommand(ws),
		newShowCommand(ws),
		newRootsCommand(ws),
		newSchemesCommand(ws),
		newAddCommand(ws),
		newStatsCommand(ws),
		newCompleteCommand(ws),
		newSampleCommand(),
	)
	return rootCmd
}

// open loads the configuration, the root list and the scheme catalog.
func (ws *workspace) open(cmd *cobra.Command) error {
	cfg, err := config.Load(ws.cfgFile, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	ws.cfg = cfg
	if cfg.Verbose && cfg.FileUsed != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", cfg.FileUsed)
	}
	ws.roots = sarf.NewRootIndex()
	ws.schemes = sarf.NewSchemeTable(cfg.TableCapacity)
	sarf.LoadStandardSchemes(ws.schemes)
	if err := ws.addCustomSchemes(); err != nil {
		return err
	}
	ws.engine = sarf.NewEngine(ws.roots, ws.schemes, sarf.WithSchemeOrder(cfg.Order()))

	f, err := os.Open(cfg.RootsFile)
	if errors.Is(err, fs.ErrNotExist) {
		tracer().Infof("root list %s does not exist, starting with an empty index", cfg.RootsFile)
		return nil
	} else if err != nil {
		return fmt.Errorf("cannot open root list: %w", err)
	}
	defer f.Close()
	report, err := rootfile.Load(ws.roots, f)
	if err != nil {
		return fmt.Errorf("cannot load root list %s: %w", cfg.RootsFile, err)
	}
	if cfg.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "Loaded %d roots from %s\n", report.Accepted, cfg.RootsFile)
		for _, e := range report.Rejected {
			fmt.Fprintf(cmd.ErrOrStderr(), "  skipped %s\n", e)
		}
	}
	return nil
}

// addCustomSchemes puts the schemes given with --scheme into the table,
// replacing standard schemes of the same name.
func (ws *workspace) addCustomSchemes() error {
	for _, def := range ws.custom {
		name, pattern, ok := strings.Cut(norm.NFC.String(def), "=")
		if !ok {
			return fmt.Errorf("scheme %q: expected NAME=PATTERN: %w", def, sarf.ErrInvalidArgument)
		}
		scheme, err := sarf.NewScheme(strings.TrimSpace(name), strings.TrimSpace(pattern), "custom scheme", sarf.Other)
		if err != nil {
			return err
		}
		if err := ws.schemes.Put(scheme.Name(), scheme); err != nil {
			return err
		}
		tracer().Infof("custom scheme %s registered", scheme)
	}
	return nil
}

// save writes the root index back to the configured root list.
func (ws *workspace) save() error {
	f, err := os.Create(ws.cfg.RootsFile)
	if err != nil {
		return fmt.Errorf("cannot save root list: %w", err)
	}
	if err := rootfile.Save(f, ws.roots); err != nil {
		f.Close()
		return fmt.Errorf("cannot save root list: %w", err)
	}
	return f.Close()
}

// arg normalizes command-line input to NFC, as the root list reader does.
func arg(args []string, i int) string {
	return norm.NFC.String(args[i])
}
