package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/npillmayer/sarf"
	"github.com/npillmayer/sarf/rootfile"
	"github.com/spf13/cobra"
)

func newGenerateCommand(ws *workspace) *cobra.Command {
	return &cobra.Command{
		Use:     "generate ROOT SCHEME",
		Short:   "Derive a word from a root and a scheme",
		Example: `  sarf generate كتب فاعل`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, err := ws.engine.Generate(arg(args, 0), arg(args, 1))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), word)
			return nil
		},
	}
}

func newDeriveCommand(ws *workspace) *cobra.Command {
	return &cobra.Command{
		Use:   "derive ROOT",
		Short: "Derive words from a root with every scheme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := arg(args, 0)
			generated := ws.engine.GenerateAll(root)
			if len(generated) == 0 {
				return fmt.Errorf("root %q: %w", root, sarf.ErrUnknownRoot)
			}
			renderGenerated(cmd.OutOrStdout(), generated)
			return nil
		},
	}
}

func newValidateCommand(ws *workspace) *cobra.Command {
	return &cobra.Command{
		Use:     "validate WORD ROOT",
		Short:   "Check whether a word derives from a root",
		Example: `  sarf validate كاتب كتب`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := ws.engine.Validate(arg(args, 0), arg(args, 1))
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func newDecomposeCommand(ws *workspace) *cobra.Command {
	return &cobra.Command{
		Use:     "decompose WORD",
		Short:   "Find root and scheme of a word",
		Example: `  sarf decompose مكتوب`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := ws.engine.Decompose(arg(args, 0))
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func newShowCommand(ws *workspace) *cobra.Command {
	return &cobra.Command{
		Use:   "show ROOT",
		Short: "Show a root and the words derived from it",
		Long: `Derive ROOT with every scheme and list the recorded derivations with
their schemes and frequencies. Schemes added with --scheme take part.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := arg(args, 0)
			node, found := ws.roots.Search(root)
			if !found {
				return fmt.Errorf("root %q: %w", root, sarf.ErrUnknownRoot)
			}
			ws.engine.GenerateAll(root)
			fmt.Fprintln(cmd.OutOrStdout(), node)
			renderDerivations(cmd.OutOrStdout(), ws.engine.Derivations(root))
			return nil
		},
	}
}

func newRootsCommand(ws *workspace) *cobra.Command {
	return &cobra.Command{
		Use:   "roots",
		Short: "List all roots in alphabetical order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderRoots(cmd.OutOrStdout(), ws.roots)
			return nil
		},
	}
}

func newSchemesCommand(ws *workspace) *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List all schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderSchemes(cmd.OutOrStdout(), ws.schemes.Schemes())
			return nil
		},
	}
}

func newAddCommand(ws *workspace) *cobra.Command {
	return &cobra.Command{
		Use:   "add ROOT...",
		Short: "Add roots to the root list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for i := range args {
				root := arg(args, i)
				if utf8.RuneCountInString(root) != 3 {
					return fmt.Errorf("root %q: %w", root, sarf.ErrInvalidRoot)
				}
				existed := ws.roots.Exists(root)
				if err := ws.roots.Insert(root); err != nil {
					return err
				}
				if existed {
					fmt.Fprintf(cmd.OutOrStdout(), "⚠ root '%s' already present\n", root)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "✓ root '%s' added\n", root)
				}
			}
			return ws.save()
		},
	}
}

func newStatsCommand(ws *workspace) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show statistics of root index and scheme table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderStats(cmd.OutOrStdout(), ws.roots.Stats(), ws.schemes.Stats())
			return nil
		},
	}
}

func newCompleteCommand(ws *workspace) *cobra.Command {
	return &cobra.Command{
		Use:   "complete PREFIX",
		Short: "List derivable words starting with a prefix",
		Long: `Derive every root with every scheme and list the resulting words which
start with PREFIX, together with their roots.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, root := range ws.roots.Roots() {
				ws.engine.GenerateAll(root)
			}
			words := ws.engine.Complete(arg(args, 0))
			renderCompletions(cmd.OutOrStdout(), words, ws.roots)
			return nil
		},
	}
}

func newSampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sample FILE",
		Short: "Write a sample root list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := rootfile.WriteSample(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ sample root list written to %s\n", path)
			return nil
		},
	}
}
