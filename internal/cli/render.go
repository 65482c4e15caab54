package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/sarf"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func renderGenerated(w io.Writer, generated []sarf.Generated) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Root", "Scheme", "Word"})
	for _, g := range generated {
		t.AppendRow(table.Row{g.Root, g.Scheme, g.Word})
	}
	t.Render()
	fmt.Fprintf(w, "(%d words)\n", len(generated))
}

func renderDerivations(w io.Writer, derivations []sarf.Derivation) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Word", "Scheme", "Frequency"})
	for _, d := range derivations {
		t.AppendRow(table.Row{d.Word, d.Scheme, d.Frequency})
	}
	t.Render()
	fmt.Fprintf(w, "(%d derivations)\n", len(derivations))
}

func renderRoots(w io.Writer, roots *sarf.RootIndex) {
	if roots.IsEmpty() {
		fmt.Fprintln(w, "(0 roots)")
		return
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"Root", "Frequency", "Derived"})
	roots.Walk(func(r *sarf.Root) bool {
		t.AppendRow(table.Row{r.Key(), r.Frequency(), len(r.Derivations())})
		return true
	})
	t.Render()
	fmt.Fprintf(w, "(%d roots)\n", roots.Size())
}

func renderSchemes(w io.Writer, schemes []*sarf.Scheme) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Name", "Pattern", "Type", "Description"})
	for _, s := range schemes {
		t.AppendRow(table.Row{s.Name(), s.Pattern(), s.Type(), s.Description()})
	}
	t.Render()
	fmt.Fprintf(w, "(%d schemes)\n", len(schemes))
}

func renderStats(w io.Writer, ix sarf.IndexStats, tb sarf.TableStats) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Statistic", "Value"})
	t.AppendRows([]table.Row{
		{"roots", ix.Roots},
		{"tree height", ix.Height},
		{"tree balanced", ix.Balanced},
		{"recorded derivations", ix.Derivations},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"schemes", tb.Size},
		{"table capacity", tb.Capacity},
		{"load factor", fmt.Sprintf("%.2f", tb.LoadFactor())},
		{"non-empty chains", tb.NonEmptyChains},
		{"longest chain", tb.MaxChain},
		{"average chain", fmt.Sprintf("%.2f", tb.AverageChain())},
	})
	t.Render()
}

func renderCompletions(w io.Writer, words []string, roots *sarf.RootIndex) {
	if len(words) == 0 {
		fmt.Fprintln(w, "(0 words)")
		return
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"Word", "Roots"})
	for _, word := range words {
		t.AppendRow(table.Row{word, strings.Join(roots.RootsOfWord(word), ", ")})
	}
	t.Render()
	fmt.Fprintf(w, "(%d words)\n", len(words))
}
