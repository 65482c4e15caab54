/*
Package rootfile reads and writes plain text root lists.

A root list holds one trilateral root per line. Comment lines start with '#'.

Example usage:

	f, _ := os.Open("path/to/roots.txt")
	defer f.Close()

	index := sarf.NewRootIndex()
	report, err := rootfile.Load(index, f)
*/
package rootfile

import (
	"bufio"
	"fmt"
	"io"

	"github.com/npillmayer/sarf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sarf.rootfile'
func tracer() tracing.Trace {
	return tracing.Select("sarf.rootfile")
}

// Report summarizes a Load.
type Report struct {
	Accepted int         // roots inserted, duplicates included
	Rejected []LineError // lines skipped for not holding a trilateral root
}

// Load reads a root list and inserts every valid root into index.
func Load(index *sarf.RootIndex, reader io.Reader) (Report, error) {
	r := NewReader(reader)
	n, err := sarf.LoadRoots(index, r)
	report := Report{Accepted: n, Rejected: r.Rejected()}
	if err != nil {
		return report, err
	}
	tracer().Infof("root list loaded: %d roots inserted", n)
	if len(report.Rejected) > 0 {
		tracer().Infof("%d lines skipped", len(report.Rejected))
		for _, e := range report.Rejected {
			tracer().Infof("  %s", e)
		}
	}
	return report, nil
}

// Save writes all roots of index in ascending order, preceded by a
// comment header.
func Save(w io.Writer, index *sarf.RootIndex) error {
	roots := index.Roots()
	header := []string{
		"Arabic trilateral roots",
		"Generated automatically",
		fmt.Sprintf("Total: %d roots", len(roots)),
	}
	return writeList(w, header, roots)
}

// SampleRoots are fifteen common roots used to seed a new root list.
var SampleRoots = []string{
	"كتب", "درس", "علم", "فهم", "قرأ", "سمع", "ذهب", "جلس",
	"قال", "عمل", "فعل", "شرب", "أكل", "نظر", "سأل",
}

// WriteSample writes a root list holding SampleRoots.
func WriteSample(w io.Writer) error {
	header := []string{
		"Arabic trilateral roots - examples",
		"Every line holds a root of 3 letters",
	}
	return writeList(w, header, SampleRoots)
}

func writeList(w io.Writer, header, roots []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range header {
		fmt.Fprintf(bw, "# %s\n", line)
	}
	bw.WriteString("\n")
	for _, root := range roots {
		bw.WriteString(root)
		bw.WriteString("\n")
	}
	return bw.Flush()
}
