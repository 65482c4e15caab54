package sarf

import (
	"fmt"
	"io"
)

// RootReader yields roots one-by-one.
// It should return io.EOF when the stream is exhausted.
type RootReader interface {
	Next() (root string, err error)
}

// LoadRoots inserts every root yielded by reader into index and returns the
// number of roots inserted, duplicates included.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package rootfile to parse concrete formats and feed this API.
func LoadRoots(index *RootIndex, reader RootReader) (n int, err error) {
	var root string
	for {
		root, err = reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return
		}
		if err = index.Insert(root); err != nil {
			err = fmt.Errorf("could not insert root %q: %w", root, err)
			return
		}
		n++
	}
	tracer().Infof("%d roots loaded, index holds %d roots with height %d", n, index.Size(), index.Height())
	return n, nil
}

// LoadRootList inserts roots from an in-memory list.
func LoadRootList(index *RootIndex, roots []string) (int, error) {
	return LoadRoots(index, &sliceReader{roots: roots})
}

type sliceReader struct {
	roots []string
	index int
}

func (r *sliceReader) Next() (string, error) {
	if r.index >= len(r.roots) {
		return "", io.EOF
	}
	root := r.roots[r.index]
	r.index++
	return root, nil
}
