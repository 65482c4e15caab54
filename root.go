package sarf

import "fmt"

// Derivation is a word recorded for a root, together with the scheme that
// produced it and the number of times it has been recorded.
type Derivation struct {
	Word      string
	Scheme    string
	Frequency int
}

func (d Derivation) String() string {
	return fmt.Sprintf("%s (%s) - freq: %d", d.Word, d.Scheme, d.Frequency)
}

// Root is a node of a RootIndex. Clients get read access only; all
// mutation goes through the index.
type Root struct {
	key         string
	frequency   int
	derivations []Derivation // insertion order, unique by word
	left, right *Root
	height      int
}

func newRoot(key string) *Root {
	return &Root{
		key:       key,
		frequency: 1,
		height:    1,
	}
}

// Key returns the root string, e.g. "كتب".
func (r *Root) Key() string { return r.key }

// Frequency counts how often the root has been inserted.
func (r *Root) Frequency() int { return r.frequency }

// Derivations returns a copy of the words recorded for this root.
func (r *Root) Derivations() []Derivation {
	dd := make([]Derivation, len(r.derivations))
	copy(dd, r.derivations)
	return dd
}

// addDerivation appends word or, if it is already recorded, bumps its
// frequency. It reports whether word was new.
func (r *Root) addDerivation(word, scheme string) bool {
	for i := range r.derivations {
		if r.derivations[i].Word == word {
			r.derivations[i].Frequency++
			return false
		}
	}
	r.derivations = append(r.derivations, Derivation{Word: word, Scheme: scheme, Frequency: 1})
	return true
}

func (r *Root) String() string {
	return fmt.Sprintf("root: %s | freq: %d | derived: %d", r.key, r.frequency, len(r.derivations))
}
