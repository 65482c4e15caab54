package sarf

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// SchemeOrder selects the order in which an Engine tries schemes. It
// decides which scheme wins if several of them derive the same word.
type SchemeOrder int8

const (
	// TableOrder tries schemes in the enumeration order of the SchemeTable.
	// This order depends on bucket layout and insertion history.
	TableOrder SchemeOrder = iota
	// NameOrder tries schemes sorted by name, giving reproducible results.
	NameOrder
)

// ParseSchemeOrder maps "table" or "name" to a SchemeOrder.
func ParseSchemeOrder(s string) (SchemeOrder, error) {
	switch s {
	case "", "table":
		return TableOrder, nil
	case "name":
		return NameOrder, nil
	}
	return TableOrder, fmt.Errorf("unknown scheme order %q: %w", s, ErrInvalidArgument)
}

func (o SchemeOrder) String() string {
	if o == NameOrder {
		return "name"
	}
	return "table"
}

// Engine generates, validates and decomposes words. It does not own any
// data: roots and schemes are borrowed from the index and table it has
// been created with, which have to outlive the engine.
type Engine struct {
	roots   *RootIndex
	schemes *SchemeTable
	order   SchemeOrder
}

// Option configures an Engine.
type Option func(*Engine)

// WithSchemeOrder sets the order in which schemes are tried.
func WithSchemeOrder(order SchemeOrder) Option {
	return func(e *Engine) {
		e.order = order
	}
}

// NewEngine creates an engine working on roots and schemes.
func NewEngine(roots *RootIndex, schemes *SchemeTable, opts ...Option) *Engine {
	assert(roots != nil && schemes != nil, "engine needs a root index and a scheme table")
	e := &Engine{roots: roots, schemes: schemes}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) orderedSchemes() []*Scheme {
	schemes := e.schemes.Schemes()
	if e.order == NameOrder {
		sort.Slice(schemes, func(i, j int) bool {
			return schemes[i].Name() < schemes[j].Name()
		})
	}
	return schemes
}

// Generate derives the word for root and scheme schemeName and records it
// as a derivation of root. Repeated calls increment the frequency of the
// recorded derivation.
func (e *Engine) Generate(root, schemeName string) (string, error) {
	root = strings.TrimSpace(root)
	if !e.roots.Exists(root) {
		return "", fmt.Errorf("root %q: %w", root, ErrUnknownRoot)
	}
	scheme, found := e.schemes.Get(schemeName)
	if !found {
		return "", fmt.Errorf("scheme %q: %w", schemeName, ErrUnknownScheme)
	}
	if utf8.RuneCountInString(root) != 3 {
		return "", fmt.Errorf("root %q: %w", root, ErrInvalidRoot)
	}
	word, err := scheme.Apply(root)
	if err != nil {
		return "", err
	}
	e.roots.AddDerivation(root, word, schemeName)
	return word, nil
}

// GenerateAll applies every scheme to root and records each result. For an
// unknown root the result is empty. Schemes which fail to apply are skipped.
func (e *Engine) GenerateAll(root string) []Generated {
	root = strings.TrimSpace(root)
	if !e.roots.Exists(root) {
		tracer().Errorf("cannot derive from unknown root %q", root)
		return []Generated{}
	}
	schemes := e.orderedSchemes()
	generated := make([]Generated, 0, len(schemes))
	for _, scheme := range schemes {
		word, err := scheme.Apply(root)
		if err != nil {
			tracer().Debugf("skipping scheme %s: %v", scheme.Name(), err)
			continue
		}
		e.roots.AddDerivation(root, word, scheme.Name())
		generated = append(generated, Generated{Root: root, Scheme: scheme.Name(), Word: word})
	}
	tracer().Debugf("%d words derived from %s", len(generated), root)
	return generated
}

// Validate checks whether word can be derived from root by any scheme. The
// first matching scheme decides; the pairing is recorded as a derivation.
func (e *Engine) Validate(word, root string) ValidationResult {
	root = strings.TrimSpace(root)
	if !e.roots.Exists(root) {
		return ValidationResult{Message: fmt.Sprintf("unknown root '%s'", root)}
	}
	if utf8.RuneCountInString(root) != 3 {
		return ValidationResult{Message: "root must be trilateral"}
	}
	for _, scheme := range e.orderedSchemes() {
		if scheme.Matches(word, root) {
			e.roots.AddDerivation(root, word, scheme.Name())
			return ValidationResult{
				Valid:      true,
				SchemeName: scheme.Name(),
				Message:    fmt.Sprintf("word belongs to root via scheme %s", scheme.Name()),
			}
		}
	}
	return ValidationResult{Message: "word matches no known scheme for this root"}
}

// Decompose searches a root and a scheme deriving word. It tries every root
// in ascending order against every scheme, which costs O(roots × schemes)
// and is the slowest operation of the engine. It is meant for indexes of a
// few hundred roots.
func (e *Engine) Decompose(word string) DecompositionResult {
	schemes := e.orderedSchemes()
	result := DecompositionResult{Message: "word cannot be decomposed"}
	e.roots.Walk(func(n *Root) bool {
		for _, scheme := range schemes {
			if scheme.Matches(word, n.key) {
				result = DecompositionResult{
					Success:    true,
					Root:       n.key,
					SchemeName: scheme.Name(),
					Message:    "word decomposed",
				}
				return false
			}
		}
		return true
	})
	return result
}

// Derivations returns the words recorded for root.
func (e *Engine) Derivations(root string) []Derivation {
	return e.roots.Derivations(root)
}

// Complete returns the recorded derived words starting with prefix.
func (e *Engine) Complete(prefix string) []string {
	return e.roots.WordsWithPrefix(prefix)
}
