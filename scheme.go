package sarf

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Placeholder letters marking the positions of the 1st, 2nd and 3rd root
// consonant within a scheme pattern.
const (
	FirstRadical  = 'ف'
	SecondRadical = 'ع'
	ThirdRadical  = 'ل'
)

// SchemeType classifies a scheme.
type SchemeType int8

const (
	Other SchemeType = iota
	AgentNoun
	PatientNoun
	FormVIIIVerb
	VerbalNoun
	PlaceNoun
	Adjective
)

func (t SchemeType) String() string {
	switch t {
	case AgentNoun:
		return "agent-noun"
	case PatientNoun:
		return "patient-noun"
	case FormVIIIVerb:
		return "form-VIII-verb"
	case VerbalNoun:
		return "verbal-noun"
	case PlaceNoun:
		return "place-noun"
	case Adjective:
		return "adjective"
	}
	return "other"
}

// Scheme is a morphological pattern together with its substitution rule.
//
// A Scheme is not changed after construction. To alter a registered scheme,
// derive a modified copy and put it into the table under the same name.
type Scheme struct {
	name        string
	pattern     string
	description string
	typ         SchemeType
}

// NewScheme creates a scheme. The pattern has to contain each of the
// placeholders ف, ع and ل at least once.
func NewScheme(name, pattern, description string, typ SchemeType) (*Scheme, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("scheme name may not be empty: %w", ErrInvalidArgument)
	}
	for _, marker := range []rune{FirstRadical, SecondRadical, ThirdRadical} {
		if !strings.ContainsRune(pattern, marker) {
			return nil, fmt.Errorf("pattern %q lacks placeholder %q: %w", pattern, marker, ErrInvalidArgument)
		}
	}
	return &Scheme{
		name:        name,
		pattern:     pattern,
		description: description,
		typ:         typ,
	}, nil
}

func mustScheme(name, pattern, description string, typ SchemeType) *Scheme {
	s, err := NewScheme(name, pattern, description, typ)
	assert(err == nil, "invalid catalog scheme")
	return s
}

func (s *Scheme) Name() string        { return s.name }
func (s *Scheme) Pattern() string     { return s.pattern }
func (s *Scheme) Description() string { return s.description }
func (s *Scheme) Type() SchemeType    { return s.typ }

// WithDescription returns a copy of s with a different description.
func (s *Scheme) WithDescription(description string) *Scheme {
	c := *s
	c.description = description
	return &c
}

// WithType returns a copy of s with a different scheme type.
func (s *Scheme) WithType(typ SchemeType) *Scheme {
	c := *s
	c.typ = typ
	return &c
}

// Apply substitutes the letters of a trilateral root into the pattern.
// Every occurrence of a placeholder is replaced:
//
//	"مفعول" + "كتب" => "مكتوب".
//
// Placeholders are replaced one after the other, ف first, then ع, then ل.
// A root letter which is itself a placeholder is therefore substituted
// again by a later step: "فاعل" + "علم" => "مامم".
func (s *Scheme) Apply(root string) (string, error) {
	if utf8.RuneCountInString(root) != 3 {
		return "", fmt.Errorf("cannot apply scheme %q to %q: %w: %w", s.name, root, ErrInvalidArgument, ErrInvalidRoot)
	}
	letters := []rune(root)
	word := s.pattern
	for i, marker := range []rune{FirstRadical, SecondRadical, ThirdRadical} {
		word = strings.ReplaceAll(word, string(marker), string(letters[i]))
	}
	return word, nil
}

// Matches reports whether applying s to root yields word. It never fails;
// a non-trilateral root simply does not match.
func (s *Scheme) Matches(word, root string) bool {
	if s == nil || word == "" || root == "" {
		return false
	}
	derived, err := s.Apply(root)
	if err != nil {
		return false
	}
	return derived == word
}

// Equal compares schemes by pattern; names are not considered.
func (s *Scheme) Equal(other *Scheme) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.pattern == other.pattern
}

// IdentityHash hashes the scheme name, for use as a set or map key
// independent of SchemeTable.
func (s *Scheme) IdentityHash() uint32 {
	return uint32(polyHash(s.name))
}

func (s *Scheme) String() string {
	return fmt.Sprintf("%s (%s) - %s", s.name, s.pattern, s.typ)
}
