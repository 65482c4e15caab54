package sarf

import (
	"errors"
	"testing"
)

func TestSchemeApply(t *testing.T) {
	tests := []struct {
		pattern string
		root    string
		want    string
	}{
		{pattern: "فاعل", root: "كتب", want: "كاتب"},
		{pattern: "مفعول", root: "كتب", want: "مكتوب"},
		{pattern: "استفعال", root: "خرج", want: "استخراج"},
		{pattern: "فاعل", root: "علم", want: "مامم"}, // ع and ل are substituted again
		{pattern: "فاعل", root: "عمل", want: "مامل"},
		{pattern: "مفعول", root: "فهم", want: "مفهوم"},
		{pattern: "فعيل", root: "قال", want: "قايل"},
		{pattern: "فعلل", root: "دحر", want: "دحرر"}, // every occurrence is replaced
	}
	for _, tt := range tests {
		s, err := NewScheme(tt.pattern, tt.pattern, "", Other)
		if err != nil {
			t.Fatal(err)
		}
		got, err := s.Apply(tt.root)
		if err != nil {
			t.Fatalf("apply %s to %s failed: %v", tt.pattern, tt.root, err)
		}
		if got != tt.want {
			t.Fatalf("apply %s to %s: got %q, want %q", tt.pattern, tt.root, got, tt.want)
		}
	}
}

func TestSchemeApplyRejectsNonTrilateral(t *testing.T) {
	s := StandardSchemes()[0]
	for _, root := range []string{"", "كت", "كتبت"} {
		_, err := s.Apply(root)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument for %q, got %v", root, err)
		}
		if !errors.Is(err, ErrInvalidRoot) {
			t.Fatalf("error for %q should also be ErrInvalidRoot, got %v", root, err)
		}
	}
}

func TestNewSchemeChecksPlaceholders(t *testing.T) {
	if _, err := NewScheme("x", "فاع", "", Other); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for pattern without ل, got %v", err)
	}
	if _, err := NewScheme(" ", "فعل", "", Other); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for empty name, got %v", err)
	}
	if _, err := NewScheme("لعف", "لعف", "", Other); err != nil {
		t.Fatalf("placeholders in any order should be accepted: %v", err)
	}
}

func TestSchemeMatchesAppliedWord(t *testing.T) {
	roots := []string{"كتب", "درس", "علم", "قرأ", "فعل", "سأل"}
	for _, s := range StandardSchemes() {
		for _, root := range roots {
			word, err := s.Apply(root)
			if err != nil {
				t.Fatal(err)
			}
			if !s.Matches(word, root) {
				t.Fatalf("scheme %s should match %s for root %s", s.Name(), word, root)
			}
		}
	}
}

func TestSchemeMatchesNeverFails(t *testing.T) {
	s := StandardSchemes()[0]
	if s.Matches("كاتب", "كتبت") {
		t.Fatalf("four-letter root should not match")
	}
	if s.Matches("", "كتب") || s.Matches("كاتب", "") {
		t.Fatalf("empty arguments should not match")
	}
	if s.Matches("مكتوب", "كتب") {
		t.Fatalf("فاعل should not match مكتوب")
	}
	var nilScheme *Scheme
	if nilScheme.Matches("كاتب", "كتب") {
		t.Fatalf("nil scheme should not match")
	}
}

func TestSchemeEqualityByPattern(t *testing.T) {
	a, _ := NewScheme("a-agent", "فاعل", "", AgentNoun)
	b, _ := NewScheme("b-agent", "فاعل", "other description", Other)
	c, _ := NewScheme("a-agent", "مفعول", "", PatientNoun)
	if !a.Equal(b) {
		t.Fatalf("schemes with equal patterns should be equal")
	}
	if a.Equal(c) {
		t.Fatalf("schemes with different patterns should differ")
	}
	if a.IdentityHash() == b.IdentityHash() {
		t.Fatalf("identity hash should follow the name, not the pattern")
	}
	if a.IdentityHash() != c.IdentityHash() {
		t.Fatalf("equal names should hash equally")
	}
}

func TestSchemeCopies(t *testing.T) {
	s := StandardSchemes()[0]
	d := s.WithDescription("changed").WithType(Other)
	if s.Description() == "changed" || s.Type() != AgentNoun {
		t.Fatalf("original scheme has been modified: %v", s)
	}
	if d.Name() != s.Name() || d.Description() != "changed" || d.Type() != Other {
		t.Fatalf("copy not as expected: %v", d)
	}
	if got := s.String(); got != "فاعل (فاعل) - agent-noun" {
		t.Fatalf("unexpected string form %q", got)
	}
}

func TestStandardCatalog(t *testing.T) {
	schemes := StandardSchemes()
	if len(schemes) != 10 {
		t.Fatalf("expected 10 standard schemes, have %d", len(schemes))
	}
	names := make(map[string]bool)
	for _, s := range schemes {
		names[s.Name()] = true
	}
	if len(names) != 10 {
		t.Fatalf("standard scheme names should be unique, have %d distinct", len(names))
	}
	table := NewSchemeTable(0)
	if n := LoadStandardSchemes(table); n != 10 || table.Size() != 10 {
		t.Fatalf("expected 10 schemes in table, loaded %d, size %d", n, table.Size())
	}
}
