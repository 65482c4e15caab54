package sarf

import "fmt"

// Generated is one word produced by Engine.GenerateAll.
type Generated struct {
	Root   string
	Scheme string
	Word   string
}

func (g Generated) String() string {
	return fmt.Sprintf("%s + %s → %s", g.Root, g.Scheme, g.Word)
}

// ValidationResult is the outcome of Engine.Validate. SchemeName is set
// only for valid words.
type ValidationResult struct {
	Valid      bool
	SchemeName string
	Message    string
}

func (v ValidationResult) String() string {
	if v.Valid {
		return "✓ yes, scheme: " + v.SchemeName
	}
	return "✗ no, " + v.Message
}

// DecompositionResult is the outcome of Engine.Decompose. Root and
// SchemeName are set only on success.
type DecompositionResult struct {
	Success    bool
	Root       string
	SchemeName string
	Message    string
}

func (d DecompositionResult) String() string {
	if d.Success {
		return fmt.Sprintf("✓ root: %s | scheme: %s", d.Root, d.SchemeName)
	}
	return "✗ " + d.Message
}
