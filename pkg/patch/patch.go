package patch

import (
	"context"
	"io"
)

// Rule defines a single substitution applied to file content
type Rule struct {
	// Pattern is the RE2 regular expression to match
	Pattern string

	// Replace is the replacement template, which may reference capture
	// groups as $1 or ${1}
	Replace string

	// Guard is an optional pattern marking the rule as already applied.
	// If the guard matches the content, the rule is skipped entirely.
	Guard string
}

// Result contains the outcome of a patch run over one piece of content
type Result struct {
	// WasModified indicates if any substitutions were made
	WasModified bool

	// ReplacementCount is the number of substitutions made
	ReplacementCount int

	// OriginalContent is the content before substitutions
	OriginalContent []byte

	// ModifiedContent is the content after substitutions
	ModifiedContent []byte
}

// Patcher defines the interface for substitution operations
type Patcher interface {
	// Patch applies the rules to the content in declaration order, each
	// rule's output feeding the next
	Patch(ctx context.Context, content io.Reader, rules []Rule) (*Result, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []Rule) error
}
