package patch

import (
	"context"
	"io"
	"regexp"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// RegexPatcher implements Patcher using RE2 pattern substitution
type RegexPatcher struct{}

// NewRegexPatcher creates a new RegexPatcher
func NewRegexPatcher() *RegexPatcher {
	return &RegexPatcher{}
}

// Patch implements Patcher.Patch
func (p *RegexPatcher) Patch(ctx context.Context, content io.Reader, rules []Rule) (*Result, error) {
	// Read all content
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}
	if !utf8.Valid(originalContent) {
		return nil, errors.Errorf("content is not valid UTF-8 text")
	}

	// Create result with original content
	result := &Result{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	// Apply each rule in order
	currentContent := string(originalContent)
	for _, rule := range rules {
		// Skip empty rules
		if rule.Pattern == "" {
			continue
		}

		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, errors.Errorf("compiling pattern %q: %w", rule.Pattern, err)
		}

		// A matching guard means the rule already ran on this content
		if rule.Guard != "" {
			guard, err := regexp.Compile(rule.Guard)
			if err != nil {
				return nil, errors.Errorf("compiling guard %q: %w", rule.Guard, err)
			}
			if guard.MatchString(currentContent) {
				continue
			}
		}

		matches := len(re.FindAllStringIndex(currentContent, -1))
		if matches == 0 {
			continue
		}

		currentContent = re.ReplaceAllString(currentContent, rule.Replace)
		result.WasModified = true
		result.ReplacementCount += matches
	}

	// Update final content
	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// ValidateRules implements Patcher.ValidateRules
func (p *RegexPatcher) ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if rule.Pattern == "" {
			return errors.Errorf("rule %d: pattern is required", i)
		}
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return errors.Errorf("rule %d: invalid pattern: %w", i, err)
		}
		if rule.Guard != "" {
			if _, err := regexp.Compile(rule.Guard); err != nil {
				return errors.Errorf("rule %d: invalid guard: %w", i, err)
			}
		}
	}
	return nil
}
