package operation

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Sighe83/pricepatch/pkg/config"
	"github.com/Sighe83/pricepatch/pkg/patch"
	"github.com/Sighe83/pricepatch/pkg/status"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is the pricepatch configuration
	Config *config.Config
	// Patcher applies substitution rules to file content
	Patcher patch.Patcher
	// UserLogger reports per-file outcomes
	UserLogger *status.UserLogger
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (*Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Patcher == nil {
		return nil, errors.Errorf("patcher is required")
	}
	if opts.UserLogger == nil {
		return nil, errors.Errorf("user logger is required")
	}

	op := &Operator{
		config:     opts.Config,
		patcher:    opts.Patcher,
		userLogger: opts.UserLogger,
	}
	if len(opts.Config.Rules) == 0 {
		op.ruleset = patch.PriceMapping()
	}
	return op, nil
}

// 🎮 Operator applies the effective ruleset to the configured targets
type Operator struct {
	config     *config.Config
	patcher    patch.Patcher
	userLogger *status.UserLogger
	ruleset    patch.Ruleset // built-in ruleset when no rules are configured
}

// 📊 Summary aggregates the outcome of a patch run
type Summary struct {
	FilesExamined int
	FilesModified int
	Replacements  int
	Confirmation  string
}

type fileResult struct {
	path         string
	modified     bool
	replacements int
}

// 🏃 Patch runs the substitution rules over every configured target,
// rewriting modified files in place. In dry-run mode files are left
// untouched and would-be changes are reported instead.
func (o *Operator) Patch(ctx context.Context) (*Summary, error) {
	logger := zerolog.Ctx(ctx)

	files, err := o.resolveTargets()
	if err != nil {
		return nil, err
	}
	logger.Debug().Strs("files", files).Msg("resolved targets")

	results := make([]fileResult, len(files))
	if o.config.Async {
		g, gctx := errgroup.WithContext(ctx)
		for i, file := range files {
			i, file := i, file
			g.Go(func() error {
				res, err := o.patchFile(gctx, file)
				if err != nil {
					o.userLogger.LogFileChange(status.FileChange{Type: status.FileError, Path: file, Error: err})
					return errors.Errorf("patching %s: %w", file, err)
				}
				results[i] = *res
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, file := range files {
			res, err := o.patchFile(ctx, file)
			if err != nil {
				o.userLogger.LogFileChange(status.FileChange{Type: status.FileError, Path: file, Error: err})
				return nil, errors.Errorf("patching %s: %w", file, err)
			}
			results[i] = *res
		}
	}

	summary := &Summary{FilesExamined: len(results)}
	for _, res := range results {
		o.reportFile(res)
		if res.modified {
			summary.FilesModified++
			summary.Replacements += res.replacements
		}
	}
	summary.Confirmation = o.confirmation(summary)

	return summary, nil
}

// 🔍 resolveTargets expands the configured targets into concrete file paths.
// Targets without glob metacharacters are used verbatim so that a missing
// file surfaces as a read error rather than an empty match.
func (o *Operator) resolveTargets() ([]string, error) {
	var files []string
	for _, target := range o.config.Targets {
		if !strings.ContainsAny(target, "*?[{") {
			files = append(files, target)
			continue
		}

		matches, err := doublestar.FilepathGlob(target)
		if err != nil {
			return nil, errors.Errorf("matching pattern %q: %w", target, err)
		}
		if len(matches) == 0 {
			return nil, errors.Errorf("pattern %q matched no files", target)
		}
		files = append(files, matches...)
	}
	return files, nil
}

// 📄 patchFile applies the effective rules to a single file in place
func (o *Operator) patchFile(ctx context.Context, path string) (*fileResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Errorf("stat file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}

	rules := o.rulesFor(path)
	if err := o.patcher.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	result, err := o.patcher.Patch(ctx, bytes.NewReader(data), rules)
	if err != nil {
		return nil, errors.Errorf("applying rules: %w", err)
	}

	res := &fileResult{
		path:         path,
		modified:     result.WasModified,
		replacements: result.ReplacementCount,
	}
	if !result.WasModified || o.config.DryRun {
		return res, nil
	}

	if err := os.WriteFile(path, result.ModifiedContent, info.Mode().Perm()); err != nil {
		return nil, errors.Errorf("writing file: %w", err)
	}
	return res, nil
}

// 🔄 rulesFor returns the effective rules for a path: configured rules
// filtered by their file restriction, or the built-in ruleset when no
// rules are configured
func (o *Operator) rulesFor(path string) []patch.Rule {
	if len(o.config.Rules) == 0 {
		return o.ruleset.Rules
	}

	var rules []patch.Rule
	for _, r := range o.config.Rules {
		// Skip if this rule is for a specific file and it's not this file
		if r.File != nil && *r.File != path {
			continue
		}
		rules = append(rules, patch.Rule{Pattern: r.Pattern, Replace: r.Replace, Guard: r.Guard})
	}
	return rules
}

// 📝 reportFile emits the per-file outcome
func (o *Operator) reportFile(res fileResult) {
	change := status.FileChange{Path: res.path, Replacements: res.replacements}
	switch {
	case !res.modified:
		change.Type = status.FileUnchanged
	case o.config.DryRun:
		change.Type = status.FilePending
	default:
		change.Type = status.FilePatched
	}
	o.userLogger.LogFileChange(change)
}

// ✅ confirmation picks the line reported after a successful run. The
// built-in ruleset carries its own fixed confirmation; configured rules get
// a generic summary.
func (o *Operator) confirmation(summary *Summary) string {
	if o.config.DryRun {
		return ""
	}
	if len(o.config.Rules) == 0 {
		return o.ruleset.Confirmation
	}
	return fmt.Sprintf("Patched %d of %d file(s), %d replacement(s)",
		summary.FilesModified, summary.FilesExamined, summary.Replacements)
}
