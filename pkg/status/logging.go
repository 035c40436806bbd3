// Package status provides user-facing reporting for patch runs
package status

import (
	"context"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 FileChangeType represents the outcome of patching a file
type FileChangeType int

const (
	FilePatched FileChangeType = iota
	FileUnchanged
	FilePending
	FileError
)

// 🖼️ FileChange represents the result of patching one file
type FileChange struct {
	Type         FileChangeType
	Path         string
	Replacements int
	Error        error
}

// 📢 UserLogger provides user-friendly feedback about patch runs
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 🔧 EnableDebug turns on debug-level console messages
func EnableDebug() {
	pterm.EnableDebugMessages()
}

// 📝 LogFileChange logs a file change with appropriate prefix and formatting
func (u *UserLogger) LogFileChange(change FileChange) {
	counts := color.New(color.FgCyan).Sprintf("%d replacement(s)", change.Replacements)

	switch change.Type {
	case FilePatched:
		pterm.Success.WithPrefix(pterm.Prefix{Text: "⟳"}).Printf("Patched %s (%s)\n", change.Path, counts)
	case FilePending:
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "…"}).Printf("Would patch %s (%s)\n", change.Path, counts)
	case FileUnchanged:
		pterm.Info.WithPrefix(pterm.Prefix{Text: "•"}).Printf("Unchanged %s\n", change.Path)
	case FileError:
		pterm.Error.WithPrefix(pterm.Prefix{Text: "✗"}).Printf("Failed %s\n", change.Path)
		if change.Error != nil {
			pterm.Error.Println(change.Error)
		}
	}

	u.log.Debug().
		Str("path", change.Path).
		Int("replacements", change.Replacements).
		Msg("file change")
}

// ✅ LogCompletion reports the final confirmation line for a run
func (u *UserLogger) LogCompletion(message string) {
	pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(message)
}

// 📝 LogValidation logs a validation result
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		return
	}

	pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
	if err != nil {
		pterm.Error.Println(err)
	}
}
