package status

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	pterm.SetDefaultOutput(&buf)
	defer pterm.SetDefaultOutput(os.Stdout)
	// The global prefix printers capture their writer at package init, so
	// SetDefaultOutput alone does not redirect them.
	for _, p := range []*pterm.PrefixPrinter{&pterm.Info, &pterm.Warning, &pterm.Success, &pterm.Error} {
		orig := p.Writer
		p.Writer = &buf
		defer func(p *pterm.PrefixPrinter, w io.Writer) { p.Writer = w }(p, orig)
	}
	fn()
	return buf.String()
}

func TestUserLogger_LogFileChange(t *testing.T) {
	tests := []struct {
		name   string
		change FileChange
		want   []string
	}{
		{
			name:   "patched",
			change: FileChange{Type: FilePatched, Path: "app/api/route.ts", Replacements: 2},
			want:   []string{"Patched", "app/api/route.ts"},
		},
		{
			name:   "pending",
			change: FileChange{Type: FilePending, Path: "app/api/route.ts", Replacements: 1},
			want:   []string{"Would patch", "app/api/route.ts"},
		},
		{
			name:   "unchanged",
			change: FileChange{Type: FileUnchanged, Path: "lib/db.ts"},
			want:   []string{"Unchanged", "lib/db.ts"},
		},
		{
			name:   "error",
			change: FileChange{Type: FileError, Path: "gone.ts", Error: errors.New("no such file")},
			want:   []string{"Failed", "gone.ts", "no such file"},
		},
	}

	logger := NewUserLogger(context.Background())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureOutput(t, func() {
				logger.LogFileChange(tt.change)
			})

			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestUserLogger_LogCompletion(t *testing.T) {
	logger := NewUserLogger(context.Background())

	out := captureOutput(t, func() {
		logger.LogCompletion("Fixed price field mapping in expert-sessions API")
	})

	assert.Contains(t, out, "Fixed price field mapping in expert-sessions API")
}

func TestUserLogger_LogValidation(t *testing.T) {
	logger := NewUserLogger(context.Background())

	out := captureOutput(t, func() {
		logger.LogValidation(false, "Command failed", errors.New("boom"))
	})

	assert.Contains(t, out, "Command failed")
	assert.Contains(t, out, "boom")
}
