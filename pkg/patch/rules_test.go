package patch

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routeGet = `export async function GET() {
  const sessions = await db.expertSessions.list();
  return NextResponse.json(
    sessions.map((session) => {
      return {
        ...session,
        expert_name: session.expert?.name,
      };
    })
  );
}
`

const routeGetPatched = `export async function GET() {
  const sessions = await db.expertSessions.list();
  return NextResponse.json(
    sessions.map((session) => {
      return {
        ...session,
        price_amount: session.price_cents, // Map price_cents to price_amount for API consistency
        expert_name: session.expert?.name,
      };
    })
  );
}
`

const routePost = `export async function POST(request: Request) {
  const body = await request.json();
  const newSession = await db.expertSessions.create(body);
  return NextResponse.json({ session: newSession }, { status: 201 });
}
`

const routePostPatched = `export async function POST(request: Request) {
  const body = await request.json();
  const newSession = await db.expertSessions.create(body);
  return NextResponse.json({ session: { ...newSession, price_amount: newSession.price_cents } }, { status: 201 });
}
`

func TestPriceMapping_Patch(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		want      string
		wantCount int
	}{
		{
			name:      "get_handler_spread_gains_mapping",
			content:   routeGet,
			want:      routeGetPatched,
			wantCount: 1,
		},
		{
			name:      "post_handler_shorthand_expands",
			content:   routePost,
			want:      routePostPatched,
			wantCount: 1,
		},
		{
			name:      "full_route_both_handlers",
			content:   routeGet + "\n" + routePost,
			want:      routeGetPatched + "\n" + routePostPatched,
			wantCount: 2,
		},
		{
			name:      "minimal_spread_line",
			content:   "  return { ...session,",
			want:      "  return { ...session,\n        price_amount: session.price_cents, // Map price_cents to price_amount for API consistency",
			wantCount: 1,
		},
		{
			name:      "minimal_shorthand_token",
			content:   "session: newSession",
			want:      "session: { ...newSession, price_amount: newSession.price_cents }",
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patcher := NewRegexPatcher()
			result, err := patcher.Patch(
				context.Background(),
				strings.NewReader(tt.content),
				PriceMapping().Rules,
			)

			require.NoError(t, err)
			assert.True(t, result.WasModified)
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
		})
	}
}

func TestPriceMapping_NoMatchUnchanged(t *testing.T) {
	content := []byte("export async function DELETE() {\n  return new Response(null, { status: 204 });\n}\n")

	patcher := NewRegexPatcher()
	result, err := patcher.Patch(context.Background(), bytes.NewReader(content), PriceMapping().Rules)

	require.NoError(t, err)
	assert.False(t, result.WasModified)
	assert.Equal(t, 0, result.ReplacementCount)
	assert.True(t, bytes.Equal(content, result.ModifiedContent), "content must be byte-for-byte identical")
}

// A second run over already patched content must not stack duplicate
// insertions: rule guards detect the mapped field and turn both rules
// into no-ops.
func TestPriceMapping_SecondRunIsNoop(t *testing.T) {
	patcher := NewRegexPatcher()

	first, err := patcher.Patch(context.Background(), strings.NewReader(routeGet+"\n"+routePost), PriceMapping().Rules)
	require.NoError(t, err)
	require.True(t, first.WasModified)

	second, err := patcher.Patch(context.Background(), bytes.NewReader(first.ModifiedContent), PriceMapping().Rules)
	require.NoError(t, err)
	assert.False(t, second.WasModified)
	assert.Equal(t, 0, second.ReplacementCount)
	assert.Equal(t, string(first.ModifiedContent), string(second.ModifiedContent))
}

func TestPriceMapping_RulesValidate(t *testing.T) {
	patcher := NewRegexPatcher()
	require.NoError(t, patcher.ValidateRules(PriceMapping().Rules))
}
