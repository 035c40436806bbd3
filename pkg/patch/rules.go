package patch

// Ruleset is a named, ordered collection of rules together with the
// confirmation line printed after a successful apply.
type Ruleset struct {
	Name         string
	Rules        []Rule
	Confirmation string
}

// PriceMapping returns the built-in ruleset that mirrors price_cents onto a
// price_amount field in the expert-sessions API responses.
//
// The GET handler spreads the session record directly into the response, so
// the mapped field is inserted right after the spread. The POST handler
// returns the new record under a shorthand key, which is expanded into a
// spread plus the mapped field.
//
// Both rules carry guards so that a second run over an already patched file
// is a no-op instead of stacking duplicate insertions.
func PriceMapping() Ruleset {
	return Ruleset{
		Name: "price-mapping",
		Rules: []Rule{
			{
				Pattern: `(\s+return \{\s+\.\.\.session,)`,
				Replace: "${1}\n        price_amount: session.price_cents, // Map price_cents to price_amount for API consistency",
				Guard:   `price_amount: session\.price_cents`,
			},
			{
				Pattern: `session: newSession`,
				Replace: "session: { ...newSession, price_amount: newSession.price_cents }",
				Guard:   `price_amount: newSession\.price_cents`,
			},
		},
		Confirmation: "Fixed price field mapping in expert-sessions API",
	}
}
