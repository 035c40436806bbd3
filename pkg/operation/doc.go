/*
Package operation implements the core business logic for patching files in place.

	+-------------+
	|  Operation  |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+
	|    Patch    |
	| (Transform) |
	+------+------+

🎯 Purpose:
- Orchestrates the in-place patching of target files
- Resolves configured targets (paths and globs) to concrete files
- Coordinates between patcher (rules) and status (reporting)

🔄 Flow:
1. Resolves targets from config
2. Reads each file and applies the effective rules
3. Writes modified content back in place (unless dry-run)
4. Reports per-file outcomes via status

⚡ Key Responsibilities:
- Target resolution via glob patterns
- Rule selection (configured rules vs built-in ruleset)
- Coordinating async runs
- Error propagation with file context

📝 Design Philosophy:
The operation package owns the run, not the rules: substitution semantics
live in the patch package and user output lives in the status package. An
operator is a thin orchestrator gluing both to the filesystem. There is no
rollback: a write failure after a successful read simply loses that file's
in-memory result, which matches the one-shot maintenance nature of the tool.

🔍 Example:

	op, err := operation.New(operation.Options{
		Config:     cfg,
		Patcher:    patch.NewRegexPatcher(),
		UserLogger: userLogger,
	})
	summary, err := op.Patch(ctx)
*/
package operation
