// Package sanitize provides named string transforms and chain composition
// for cleaning input values before validation.
//
// Transforms resolve by name so chains can live next to rule strings in
// configuration:
//
//	chain, err := sanitize.Chain("trim|lower")
//	clean := sanitize.Apply("  User@Example.COM ", chain...)
//	// "user@example.com"
//
// Custom transforms register at startup with Register. Unknown names are
// configuration errors surfaced by Chain, never silent no-ops.
//
// pkg/validate wires chains to fields through its WithSanitizers option;
// sanitization runs once against a copy of the input, so every rule sees
// the same cleaned snapshot and the caller's map is never mutated.
package sanitize
