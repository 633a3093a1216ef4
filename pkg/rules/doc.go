// Package rules provides the rule catalogue and the name registry consumed
// by the validation engine in pkg/validate.
//
// Every rule implements the Rule capability: a cost used purely for
// ordering, a batchability flag, a Passes predicate receiving the value and
// the immutable data snapshot, and a Message formatter producing a
// human-readable failure sentence for a display name.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `date_rules.go`, `db_rules.go`, etc.). Exported constructors return rule
// instances; there is no hidden global state beyond the lazily-built
// default registry, so rules are stateless and goroutine-safe.
//
// Three refinements of Rule drive engine behavior:
//   - ControlRule – marker rules (sometimes, nullable, bail) that never fail
//     but may skip the rest of a field's rules
//   - DBRule      – batchable database-backed checks (unique, exists)
//     deferred to the batch executor
//   - CompositeDBRule – multi-column uniqueness resolved via point lookup
//
// # Registry
//
// Rule strings resolve through a Registry mapping names to factories.
// Default() returns the registry with every built-in; custom rules are
// added with Register:
//
//	reg := rules.Default()
//	reg.Register("even", func(args []string) (rules.Rule, error) { ... })
//
// Unknown names and malformed arguments surface as configuration errors
// (ErrUnknownRule, ErrBadRuleArgs) at schema compilation, never at
// validation time.
package rules
