package validate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/rules"
	"github.com/dmitrymomot/rulekit/pkg/sanitize"
)

// Validator holds a compiled schema and its configuration. It carries no
// per-call state, so one instance may serve concurrent Validate calls as
// long as the DataStore is safe for concurrent reads.
type Validator struct {
	compiled   []fieldRules
	store      DataStore
	registry   *rules.Registry
	log        *slog.Logger
	aliases    map[string]string
	sanitizers map[string][]sanitize.Transform

	// pendingSanitizers holds raw chain specs until New resolves them.
	pendingSanitizers map[string]string

	stopOnFirstError bool
	strictStore      bool
}

// Option configures a Validator at construction.
type Option func(*Validator)

// WithDataStore wires the database collaborator used by unique/exists
// rules. Without it those rules pass silently (with a logged warning).
func WithDataStore(store DataStore) Option {
	return func(v *Validator) { v.store = store }
}

// WithRegistry replaces the rule registry used to resolve rule names.
func WithRegistry(reg *rules.Registry) Option {
	return func(v *Validator) {
		if reg != nil {
			v.registry = reg
		}
	}
}

// WithLogger sets the structured logger. Defaults to logger.New().
func WithLogger(log *slog.Logger) Option {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

// WithAliases maps field names to display names used in messages, e.g.
// {"dob": "date of birth"}.
func WithAliases(aliases map[string]string) Option {
	return func(v *Validator) { v.aliases = aliases }
}

// WithStopOnFirstError halts the whole field loop at the first inline
// failure instead of collecting errors across every field.
func WithStopOnFirstError() Option {
	return func(v *Validator) { v.stopOnFirstError = true }
}

// WithStrictDataStore turns the permissive missing-DataStore default into
// a configuration error when a database-backed rule is queued.
func WithStrictDataStore() Option {
	return func(v *Validator) { v.strictStore = true }
}

// WithSanitizers declares per-field sanitization chains applied to string
// values before validation, e.g. {"email": "trim|lower"}. The whole
// snapshot is sanitized up front, so every rule sees the same values.
// Chains apply to top-level fields only; sanitization runs before path
// expansion, so a dot-notation key is a configuration error at New.
func WithSanitizers(specs map[string]string) Option {
	return func(v *Validator) {
		v.pendingSanitizers = specs
	}
}

// New compiles the schema eagerly and returns a reusable Validator.
// Malformed rule specs, unknown rule names and unknown sanitizer names all
// fail here, before any data is seen.
func New(schema Schema, opts ...Option) (*Validator, error) {
	v := &Validator{
		registry: rules.Default(),
		log:      logger.New(logger.WithAttr(slog.String("component", "validate"))),
	}
	for _, opt := range opts {
		opt(v)
	}

	compiled, err := compileSchema(schema, v.registry)
	if err != nil {
		return nil, err
	}
	v.compiled = compiled

	if len(v.pendingSanitizers) > 0 {
		v.sanitizers = make(map[string][]sanitize.Transform, len(v.pendingSanitizers))
		for field, spec := range v.pendingSanitizers {
			if strings.Contains(field, ".") {
				return nil, fmt.Errorf("sanitizer for field %q: nested fields are not supported", field)
			}
			chain, err := sanitize.Chain(spec)
			if err != nil {
				return nil, fmt.Errorf("sanitizer for field %q: %w", field, err)
			}
			v.sanitizers[field] = chain
		}
		v.pendingSanitizers = nil
	}

	return v, nil
}

// Validate runs the compiled schema against data and returns the result.
// The returned error is reserved for configuration problems (unsafe
// identifiers, strict-mode missing DataStore, DataStore failures);
// ordinary validation failures live in the Result.
func (v *Validator) Validate(ctx context.Context, data map[string]any) (*Result, error) {
	data = v.applySanitizers(data)

	flatSchema, flatData := expand(v.compiled, data)

	out := execute(flatSchema, flatData, v.stopOnFirstError, v.displayName)

	batchErrs, err := resolveBatch(ctx, out.queue, flatData, v.store, v.strictStore, v.log, v.displayName)
	if err != nil {
		return nil, err
	}

	// Batch errors merge after inline errors and evict provisionally
	// validated fields.
	for field, msgs := range batchErrs {
		out.errors[field] = append(out.errors[field], msgs...)
		delete(out.validated, field)
	}

	return newResult(out.errors, out.validated), nil
}

// applySanitizers returns a shallow copy of data with each configured
// field's string value passed through its transform chain. The original
// map is never mutated.
func (v *Validator) applySanitizers(data map[string]any) map[string]any {
	if len(v.sanitizers) == 0 {
		return data
	}
	out := make(map[string]any, len(data))
	for k, val := range data {
		out[k] = val
	}
	for field, chain := range v.sanitizers {
		if s, ok := out[field].(string); ok {
			out[field] = sanitize.Apply(s, chain...)
		}
	}
	return out
}

// displayName resolves the attribute used in messages: explicit alias
// first, otherwise the field name with underscores read as spaces.
func (v *Validator) displayName(field string) string {
	if alias, ok := v.aliases[field]; ok {
		return alias
	}
	return strings.ReplaceAll(field, "_", " ")
}
