package rules

import (
	"fmt"
	"sync"
)

// Factory builds a rule instance from its positional string arguments.
type Factory func(args []string) (Rule, error)

// Registry maps rule names to factories. It is safe for concurrent use;
// registration normally happens once at startup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Resolve instantiates the named rule with the given arguments.
func (r *Registry) Resolve(name string, args []string) (Rule, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	rule, err := f(args)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", name, err)
	}
	return rule, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the shared registry holding every built-in rule.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = newBuiltinRegistry()
	})
	return defaultRegistry
}

func newBuiltinRegistry() *Registry {
	r := NewRegistry()

	// control
	r.Register("sometimes", noArgs(Sometimes))
	r.Register("nullable", noArgs(Nullable))
	r.Register("bail", noArgs(Bail))

	// presence
	r.Register("required", noArgs(Required))
	r.Register("filled", noArgs(Filled))
	r.Register("present", noArgs(Present))
	r.Register("required_if", twoArgs("required_if", RequiredIf))
	r.Register("required_unless", twoArgs("required_unless", RequiredUnless))
	r.Register("required_with", oneArg("required_with", RequiredWith))
	r.Register("required_without", oneArg("required_without", RequiredWithout))

	// type
	r.Register("string", noArgs(IsString))
	r.Register("integer", noArgs(IsInteger))
	r.Register("numeric", noArgs(IsNumeric))
	r.Register("boolean", noArgs(IsBoolean))
	r.Register("array", noArgs(IsArray))

	// string / size
	r.Register("min", numericArg("min", Min))
	r.Register("max", numericArg("max", Max))
	r.Register("between", Between)
	r.Register("size", numericArg("size", Size))
	r.Register("digits", intArg("digits", Digits))
	r.Register("digits_between", DigitsBetween)
	r.Register("alpha", noArgs(Alpha))
	r.Register("alpha_num", noArgs(AlphaNum))
	r.Register("alpha_dash", noArgs(AlphaDash))
	r.Register("starts_with", listArgs("starts_with", StartsWith))
	r.Register("ends_with", listArgs("ends_with", EndsWith))
	r.Register("lowercase", noArgs(Lowercase))
	r.Register("uppercase", noArgs(Uppercase))
	r.Register("in", listArgs("in", In))
	r.Register("not_in", listArgs("not_in", NotIn))

	// comparison
	r.Register("same", oneArg("same", Same))
	r.Register("different", oneArg("different", Different))
	r.Register("confirmed", noArgs(Confirmed))
	r.Register("gt", oneArg("gt", Gt))
	r.Register("gte", oneArg("gte", Gte))
	r.Register("lt", oneArg("lt", Lt))
	r.Register("lte", oneArg("lte", Lte))

	// format
	r.Register("email", noArgs(Email))
	r.Register("url", noArgs(URL))
	r.Register("uuid", noArgs(UUID))
	r.Register("ip", noArgs(IP))
	r.Register("json", noArgs(JSON))
	r.Register("regex", Regex)
	r.Register("not_regex", NotRegex)

	// date
	r.Register("date", noArgs(Date))
	r.Register("date_format", oneArg("date_format", DateFormat))
	r.Register("after", oneArg("after", After))
	r.Register("before", oneArg("before", Before))
	r.Register("after_or_equal", oneArg("after_or_equal", AfterOrEqual))
	r.Register("before_or_equal", oneArg("before_or_equal", BeforeOrEqual))

	// database
	r.Register("unique", Unique)
	r.Register("exists", Exists)
	r.Register("unique_composite", UniqueComposite)

	return r
}

// Factory adapters for the common argument shapes.

func noArgs(build func() Rule) Factory {
	return func([]string) (Rule, error) { return build(), nil }
}

func oneArg(name string, build func(arg string) Rule) Factory {
	return func(args []string) (Rule, error) {
		if len(args) < 1 || args[0] == "" {
			return nil, fmt.Errorf("%w: %s expects one argument", ErrBadRuleArgs, name)
		}
		return build(args[0]), nil
	}
}

func twoArgs(name string, build func(a, b string) Rule) Factory {
	return func(args []string) (Rule, error) {
		if len(args) < 2 {
			return nil, fmt.Errorf("%w: %s expects two arguments", ErrBadRuleArgs, name)
		}
		return build(args[0], args[1]), nil
	}
}

func listArgs(name string, build func(values []string) Rule) Factory {
	return func(args []string) (Rule, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: %s expects at least one argument", ErrBadRuleArgs, name)
		}
		return build(args), nil
	}
}

func numericArg(name string, build func(n float64) Rule) Factory {
	return func(args []string) (Rule, error) {
		if len(args) < 1 {
			return nil, fmt.Errorf("%w: %s expects a numeric argument", ErrBadRuleArgs, name)
		}
		n, err := parseFloat(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q is not numeric", ErrBadRuleArgs, name, args[0])
		}
		return build(n), nil
	}
}

func intArg(name string, build func(n int) Rule) Factory {
	return func(args []string) (Rule, error) {
		if len(args) < 1 {
			return nil, fmt.Errorf("%w: %s expects an integer argument", ErrBadRuleArgs, name)
		}
		n, err := parseInt(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q is not an integer", ErrBadRuleArgs, name, args[0])
		}
		return build(n), nil
	}
}
