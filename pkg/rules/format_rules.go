package rules

import (
	"encoding/json"
	"fmt"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Email validates an RFC 5322 address with the extra constraints typical
// web forms expect: a single @, a non-empty local part, and a dotted domain.
func Email() Rule {
	return funcRule{
		name: "email",
		cost: CostFormat,
		check: func(value any, _ string, _ map[string]any) bool {
			s, ok := value.(string)
			if !ok || strings.TrimSpace(s) == "" {
				return false
			}
			addr, err := mail.ParseAddress(s)
			if err != nil || addr.Address != s {
				return false
			}
			local, domain, found := strings.Cut(addr.Address, "@")
			if !found || local == "" {
				return false
			}
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s must be a valid email address.", attribute)
		},
	}
}

// URL validates an absolute http(s) URL with a host.
func URL() Rule {
	return funcRule{
		name: "url",
		cost: CostFormat,
		check: func(value any, _ string, _ map[string]any) bool {
			s, ok := value.(string)
			if !ok {
				return false
			}
			u, err := url.Parse(s)
			if err != nil {
				return false
			}
			return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s format is invalid.", attribute)
		},
	}
}

// UUID validates the canonical 36-character UUID format. Length and hyphen
// positions are checked first to avoid parsing obvious rejects.
func UUID() Rule {
	return funcRule{
		name: "uuid",
		cost: CostFormat,
		check: func(value any, _ string, _ map[string]any) bool {
			s, ok := value.(string)
			if !ok || len(s) != 36 {
				return false
			}
			if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
				return false
			}
			_, err := uuid.Parse(s)
			return err == nil
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s must be a valid UUID.", attribute)
		},
	}
}

// IP validates an IPv4 or IPv6 address.
func IP() Rule {
	return funcRule{
		name: "ip",
		cost: CostFormat,
		check: func(value any, _ string, _ map[string]any) bool {
			s, ok := value.(string)
			return ok && net.ParseIP(s) != nil
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s must be a valid IP address.", attribute)
		},
	}
}

// JSON validates that the string is well-formed JSON.
func JSON() Rule {
	return funcRule{
		name: "json",
		cost: CostFormat,
		check: func(value any, _ string, _ map[string]any) bool {
			s, ok := value.(string)
			return ok && json.Valid([]byte(s))
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s must be a valid JSON string.", attribute)
		},
	}
}

// Regex validates the string against the given pattern. The pattern is
// compiled once at schema-compilation time; a bad pattern is a
// configuration error, not a validation failure.
func Regex(args []string) (Rule, error) {
	return regexRule("regex", args, false)
}

// NotRegex validates that the string does not match the given pattern.
func NotRegex(args []string) (Rule, error) {
	return regexRule("not_regex", args, true)
}

func regexRule(name string, args []string, negate bool) (Rule, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: %s expects a pattern", ErrBadRuleArgs, name)
	}
	// Commas inside the pattern survive the argument split; rejoin them.
	pattern := strings.Join(args, ",")
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadRuleArgs, name, err)
	}
	return funcRule{
		name: name,
		cost: CostFormat,
		check: func(value any, _ string, _ map[string]any) bool {
			s, ok := value.(string)
			if !ok {
				return false
			}
			return re.MatchString(s) != negate
		},
		message: func(attribute string) string {
			return fmt.Sprintf("The %s format is invalid.", attribute)
		},
	}, nil
}
