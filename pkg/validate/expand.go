package validate

import (
	"sort"
	"strconv"
	"strings"
)

// expand flattens dot-notation and wildcard fields against the actual
// data. The flat schema and the flat data view it returns drive the whole
// execution pass. When no field uses dot notation, both inputs pass through
// untouched, so the common flat case pays nothing.
func expand(schema []fieldRules, data map[string]any) ([]fieldRules, map[string]any) {
	nested := false
	for _, fr := range schema {
		if strings.Contains(fr.field, ".") {
			nested = true
			break
		}
	}
	if !nested {
		return schema, data
	}

	// The flat view keeps every top-level entry so conditional rules can
	// still see sibling fields, then gains one entry per resolved path.
	flat := make(map[string]any, len(data))
	for k, v := range data {
		flat[k] = v
	}

	out := make([]fieldRules, 0, len(schema))
	for _, fr := range schema {
		switch {
		case !strings.Contains(fr.field, "."):
			out = append(out, fr)
		case !strings.Contains(fr.field, "*"):
			if v, ok := descend(data, strings.Split(fr.field, ".")); ok {
				flat[fr.field] = v
			}
			out = append(out, fr)
		default:
			for _, x := range expandWildcard(data, strings.Split(fr.field, ".")) {
				if x.present {
					flat[x.path] = x.value
				}
				out = append(out, fieldRules{field: x.path, rules: fr.rules})
			}
		}
	}
	return out, flat
}

// descend resolves a concrete dot path by sequential segment descent.
// A missing intermediate segment yields absence, never an error.
func descend(root any, segs []string) (any, bool) {
	current := root
	for _, seg := range segs {
		child, ok := childOf(current, seg)
		if !ok {
			return nil, false
		}
		current = child
	}
	return current, true
}

func childOf(container any, seg string) (any, bool) {
	switch c := container.(type) {
	case map[string]any:
		v, ok := c[seg]
		return v, ok
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(c) {
			return nil, false
		}
		return c[i], true
	}
	return nil, false
}

type leaf struct {
	path  string
	value any
}

// expansion is one concrete field produced from a wildcard pattern.
// present reports whether the data actually holds a value at the path.
type expansion struct {
	path    string
	value   any
	present bool
}

// expandWildcard substitutes each * segment with the indices or keys of
// the container actually present in the data, breadth-first over an
// explicit frontier so arbitrarily deep paths never grow the call stack.
// An absent or non-iterable container produces zero expansions, but
// branching stops at the last *: segments after it always yield a field,
// absent values included, so presence rules can fire on elements missing
// the trailing key.
func expandWildcard(data map[string]any, segs []string) []expansion {
	lastStar := 0
	for i, seg := range segs {
		if seg == "*" {
			lastStar = i
		}
	}

	frontier := []leaf{{path: "", value: any(data)}}
	for _, seg := range segs[:lastStar+1] {
		next := make([]leaf, 0, len(frontier))
		for _, node := range frontier {
			if seg != "*" {
				if child, ok := childOf(node.value, seg); ok {
					next = append(next, leaf{path: joinPath(node.path, seg), value: child})
				}
				continue
			}
			switch c := node.value.(type) {
			case []any:
				for i, el := range c {
					next = append(next, leaf{path: joinPath(node.path, strconv.Itoa(i)), value: el})
				}
			case map[string]any:
				keys := make([]string, 0, len(c))
				for k := range c {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					next = append(next, leaf{path: joinPath(node.path, k), value: c[k]})
				}
			}
		}
		frontier = next
	}

	tail := segs[lastStar+1:]
	out := make([]expansion, 0, len(frontier))
	for _, node := range frontier {
		path := node.path
		for _, seg := range tail {
			path = joinPath(path, seg)
		}
		v, ok := descend(node.value, tail)
		out = append(out, expansion{path: path, value: v, present: ok})
	}
	return out
}

func joinPath(prefix, seg string) string {
	if prefix == "" {
		return seg
	}
	return prefix + "." + seg
}
