package env

import (
	"os"
	"regexp"
	"sort"
)

var referencePattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}`)

// LookupFunc resolves a variable name.
type LookupFunc func(name string) (string, bool)

// Expand replaces ${VAR} and ${VAR:-default} using the process environment.
// Unset variables without a default expand to "".
func Expand(s string) string {
	out, _ := ExpandWith(s, os.LookupEnv)
	return out
}

// ExpandWith is Expand with a custom lookup. It also returns the names of
// referenced variables that were unset and had no default, in order of
// first appearance.
func ExpandWith(s string, lookup LookupFunc) (string, []string) {
	var missing []string
	seen := make(map[string]bool)

	out := referencePattern.ReplaceAllStringFunc(s, func(match string) string {
		groups := referencePattern.FindStringSubmatch(match)
		name := groups[1]
		if val, ok := lookup(name); ok && val != "" {
			return val
		}
		if len(match) > len(name)+3 {
			// ${NAME:-...} form, default may be empty
			return groups[2]
		}
		if !seen[name] {
			seen[name] = true
			missing = append(missing, name)
		}
		return ""
	})

	return out, missing
}

// ExpandMap applies ExpandWith to every value in m and returns a new map plus
// the sorted list of missing variables.
func ExpandMap(m map[string]string, lookup LookupFunc) (map[string]string, []string) {
	if m == nil {
		return nil, nil
	}

	var missing []string
	seen := make(map[string]bool)
	out := make(map[string]string, len(m))
	for k, v := range m {
		expanded, miss := ExpandWith(v, lookup)
		out[k] = expanded
		for _, name := range miss {
			if !seen[name] {
				seen[name] = true
				missing = append(missing, name)
			}
		}
	}
	sort.Strings(missing)
	return out, missing
}
