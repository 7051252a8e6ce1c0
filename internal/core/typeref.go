package core

import "strings"

// builtinTypes is the fixed set of ROS 2 IDL primitive field types.
// These require no further resolution during flattening.
var builtinTypes = map[string]struct{}{
	"bool":    {},
	"byte":    {},
	"char":    {},
	"int8":    {},
	"uint8":   {},
	"int16":   {},
	"uint16":  {},
	"int32":   {},
	"uint32":  {},
	"int64":   {},
	"uint64":  {},
	"float32": {},
	"float64": {},
	"string":  {},
	"wstring": {},
}

// StripArraySuffix removes trailing array designators from a raw field
// type token:
//
//   - "[]"    unbounded array
//   - "[N]"   fixed-size array (N is digits)
//   - "[<=N]" bounded array with an upper limit
//
// Suffixes are trimmed from the end until none remain.  Non-array
// bracket tails are left intact and stop trimming, and bounded-string
// qualifiers are never touched: "string<=256[<=8]" becomes
// "string<=256".
func StripArraySuffix(raw string) string {
	s := raw
	for {
		lb := strings.LastIndexByte(s, '[')
		if lb <= 0 || !strings.HasSuffix(s, "]") {
			return s
		}
		inner := strings.TrimSpace(s[lb+1 : len(s)-1])
		if !isArrayBound(inner) {
			return s
		}
		s = s[:lb]
	}
}

// isArrayBound reports whether a bracket interior denotes an array
// bound: empty, all digits, or "<=" followed by digits.
func isArrayBound(inner string) bool {
	if inner == "" {
		return true
	}
	if rest, ok := strings.CutPrefix(inner, "<="); ok {
		return isAllDigits(strings.TrimSpace(rest))
	}
	return isAllDigits(inner)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// IsBuiltinType reports whether a raw field type token denotes a
// builtin primitive, including bounded string forms ("string<=N",
// "wstring<=N") and any trailing array suffixes.  "string<=" with no
// digits is not builtin.
func IsBuiltinType(raw string) bool {
	base := StripArraySuffix(raw)

	if _, ok := builtinTypes[base]; ok {
		return true
	}

	// Bounded strings: string<=N / wstring<=N.
	for _, prefix := range []string{"wstring", "string"} {
		if rest, ok := strings.CutPrefix(base, prefix); ok {
			if rest == "" {
				return true
			}
			if bound, ok := strings.CutPrefix(rest, "<="); ok {
				return isAllDigits(bound)
			}
			return false
		}
	}

	return false
}

// ResolveCustomType classifies a raw field type token against the
// enclosing message's package.  It returns the fully-qualified name of
// the referenced custom type, or false when the token is a builtin or
// an unresolvable reference shape (which is skipped, not an error):
//
//   - "pkg/msg/Type" is used as-is
//   - "pkg/Type" qualifies to "pkg/msg/Type"
//   - a bare "Type" qualifies against currentPackage
//   - any other segment count is not followed
func ResolveCustomType(raw string, currentPackage string) (string, bool) {
	if IsBuiltinType(raw) {
		return "", false
	}

	base := StripArraySuffix(raw)

	if strings.Contains(base, "/") {
		if strings.Contains(base, "/msg/") {
			return base, true
		}
		segments := strings.Split(base, "/")
		if len(segments) == 2 {
			return segments[0] + "/msg/" + segments[1], true
		}
		return "", false
	}

	return currentPackage + "/msg/" + base, true
}
