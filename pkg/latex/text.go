package latex

import "strings"

var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape escapes LaTeX special characters in running text.
func Escape(s string) string { return escaper.Replace(s) }

// Fracify rewrites "lhs = num/den" as "lhs = \frac{num}{den}". The equation
// is returned unchanged unless its right hand side holds exactly one '/'
// outside any brackets, the numerator has no top-level sum or difference,
// and the denominator is a single factor.
func Fracify(eq string) string {
	lhs, rhs, ok := strings.Cut(eq, "=")
	if !ok || strings.Count(rhs, "/") != 1 {
		return eq
	}
	slash := strings.IndexByte(rhs, '/')
	if depth(rhs[:slash]) != 0 {
		return eq
	}
	num := strings.TrimSpace(rhs[:slash])
	den := strings.TrimSpace(rhs[slash+1:])
	if num == "" || den == "" {
		return eq
	}
	if topLevel(num, "+-") || topLevel(den, "+- ") || strings.Contains(den, `\cdot`) {
		return eq
	}
	return lhs + `= \frac{` + num + "}{" + den + "}"
}

// topLevel reports whether s contains any of chars outside brackets.
func topLevel(s, chars string) bool {
	d := 0
	for _, r := range s {
		switch {
		case strings.ContainsRune("{([", r):
			d++
		case strings.ContainsRune("})]", r):
			d--
		case d == 0 && strings.ContainsRune(chars, r):
			return true
		}
	}
	return false
}

// depth returns the bracket nesting depth at the end of s.
func depth(s string) int {
	d := 0
	for _, r := range s {
		switch r {
		case '{', '(', '[':
			d++
		case '}', ')', ']':
			d--
		}
	}
	return d
}
