package glob

import (
	"fmt"
	"regexp"
	"strings"
)

// regexOnly is the set of characters that carry meaning in a regular
// expression but not in a glob segment. They always match themselves.
const regexOnly = ".()|+$^{}"

// compileSegment translates one glob segment into a regular expression
// anchored over a whole path component — a match is never a substring
// match.
//
// Unescaped "*" matches any run of zero or more characters. Unescaped "?"
// passes through as the regex optional operator, so it makes the atom
// before it optional: "m?ain" matches both "main" and "ain". This is not
// POSIX glob behavior and is kept deliberately. Unescaped "[" and "]"
// pass through as regex character classes. A backslash escapes the next
// character, which then matches literally regardless of any glob or regex
// meaning.
//
// Compilation is pure: the same segment always yields the same matcher,
// so callers compile each distinct segment once per walk.
func compileSegment(seg string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteByte('^')
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		switch {
		case escaped(seg, i):
			sb.WriteString(regexp.QuoteMeta(string(c)))
		case c == '\\':
			if i == len(seg)-1 {
				sb.WriteString(`\\`) // trailing backslash matches itself
			}
			// otherwise the backslash only marks the next character
		case c == '*':
			sb.WriteString(".*")
		case c == '?' || c == '[' || c == ']':
			sb.WriteByte(c)
		case strings.IndexByte(regexOnly, c) >= 0:
			sb.WriteString(regexp.QuoteMeta(string(c)))
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('$')

	re, err := regexp.Compile(sb.String())
	if err != nil {
		// A leading "?" or an unterminated "[..." produces an expression
		// the regexp engine rejects; surface it as a pattern error.
		return nil, fmt.Errorf("%w: segment %q: %v", ErrInvalidPattern, seg, err)
	}
	return re, nil
}

// compileSegments compiles a run of segments up front so that a malformed
// segment fails the whole call instead of surfacing mid-walk.
func compileSegments(segs []string) ([]*regexp.Regexp, error) {
	matchers := make([]*regexp.Regexp, len(segs))
	for i, seg := range segs {
		re, err := compileSegment(seg)
		if err != nil {
			return nil, err
		}
		matchers[i] = re
	}
	return matchers, nil
}
