package glob

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPattern is returned when a pattern cannot be compiled: a ".."
// segment appears after the first wildcard segment, or a wildcard segment
// does not form a valid matching expression.
var ErrInvalidPattern = errors.New("glob: invalid pattern")

// parsedPattern is a pattern split into the literal path prefix that can be
// resolved without touching the filesystem and the wildcard tail that
// drives directory traversal. An empty tail means the pattern names at
// most one path.
//
// matchSegs holds every segment in matcher form — escapes intact, home
// expansion re-quoted — for the segment-wise predicate, which compiles
// all of them rather than walking directories.
type parsedPattern struct {
	prefix    string
	tail      []string
	matchSegs []string
}

// splitSegments splits a raw pattern on "/". A leading slash (or run of
// them) becomes a single root segment "/". Empty fragments and "."
// fragments are dropped, so "foo//bar/." and "foo/./bar" split the same
// way. No escape interpretation happens here — backslashes are kept raw
// for the compiler.
func splitSegments(pattern string) []string {
	var segs []string
	rest := pattern
	if strings.HasPrefix(rest, "/") {
		segs = append(segs, "/")
		rest = strings.TrimLeft(rest, "/")
	}
	for frag := range strings.SplitSeq(rest, "/") {
		if frag == "" || frag == "." {
			continue
		}
		segs = append(segs, frag)
	}
	return segs
}

// joinSegments joins literal segments back into one path. The root marker
// alone joins to "/"; no segments at all join to ".", the current
// directory.
func joinSegments(segs []string) string {
	if len(segs) == 0 {
		return "."
	}
	if segs[0] == "/" {
		return "/" + strings.Join(segs[1:], "/")
	}
	return strings.Join(segs, "/")
}

// escaped reports whether the byte at index i is escaped. A character is
// escaped iff it is preceded by an odd-length run of backslashes; index 0
// is never escaped.
func escaped(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

// hasWildcard reports whether a segment contains an unescaped glob
// metacharacter.
func hasWildcard(seg string) bool {
	for i := 0; i < len(seg); i++ {
		switch seg[i] {
		case '*', '?', '[', ']':
			if !escaped(seg, i) {
				return true
			}
		}
	}
	return false
}

// unescapeSegment strips escape backslashes from a wildcard-free segment,
// turning the pattern spelling of a name into the name itself: `\*` is
// the file "*". A trailing backslash stands for itself, matching the
// compiler's reading.
func unescapeSegment(seg string) string {
	if !strings.ContainsRune(seg, '\\') {
		return seg
	}
	var sb strings.Builder
	sb.Grow(len(seg))
	for i := 0; i < len(seg); i++ {
		if seg[i] == '\\' && !escaped(seg, i) && i < len(seg)-1 {
			continue
		}
		sb.WriteByte(seg[i])
	}
	return sb.String()
}

// parsePattern resolves a pattern into its literal prefix and wildcard
// tail. A leading "~" segment expands once to the home directory; the
// expansion result is taken literally, so a home directory that itself
// contains "~" or metacharacters is never expanded or matched again.
// ".." may appear in the literal prefix only; anywhere in the tail it
// invalidates the whole pattern.
func parsePattern(pattern string, fsys *fileSystem) (parsedPattern, error) {
	segs := splitSegments(pattern)

	var prefixSegs, matchSegs []string
	if len(segs) > 0 && segs[0] == "~" {
		home, err := fsys.Home()
		if err != nil {
			return parsedPattern{}, fmt.Errorf("glob: expanding ~: %w", err)
		}
		for _, seg := range splitSegments(home) {
			prefixSegs = append(prefixSegs, seg)
			matchSegs = append(matchSegs, Quote(seg))
		}
		segs = segs[1:]
	}

	i := 0
	for i < len(segs) && !hasWildcard(segs[i]) {
		i++
	}
	for _, seg := range segs[:i] {
		prefixSegs = append(prefixSegs, unescapeSegment(seg))
	}
	matchSegs = append(matchSegs, segs...)
	var tail []string
	if i < len(segs) {
		tail = segs[i:]
	}

	for _, seg := range tail {
		if seg == ".." {
			return parsedPattern{}, fmt.Errorf("%w: %q: .. segment after a wildcard", ErrInvalidPattern, pattern)
		}
	}

	return parsedPattern{
		prefix:    joinSegments(prefixSegs),
		tail:      tail,
		matchSegs: matchSegs,
	}, nil
}
