// Package glob matches filesystem paths against Unix-style glob patterns
// and enumerates the matches lazily, one directory level at a time.
//
// Patterns are split on "/" into segments. Segments without wildcards form
// a literal prefix that is resolved directly; from the first wildcard
// segment on, the walker lists one directory per segment and only recurses
// into entries that match, so subtrees the pattern rules out are never
// touched.
//
// # Quick Start
//
//	matches, err := glob.Glob("src/*/main.go")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// matches == []string{"src/app/main.go", "src/tool/main.go"}
//
//	ok, err := glob.Match("src/*/main.go", "src/app/main.go")
//	// ok == true
//
//	seq, err := glob.Iter("/var/log/*.log")
//	for p := range seq {
//	    fmt.Println(p) // stop any time; nothing further is listed
//	}
//
// # Pattern Syntax
//
//   - "*" matches any run of zero or more characters within one segment
//   - "?" makes the character before it optional: "m?ain" matches both
//     "main" and "ain" (this deviates from POSIX glob on purpose)
//   - "[abc]" and "[a-z]" match character classes
//   - "\" escapes the next character, so "\*" matches a literal "*"
//   - a leading "/" anchors the pattern at the filesystem root
//   - a leading "~" expands once to the home directory
//   - repeated slashes and "." segments are redundant and collapse away
//   - ".." is allowed in the literal prefix but never after a wildcard;
//     such patterns fail with ErrInvalidPattern
//
// There is no "**" recursive descent and no "{a,b}" brace expansion.
//
// # Dotfiles
//
// Entries whose names start with "." are skipped unless the pattern
// segment for that level itself starts with a literal "." or the globber
// was built with WithDotfiles. The check is per level: "*/.git" hides
// dotfiles at the first level and shows them at the second.
//
// # Ordering and Laziness
//
// Results come out depth-first in the order the filesystem lists each
// directory; no global sort is imposed. Iter returns a pull-based
// sequence: each call is a fresh traversal, and abandoning the sequence
// early means the remaining branches are never listed. The filesystem is
// read live — a tree mutated mid-walk may produce an inconsistent
// snapshot. Directories that disappear or refuse listing mid-walk simply
// yield nothing; traversal carries on with their siblings.
package glob

import (
	"iter"
	"strings"

	"github.com/spf13/afero"
)

// Option configures a Globber.
type Option func(*Globber)

// WithDotfiles makes every segment match entries whose names start with
// ".", even when the segment does not spell the dot out.
func WithDotfiles() Option {
	return func(g *Globber) { g.dotfiles = true }
}

// WithFS runs the globber against fsys instead of the OS filesystem.
func WithFS(fsys afero.Fs) Option {
	return func(g *Globber) { g.fsys.fs = fsys }
}

// WithHome overrides the directory a leading "~" expands to. Without it,
// the expansion asks the OS for the current user's home directory.
func WithHome(dir string) Option {
	return func(g *Globber) { g.fsys.home = dir }
}

// Globber matches glob patterns against one filesystem. It is immutable
// after New and safe for concurrent use; every call runs an independent
// traversal with no shared cursor.
type Globber struct {
	fsys     *fileSystem
	dotfiles bool
}

// New returns a Globber over the OS filesystem, adjusted by opts.
func New(opts ...Option) *Globber {
	g := &Globber{fsys: newOSFileSystem()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Glob returns every existing path matching pattern, in depth-first
// listing order. A pattern whose prefix names nothing yields an empty
// result, not an error; errors are reserved for malformed patterns.
func (g *Globber) Glob(pattern string) ([]string, error) {
	seq, err := g.Iter(pattern)
	if err != nil {
		return nil, err
	}
	var matches []string
	for p := range seq {
		matches = append(matches, p)
	}
	return matches, nil
}

// Iter returns the lazy sequence of paths matching pattern. The pattern
// is parsed and compiled before the sequence is handed out, so a
// malformed pattern fails here rather than mid-iteration. The sequence is
// finite, single-use, and safe to abandon at any point.
func (g *Globber) Iter(pattern string) (iter.Seq[string], error) {
	parsed, err := parsePattern(pattern, g.fsys)
	if err != nil {
		return nil, err
	}

	// No wildcards at all: the prefix is the only candidate, and it has
	// to exist to count as a match.
	if len(parsed.tail) == 0 {
		prefix := parsed.prefix
		return func(yield func(string) bool) {
			if g.fsys.Exists(prefix) {
				yield(prefix)
			}
		}, nil
	}

	w, err := newWalker(g.fsys, parsed.tail, g.dotfiles)
	if err != nil {
		return nil, err
	}
	return w.sequence(parsed.prefix), nil
}

// Match reports whether path is one of the paths pattern globs to,
// without enumerating any directory. The path must exist; it is then
// simplified lexically and compared segment against segment, so
// "src/./app/main.go" matches "src/*/main.go". Dotfile policy plays no
// part here beyond what the pattern's own leading dots encode.
func (g *Globber) Match(pattern, path string) (bool, error) {
	parsed, err := parsePattern(pattern, g.fsys)
	if err != nil {
		return false, err
	}
	matchers, err := compileSegments(parsed.matchSegs)
	if err != nil {
		return false, err
	}

	if !g.fsys.Exists(path) {
		return false, nil
	}

	candSegs := splitSegments(g.fsys.Canonicalize(path))
	if len(candSegs) != len(matchers) {
		return false, nil
	}
	for i, re := range matchers {
		if !re.MatchString(candSegs[i]) {
			return false, nil
		}
	}
	return true, nil
}

// Glob matches pattern against the OS filesystem. See Globber.Glob.
func Glob(pattern string, opts ...Option) ([]string, error) {
	return New(opts...).Glob(pattern)
}

// Iter returns the lazy match sequence for pattern over the OS
// filesystem. See Globber.Iter.
func Iter(pattern string, opts ...Option) (iter.Seq[string], error) {
	return New(opts...).Iter(pattern)
}

// Match reports whether path matches pattern. See Globber.Match.
func Match(pattern, path string, opts ...Option) (bool, error) {
	return New(opts...).Match(pattern, path)
}

// Quote escapes s so that the result globs to exactly the literal s:
// every "*", "?", "[", "]" and "\" gets a backslash in front of it.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '*', '?', '[', ']', '\\':
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
