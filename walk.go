package glob

import (
	"iter"
	"regexp"
	"strings"
)

// walker carries the state of one traversal: the filesystem collaborator,
// the raw tail segments, their compiled matchers, and the dotfile policy.
// A walker is created per call and discarded with it.
type walker struct {
	fsys     *fileSystem
	tail     []string
	matchers []*regexp.Regexp
	dotfiles bool
}

func newWalker(fsys *fileSystem, tail []string, dotfiles bool) (*walker, error) {
	matchers, err := compileSegments(tail)
	if err != nil {
		return nil, err
	}
	return &walker{fsys: fsys, tail: tail, matchers: matchers, dotfiles: dotfiles}, nil
}

// sequence returns the lazy stream of matches rooted at prefix. Each call
// starts a fresh traversal; a consumer that stops pulling stops all
// further filesystem access, since nothing is listed ahead of demand.
func (w *walker) sequence(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		w.walk(prefix, 0, yield)
	}
}

// walk enumerates one directory level per tail segment, depth-first and
// left-to-right in listing order. A directory that cannot be listed —
// missing, unreadable, or actually a file — is a dead branch, not an
// error: traversal continues with its siblings. walk returns false once
// the consumer stops pulling.
func (w *walker) walk(dir string, depth int, yield func(string) bool) bool {
	entries, err := w.fsys.ListDir(dir)
	if err != nil {
		return true
	}

	// No segments left: everything at this level is a match.
	if depth == len(w.tail) {
		for _, name := range entries {
			if !yield(joinEntry(dir, name)) {
				return false
			}
		}
		return true
	}

	seg, re := w.tail[depth], w.matchers[depth]
	last := depth == len(w.tail)-1
	for _, name := range entries {
		if hidden(name) && !w.dotfiles && !dotSegment(seg) {
			continue
		}
		if !re.MatchString(name) {
			continue
		}
		p := joinEntry(dir, name)
		if last {
			if !yield(p) {
				return false
			}
			continue
		}
		// More segments to consume: only directories can go deeper.
		if !w.fsys.IsDir(p) {
			continue
		}
		if !w.walk(p, depth+1, yield) {
			return false
		}
	}
	return true
}

// hidden reports whether an entry name is a dotfile.
func hidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// dotSegment reports whether a pattern segment spells out a leading dot,
// bare or backslash-escaped. Such a segment opts its own level into
// dotfile matches; other levels are unaffected.
func dotSegment(seg string) bool {
	return strings.HasPrefix(seg, ".") || strings.HasPrefix(seg, `\.`)
}

// joinEntry appends an entry name to a directory prefix. A prefix of "."
// stands for the current directory and does not appear in results, so
// relative patterns yield relative paths.
func joinEntry(dir, name string) string {
	switch dir {
	case ".":
		return name
	case "/":
		return "/" + name
	default:
		return dir + "/" + name
	}
}
