package record

import (
	"fmt"

	"github.com/gobwas/glob"

	"procsig/internal/app/errors"
)

// Filter decides which captured lines are kept in a record
type Filter interface {
	Match(line string) bool
}

// filter implements the Filter interface with glob patterns
type filter struct {
	patterns []glob.Glob
	ignores  []glob.Glob
}

// NewFilter creates a new Filter from include and ignore glob patterns. An
// empty include set keeps every line that is not ignored.
func NewFilter(includes, ignores []string) (Filter, error) {
	f := &filter{
		patterns: make([]glob.Glob, 0, len(includes)),
		ignores:  make([]glob.Glob, 0, len(ignores)),
	}

	for _, p := range includes {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errors.ErrInvalidGlobPattern, p)
		}

		f.patterns = append(f.patterns, g)
	}

	for _, p := range ignores {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errors.ErrInvalidGlobPattern, p)
		}

		f.ignores = append(f.ignores, g)
	}

	return f, nil
}

// Match returns true if the line matches any include pattern and is not ignored
func (f *filter) Match(line string) bool {
	for _, ignore := range f.ignores {
		if ignore.Match(line) {
			return false
		}
	}

	if len(f.patterns) == 0 {
		return true
	}

	for _, pattern := range f.patterns {
		if pattern.Match(line) {
			return true
		}
	}

	return false
}
