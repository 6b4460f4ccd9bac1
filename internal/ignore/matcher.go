// Package ignore matches paths against gitignore-style exclude patterns from
// the files.ignore configuration key.
package ignore

import (
	"path/filepath"
	"regexp"
	"strings"
)

// defaultPatterns are always excluded; a negated user pattern can re-include.
var defaultPatterns = []string{
	".git/",
	".hg/",
	".svn/",
	"node_modules/",
	"vendor/",
	"target/",
	"dist/",
	"build/",
}

type rule struct {
	re       *regexp.Regexp
	raw      string
	negated  bool
	dirOnly  bool
	anchored bool
}

// Matcher applies ignore rules with "last matching rule wins" behavior.
type Matcher struct {
	rules []rule
}

// NewMatcher compiles the default excludes plus the configured patterns.
// Malformed lines are skipped.
func NewMatcher(patterns []string) *Matcher {
	all := make([]string, 0, len(defaultPatterns)+len(patterns))
	all = append(all, defaultPatterns...)
	all = append(all, patterns...)

	rules := make([]rule, 0, len(all))
	for _, line := range all {
		if parsed, ok := compileRule(line); ok {
			rules = append(rules, parsed)
		}
	}
	return &Matcher{rules: rules}
}

// ShouldIgnore reports whether relPath (slash-separated, relative to the
// search root) is excluded.
func (m *Matcher) ShouldIgnore(relPath string, isDir bool) bool {
	relPath = normalize(relPath)
	ignored := false
	for _, r := range m.rules {
		if r.matches(relPath, isDir) {
			ignored = !r.negated
		}
	}
	return ignored
}

func compileRule(line string) (rule, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return rule{}, false
	}

	r := rule{}
	if strings.HasPrefix(line, "!") {
		r.negated = true
		line = line[1:]
	}
	if strings.HasPrefix(line, "/") {
		r.anchored = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		r.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}
	line = normalize(line)
	if line == "" {
		return rule{}, false
	}

	re, err := regexp.Compile("^" + globToRegexp(line) + "$")
	if err != nil {
		return rule{}, false
	}
	r.re = re
	r.raw = line
	return r, true
}

func (r rule) matches(relPath string, isDir bool) bool {
	if r.dirOnly {
		// A directory pattern excludes the directory itself and everything
		// beneath it.
		if isDir && r.matchPath(relPath) {
			return true
		}
		for _, prefix := range pathPrefixes(relPath) {
			if r.matchPath(prefix) {
				return true
			}
		}
		return false
	}
	return r.matchPath(relPath)
}

// matchPath tries the pattern against the full relative path, every path
// suffix, and (for patterns without a slash) each individual segment.
func (r rule) matchPath(relPath string) bool {
	if r.re.MatchString(relPath) {
		return true
	}
	if r.anchored {
		return false
	}
	segments := strings.Split(relPath, "/")
	if strings.Contains(r.raw, "/") {
		for i := 1; i < len(segments); i++ {
			if r.re.MatchString(strings.Join(segments[i:], "/")) {
				return true
			}
		}
		return false
	}
	for _, segment := range segments {
		if r.re.MatchString(segment) {
			return true
		}
	}
	return false
}

// pathPrefixes lists every ancestor path of relPath, nearest-root first,
// excluding relPath itself.
func pathPrefixes(relPath string) []string {
	segments := strings.Split(relPath, "/")
	prefixes := make([]string, 0, len(segments)-1)
	for i := 1; i < len(segments); i++ {
		prefixes = append(prefixes, strings.Join(segments[:i], "/"))
	}
	return prefixes
}

func globToRegexp(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		switch {
		case ch == '*' && i+1 < len(pattern) && pattern[i+1] == '*':
			b.WriteString(".*")
			i++
		case ch == '*':
			b.WriteString("[^/]*")
		case ch == '?':
			b.WriteString("[^/]")
		case strings.ContainsRune(`.+()|[]{}^$\`, rune(ch)):
			b.WriteByte('\\')
			b.WriteByte(ch)
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

func normalize(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	return strings.TrimPrefix(path, "/")
}
