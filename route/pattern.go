package route

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// patternOptions holds the matching options resolved once per router and
// applied identically to every pattern compiled through it.
type patternOptions struct {
	// sensitive makes literal pattern text match case-sensitively.
	sensitive bool
	// end requires a match to consume the entire path.
	end bool
	// trailing permits one optional trailing delimiter at the end of the
	// path when end is set.
	trailing bool
	// delimiter is the segment boundary character.
	delimiter byte
}

// defaultPatternOptions returns the option defaults: case-insensitive,
// full-path matching, trailing delimiter tolerated, "/" delimiter.
func defaultPatternOptions() patternOptions {
	return patternOptions{end: true, trailing: true, delimiter: '/'}
}

// routePattern is the compiled form of a path pattern: an anchored regexp
// plus the declared capture names in left-to-right order. It is immutable
// after compilation.
type routePattern struct {
	// template is the original pattern string.
	template string
	// regexp recognizes matching paths and extracts raw captures.
	regexp *regexp.Regexp
	// varsN are the capture names in declaration order. Duplicates are
	// possible when the same name appears in several optional branches.
	varsN []string

	end       bool
	trailing  bool
	delimiter byte
}

// compilePattern translates a path pattern into a routePattern.
//
// The pattern grammar: literal text, ":name" for a delimiter-bounded named
// capture (with an optional macro constraint, ":name(int)"), "*name" for a
// wildcard capture spanning the remainder of the path, and "{...}" marking
// an enclosed sub-sequence as optional. A bare "*" receives a synthetic
// positional name. Malformed patterns fail with an error wrapping
// ErrBadPattern; compilation never defers a syntax problem to match time.
func compilePattern(tpl string, opts patternOptions) (*routePattern, error) {
	if tpl == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrBadPattern)
	}

	// A trailing delimiter in the pattern text is tolerated the same way
	// it is in the path: stripped before the end check.
	matchTpl := tpl
	if opts.end && opts.trailing && len(matchTpl) > 1 && matchTpl[len(matchTpl)-1] == opts.delimiter {
		matchTpl = matchTpl[:len(matchTpl)-1]
	}

	var (
		pattern bytes.Buffer
		lit     bytes.Buffer
		varsN   []string
		depth   int
		anon    int
	)

	// The s flag keeps wildcards intact across decoded control characters.
	if opts.sensitive {
		pattern.WriteString("(?s)")
	} else {
		pattern.WriteString("(?si)")
	}
	pattern.WriteByte('^')

	segment := "[^" + regexp.QuoteMeta(string(opts.delimiter)) + "]+"

	flushLiteral := func() {
		if lit.Len() > 0 {
			pattern.WriteString(regexp.QuoteMeta(lit.String()))
			lit.Reset()
		}
	}

	for i := 0; i < len(matchTpl); i++ {
		switch c := matchTpl[i]; c {
		case '{':
			flushLiteral()
			if depth++; depth > 1 {
				return nil, fmt.Errorf("%w: nested optional group in %q", ErrBadPattern, tpl)
			}
			pattern.WriteString("(?:")
		case '}':
			flushLiteral()
			if depth--; depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced braces in %q", ErrBadPattern, tpl)
			}
			pattern.WriteString(")?")
		case ':':
			flushLiteral()
			name, next := scanName(matchTpl, i+1)
			if name == "" {
				return nil, fmt.Errorf("%w: missing capture name at offset %d in %q", ErrBadPattern, i, tpl)
			}
			sub := segment
			if next < len(matchTpl) && matchTpl[next] == '(' {
				end := strings.IndexByte(matchTpl[next:], ')')
				if end < 0 {
					return nil, fmt.Errorf("%w: unterminated constraint for %q in %q", ErrBadPattern, name, tpl)
				}
				macroName := matchTpl[next+1 : next+end]
				p, ok := macroPattern(macroName)
				if !ok {
					return nil, fmt.Errorf("%w: unknown constraint %q in %q", ErrBadPattern, macroName, tpl)
				}
				sub = p
				next += end + 1
			}
			pattern.WriteByte('(')
			pattern.WriteString(sub)
			pattern.WriteByte(')')
			varsN = append(varsN, name)
			i = next - 1
		case '*':
			flushLiteral()
			name, next := scanName(matchTpl, i+1)
			if name == "" {
				name = strconv.Itoa(anon)
				anon++
			}
			pattern.WriteString("(.+)")
			varsN = append(varsN, name)
			i = next - 1
		default:
			lit.WriteByte(c)
		}
	}
	flushLiteral()

	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced braces in %q", ErrBadPattern, tpl)
	}

	if opts.end {
		pattern.WriteByte('$')
	}

	re, err := compileRegexp(pattern.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadPattern, tpl, err)
	}

	return &routePattern{
		template:  tpl,
		regexp:    re,
		varsN:     varsN,
		end:       opts.end,
		trailing:  opts.trailing,
		delimiter: opts.delimiter,
	}, nil
}

// match returns the raw captured substrings in declaration order, or nil
// when the path does not satisfy the pattern. A capture from an optional
// branch that was not taken is an empty string. Failed matches allocate
// nothing.
func (p *routePattern) match(path string) []string {
	if p.end && p.trailing && len(path) > 1 && path[len(path)-1] == p.delimiter {
		path = path[:len(path)-1]
	}
	m := p.regexp.FindStringSubmatch(path)
	if m == nil {
		return nil
	}
	return m[1:]
}

// scanName returns the capture name starting at position i and the index of
// the first byte after it. Names use the word character set.
func scanName(s string, i int) (string, int) {
	start := i
	for i < len(s) && isNameByte(s[i]) {
		i++
	}
	return s[start:i], i
}

func isNameByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
