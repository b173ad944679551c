package route

import (
	"regexp"
	"sync"
)

// patternCache caches compiled regexps by their source text. The number of
// distinct sources is bounded by the number of registered patterns, so the
// cache grows to a fixed size and stays there. Registering the same pattern
// under several verbs compiles it once.
var patternCache sync.Map

// compileRegexp returns a cached *regexp.Regexp for the given source,
// compiling and caching it on first use.
func compileRegexp(source string) (*regexp.Regexp, error) {
	if v, ok := patternCache.Load(source); ok {
		return v.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(source)
	if err != nil {
		return nil, err
	}

	actual, _ := patternCache.LoadOrStore(source, re)

	return actual.(*regexp.Regexp), nil
}
