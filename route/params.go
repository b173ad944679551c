package route

import "net/url"

// decodeParams reduces raw captures into the final name-to-value mapping.
// Names are walked in declaration order with a first-write-wins rule, so a
// duplicate name from an untaken optional branch never clobbers a concrete
// value. An empty capture means the branch was not taken; the name is
// omitted rather than mapped to "". Values are percent-decoded; text that
// fails to decode passes through unchanged, as user agents do.
func decodeParams(names, captures []string) map[string]string {
	params := make(map[string]string, len(names))
	for i, name := range names {
		if i >= len(captures) {
			break
		}
		raw := captures[i]
		if raw == "" {
			continue
		}
		if _, taken := params[name]; taken {
			continue
		}
		if decoded, err := url.PathUnescape(raw); err == nil {
			params[name] = decoded
		} else {
			params[name] = raw
		}
	}
	return params
}
