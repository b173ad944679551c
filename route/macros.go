package route

// captureMacros maps constraint names usable in ":name(macro)" captures to
// their patterns. Only non-capturing syntax is allowed here so each capture
// stays exactly one regexp group.
var captureMacros = map[string]string{
	"uuid":     `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`,
	"int":      `[0-9]+`,
	"float":    `[0-9]*\.?[0-9]+`,
	"slug":     `[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*`,
	"alpha":    `[a-zA-Z]+`,
	"alphanum": `[a-zA-Z0-9]+`,
	"date":     `[0-9]{4}-[0-9]{2}-[0-9]{2}`,
	"hex":      `[0-9a-fA-F]+`,
}

// macroPattern returns the pattern for a macro name. Unknown names are
// rejected by the compiler; raw regular expressions are deliberately not
// accepted in route patterns.
func macroPattern(name string) (string, bool) {
	p, ok := captureMacros[name]
	return p, ok
}
