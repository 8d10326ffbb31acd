package parser

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// literal resolves the quoting of a word, failing on anything that would need
// expansion at run time.
func literal(word *syntax.Word) (string, error) {
	if word == nil {
		return "", nil
	}

	var out strings.Builder
	for _, part := range word.Parts {
		switch part := part.(type) {
		case *syntax.Lit:
			out.WriteString(unescapeBare(part.Value))

		case *syntax.SglQuoted:
			if part.Dollar {
				return "", unsupported(part, "$'...' strings are not supported")
			}
			out.WriteString(part.Value)

		case *syntax.DblQuoted:
			if part.Dollar {
				return "", unsupported(part, `$"..." strings are not supported`)
			}
			for _, inner := range part.Parts {
				lit, ok := inner.(*syntax.Lit)
				if !ok {
					return "", unsupported(inner, "expansions are not supported")
				}
				out.WriteString(unescapeQuoted(lit.Value))
			}

		default:
			return "", unsupported(part, "expansions are not supported")
		}
	}

	return out.String(), nil
}

// unescapeBare removes backslash quoting from an unquoted literal.
func unescapeBare(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var out strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			if s[i] == '\n' {
				continue // line continuation
			}
		}
		out.WriteByte(s[i])
	}
	return out.String()
}

// unescapeQuoted removes backslash quoting inside double quotes, where it only
// applies to $ ` " \ and newline.
func unescapeQuoted(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var out strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '$', '`', '"', '\\':
				i++
			case '\n':
				i++
				continue
			}
		}
		out.WriteByte(s[i])
	}
	return out.String()
}
