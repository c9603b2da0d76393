package splice

import (
	"fmt"
	"regexp"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

var (
	importSymbolRe       = regexp.MustCompile(`(?m)^\s*import\s+([A-Za-z_$][\w$]*)\s+from\s`)
	registrationSymbolRe = regexp.MustCompile(`\.use\(\s*(?:'[^']*'|"[^"]*"|` + "`[^`]*`" + `)\s*,\s*([A-Za-z_$][\w$]*)\s*\)`)
)

// Document is the aggregator file split around its registration function.
// Concatenating the parts in order restores the original text.
type Document struct {
	// Prologue is everything before the entry anchor line.
	Prologue string
	// Header runs from the entry anchor through the function's opening brace.
	Header string
	// Body is the text between the function's braces.
	Body string
	// Epilogue starts at the function's closing brace.
	Epilogue string
}

// ParseDocument locates the function introduced by the entry anchor and
// matches its braces. Braces inside string literals and comments are
// ignored.
func ParseDocument(content, entry string) (*Document, error) {
	start := -1
	for off := 0; off <= len(content); {
		i := strings.Index(content[off:], entry)
		if i < 0 {
			break
		}
		i += off
		if i == 0 || content[i-1] == '\n' {
			start = i
			break
		}
		off = i + 1
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: %q", ErrAnchorNotFound, entry)
	}

	open := strings.IndexByte(content[start:], '{')
	if open < 0 {
		return nil, fmt.Errorf("%w: no opening brace after %q", ErrUnbalanced, entry)
	}
	open += start

	closeIdx, err := matchBrace(content, open)
	if err != nil {
		return nil, err
	}

	return &Document{
		Prologue: content[:start],
		Header:   content[start : open+1],
		Body:     content[open+1 : closeIdx],
		Epilogue: content[closeIdx:],
	}, nil
}

// String reassembles the document.
func (d *Document) String() string {
	return d.Prologue + d.Header + d.Body + d.Epilogue
}

// ImportedSymbols returns the default-import names of the prologue.
func (d *Document) ImportedSymbols() sets.Set[string] {
	return collect(importSymbolRe, d.Prologue)
}

// RegisteredSymbols returns the router names passed to .use(...) in the body.
func (d *Document) RegisteredSymbols() sets.Set[string] {
	return collect(registrationSymbolRe, d.Body)
}

func collect(re *regexp.Regexp, s string) sets.Set[string] {
	out := sets.New[string]()
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		out.Insert(m[1])
	}
	return out
}

// matchBrace returns the index of the brace closing the one at open.
func matchBrace(s string, open int) (int, error) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch c := s[i]; c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		case '\'', '"', '`':
			end := skipString(s, i, c)
			if end < 0 {
				return 0, fmt.Errorf("%w: unterminated string at offset %d", ErrUnbalanced, i)
			}
			i = end
		case '/':
			if i+1 >= len(s) {
				continue
			}
			switch s[i+1] {
			case '/':
				nl := strings.IndexByte(s[i:], '\n')
				if nl < 0 {
					i = len(s)
				} else {
					i += nl
				}
			case '*':
				end := strings.Index(s[i+2:], "*/")
				if end < 0 {
					return 0, fmt.Errorf("%w: unterminated comment at offset %d", ErrUnbalanced, i)
				}
				i += end + 3
			}
		}
	}
	return 0, fmt.Errorf("%w: missing closing brace", ErrUnbalanced)
}

// skipString returns the index of the quote ending the literal at i.
func skipString(s string, i int, quote byte) int {
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case quote:
			return j
		case '\n':
			if quote != '`' {
				return -1
			}
		}
	}
	return -1
}
