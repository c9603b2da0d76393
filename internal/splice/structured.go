package splice

import (
	"errors"
	"slices"
	"strings"
	"unicode"
)

// Structured splices f into the function introduced by the entry anchor.
// Import and registration lines whose symbol is already present are left
// out; when nothing is left the content is returned unchanged. The
// registration block is inserted before the function's own closing brace,
// so text after the function is preserved. A missing entry anchor follows
// opts.Policy.
func Structured(content string, f Fragments, opts Options) (string, *Result, error) {
	banner := f.Banner()
	res := &Result{Banner: banner}

	doc, err := ParseDocument(content, opts.Anchors.Entry)
	if err != nil {
		if opts.Policy == Lenient && errors.Is(err, ErrAnchorNotFound) {
			// without the function there is no safe registration point
			res.AnchorMissing = true
			return content, res, nil
		}
		return content, res, err
	}

	imported := doc.ImportedSymbols()
	registered := doc.RegisteredSymbols()

	var imports, regs []string
	for _, line := range splitLines(f.Imports) {
		if m := importSymbolRe.FindStringSubmatch(line); m != nil && imported.Has(m[1]) {
			res.SkippedSymbols = append(res.SkippedSymbols, m[1])
			continue
		}
		imports = append(imports, line)
	}
	for _, line := range splitLines(f.Registrations) {
		if m := registrationSymbolRe.FindStringSubmatch(line); m != nil && registered.Has(m[1]) {
			if !slices.Contains(res.SkippedSymbols, m[1]) {
				res.SkippedSymbols = append(res.SkippedSymbols, m[1])
			}
			continue
		}
		regs = append(regs, line)
	}

	if len(imports) > 0 {
		block := importBlock(banner, strings.Join(imports, "\n"))
		if strings.HasSuffix(doc.Prologue, "\n") {
			doc.Prologue = doc.Prologue[:len(doc.Prologue)-1] + block + "\n"
		} else {
			doc.Prologue += block[1:] + "\n"
		}
		res.ImportBytes = len(block)
	}
	if len(regs) > 0 {
		block := registrationBlock(banner, strings.Join(regs, "\n"))
		doc.Body = strings.TrimRightFunc(doc.Body, unicode.IsSpace) + "\n" + block
		res.RegistrationBytes = len(block)
	}

	if !res.Changed() {
		return content, res, nil
	}

	out := doc.String()
	if err := verify(content, out, opts.Anchors.Entry, banner, res); err != nil {
		return content, res, err
	}
	return out, res, nil
}

// splitLines returns the non-blank lines of a fragment.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
