package splice

import (
	"fmt"
	"strings"
	"unicode"
)

// Anchored splices f into content:
//
//  1. the first "\n"+entry is prefixed with "\n"+banner+"\n"+imports+"\n";
//     an entry at the very start of content counts as a line start and gets
//     the block without its leading newline;
//  2. the last closing delimiter of the right-trimmed text, and everything
//     after it, is replaced with "\n  "+banner+"\n"+registrations+"\n"+closing+"\n".
//
// Fragments are trimmed of surrounding blank lines first. The result is
// verified before it is returned.
func Anchored(content string, f Fragments, opts Options) (string, *Result, error) {
	entry, closing := opts.Anchors.Entry, opts.Anchors.Closing
	banner := f.Banner()
	res := &Result{Banner: banner}

	if !opts.AllowDuplicate && strings.Contains(content, banner) {
		return content, res, fmt.Errorf("%w: %s", ErrAlreadySpliced, banner)
	}

	imports := trimBlock(f.Imports)
	regs := trimBlock(f.Registrations)
	out := content

	idx := strings.Index(out, "\n"+entry)
	switch {
	case strings.HasPrefix(out, entry):
		block := importBlock(banner, imports)[1:] + "\n"
		out = block + out
		res.ImportBytes = len(block)
	case idx >= 0:
		block := importBlock(banner, imports)
		out = out[:idx] + block + out[idx:]
		res.ImportBytes = len(block)
	case opts.Policy == Lenient:
		res.AnchorMissing = true
	default:
		return content, res, fmt.Errorf("%w: %q", ErrAnchorNotFound, entry)
	}

	last := strings.LastIndex(strings.TrimRightFunc(out, unicode.IsSpace), closing)
	if last < 0 {
		return content, res, fmt.Errorf("%w: %q", ErrDelimiterNotFound, closing)
	}
	block := registrationBlock(banner, regs)
	out = out[:last] + block + closing + "\n"
	res.RegistrationBytes = len(block)

	if err := verify(content, out, entry, banner, res); err != nil {
		return content, res, err
	}
	return out, res, nil
}

// verify checks that the entry anchor survived unchanged and that the
// banner was added once per inserted block.
func verify(before, after, entry, banner string, res *Result) error {
	if got, want := strings.Count(after, entry), strings.Count(before, entry); got != want {
		return fmt.Errorf("%w: entry anchor count changed from %d to %d", ErrPostCondition, want, got)
	}

	want := strings.Count(before, banner)
	if res.ImportBytes > 0 {
		want++
	}
	if res.RegistrationBytes > 0 {
		want++
	}
	if got := strings.Count(after, banner); got != want {
		return fmt.Errorf("%w: expected %d banners, found %d", ErrPostCondition, want, got)
	}
	return nil
}
