package naming

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Separator joins slug parts.
const Separator = "-"

// Defaults for the symbol and path conventions of the aggregator file.
const (
	DefaultRouteRoot    = "/api/"
	DefaultSymbolSuffix = "Router"
)

// Slugify joins the non-empty parts with "-" and lower-cases the result.
// Parts are expected to be lower-case kebab tokens already.
func Slugify(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.ToLower(strings.Join(kept, Separator))
}

// ToSymbol converts a kebab-case slug to camelCase:
// "ebay-listing-x" becomes "ebayListingX".
func ToSymbol(slug string) string {
	segments := strings.Split(slug, Separator)
	var b strings.Builder
	b.Grow(len(slug))
	b.WriteString(strings.ToLower(segments[0]))
	for _, seg := range segments[1:] {
		b.WriteString(Capitalize(seg))
	}
	return b.String()
}

// RouterSymbol is ToSymbol with a fixed suffix appended, "Router" by convention.
func RouterSymbol(slug, suffix string) string {
	return ToSymbol(slug) + suffix
}

// ToPath returns the URL path of a slug under the default /api/ root.
func ToPath(slug string) string {
	return ToPathWithRoot(DefaultRouteRoot, slug)
}

// ToPathWithRoot prefixes slug with root. Slug characters are assumed URL-safe.
func ToPathWithRoot(root, slug string) string {
	return root + slug
}

// Capitalize upper-cases the first character of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Title(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}
