// Package render substitutes identifier variables into route and page
// templates.
//
// Placeholders have the form {{ name }}. Substitution is a single pass:
// replacement values are never scanned for further placeholders, and a
// placeholder without a value is an error rather than being left in the
// output.
package render
