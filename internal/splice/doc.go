// Package splice inserts generated import and registration blocks into the
// router aggregation file.
//
// Anchored performs the text splice against two anchors: the import block
// goes immediately before the entry anchor line and the registration block
// before the last closing delimiter of the file. Structured locates the
// registration function itself, skips entries whose symbol is already
// present and inserts before the function's own closing brace.
//
// Both modes are pure string transforms; File applies one to a file on disk.
package splice
