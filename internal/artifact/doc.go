// Package artifact renders the files of a series run and writes them to a
// Sink.
//
// A run produces, per identifier, a route file under the routes root and a
// page under the pages root, followed by two fragment files and a manifest
// under the output root. Everything is rendered before the first write, so
// configuration problems never leave a partial run behind. Writes overwrite:
// the same inputs always produce byte-identical files.
package artifact
