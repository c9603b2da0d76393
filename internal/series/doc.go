// Package series expands word lists into the ordered identifiers of one
// generation run.
//
// Expand is the Cartesian product primitive. Build applies it to a
// configured series: for the catalog layout adjectives vary slowest and
// categories fastest, phases are consecutive from the start phase and
// colours rotate through the palette from the start phase.
package series
