// Package config defines the generator configuration: word lists, category
// metadata, templates, output locations and splice anchors.
//
// A [Spec] is always complete. [Default] returns the built-in data set, and
// [LoadSpec] decodes a seriesgen.yaml file over those defaults so that any
// top-level key the file omits keeps its default. Environment variables
// (SERIESGEN_*) are applied last via [Env.Apply].
package config
