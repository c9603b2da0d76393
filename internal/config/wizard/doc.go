// Package wizard provides the interactive prompts of seriesgen.
//
// SelectSeries asks for a series and a start phase when "seriesgen generate"
// runs on a terminal without arguments. RunInit collects the project paths
// for "seriesgen init --interactive"; BuildSpec turns the answers into a
// config.Spec and WriteSpec writes it with a descriptive header.
// Prompts use charmbracelet/huh.
package wizard
