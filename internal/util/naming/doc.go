// Package naming derives the generated names used across a series run.
//
// Every generated identifier starts life as a kebab-case slug built from
// word-list tokens, for example ebay-listing-autonomous-engine-blaze. The
// slug doubles as the route file stem and the URL path segment, and is
// converted to a camelCase import symbol (ebayListingAutonomousEngineBlaze)
// for the aggregator file. All functions here are pure.
package naming
