// Package scene implements the remapping engine for line-oriented mixer
// scene files: a lossless parser, a link mapper that projects stereo
// pairs through a crossbar, and a generator that emits the rewritten
// file.
//
// The pipeline is raw text → Parser → (lines, links) → caller-built
// Crossbar → Mapper → (new links, warnings) → Generator → rewritten text.
// All of it is synchronous and in-memory; the caller owns every piece of
// state for the duration of one remap.
package scene
