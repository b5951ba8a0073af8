// Package domain defines the core value objects of the scene remapper.
//
// # Core Types
//
// Position is an opaque, 1-based hardware channel slot identifier drawn
// from a fixed universe set by the device class.
//
// PairingTable is the device-fixed stereo pairing (1,2), (3,4), ... It is
// injected configuration: retargeting the engine to a device class with a
// different channel count touches nothing but the table.
//
// Crossbar is an enforced one-to-one partial mapping between old and new
// positions, backed by two synchronized maps so a conflicting claim fails
// fast instead of silently overwriting.
//
// ChannelLink is a stereo pairing of two positions forming one fixed
// hardware pair, with left/right sides derived from pair order.
//
// ConfigLine is the structural view of one scene-file line: a path plus an
// opaque payload, tagged with its recognized variant. Unrecognized lines
// are kept verbatim so a scene survives a round trip byte-for-byte.
//
// # Design Principles
//
// - Immutable value objects; derived copies instead of mutation
// - No I/O and no external dependencies
// - Recoverable sentinel errors, checked with errors.Is
package domain
