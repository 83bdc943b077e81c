// Package timeline reconstructs per-track clip placements from ordered
// placement events and answers window queries against them.
//
// # Key Types
//
// Event: tagged union of Gap (advance the cursor) and ClipRef (place a
// source sub-range at the cursor). Produced once at the XML boundary; this
// package never inspects raw document tags.
//
// PlacedClip: one occurrence of a media source on a track, with its
// absolute timeline start and the source in/out offsets it uses.
//
// Track: ordered, non-overlapping PlacedClip sequence plus a validity flag.
// Tracks with no recognized clip entries, and the asset-bin container, are
// invalid and excluded from querying.
//
// Window: half-open [start, end) query interval in the same coordinate
// space as PlacedClip.TimelineStart.
//
// # Semantics
//
// Building folds events left to right with an explicit cursor; the input is
// monotonic by construction, so placements append in order and any
// out-of-order placement is rejected rather than re-sorted. Queries locate
// the rightmost clip starting at or before the window start and then scan
// forward; that first clip is always part of the result even when the
// window opens inside the gap that follows it, which mirrors how the
// project writer expects extraction to behave.
package timeline
