// Package project decodes editor project documents into typed timeline
// input: a media registry mapping source identifiers to resource
// filenames, per-track placement event sequences (already folded into
// built tracks), and the mixer's per-track hide declarations.
//
// The XML walk happens once here; everything downstream works with
// timeline types and never sees tag or attribute strings.
package project
