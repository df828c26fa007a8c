// Package activity classifies GitHub event envelopes and projects them into typed
// records and display lines. All functions are pure and safe for concurrent use.
//
// The per-kind knowledge lives in a single Table: each Strategy says how to project
// an envelope of that kind and, optionally, how to render it. Kinds missing from the
// table are skipped by projection and rendered with a generic rule.
package activity
