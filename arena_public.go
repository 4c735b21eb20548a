package edn

import "github.com/DotFox/goedn/internal/arena"

// Arena is the borrowed arena reference passed to reader functions
// (spec.md §4.9, §5: "Reader functions receive a borrowed arena
// reference; they must not retain it beyond their own return"). It wraps
// internal/arena.Arena, exposing just enough surface for a reader function
// to allocate arena-owned storage for the values it constructs.
type Arena struct {
	a *arena.Arena
}

// AllocString copies data into a fresh arena-owned buffer, for reader
// functions that need to stash bytes alongside an External payload.
func (h *Arena) AllocString(data []byte) string {
	return h.a.AllocString(data)
}
