// Package step defines the notification contract between the algorithms
// and any observing consumer (an animator, a recorder, a no-op).
//
// Both the maze generator and the search engine emit one Event per
// discrete unit of progress: a Carve event per cell opened during
// generation, a Settle event per cell settled during search, and a Path
// event per cell marked during path reconstruction.
//
// The callback is invoked synchronously between one unit of work and the
// next; it is the only suspension point an animating consumer gets, and a
// non-interactive caller simply passes no callback and runs to
// completion. The signal is one-way: a consumer must not mutate grid
// state from inside the callback, and nothing it does feeds back into the
// algorithm.
package step
