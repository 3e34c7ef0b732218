// Package engine serializes maze generation and search over a single
// grid and packages run outcomes for reporting consumers.
//
// The engine is an explicit state machine over {Idle, Generating,
// Searching}: the only legal transitions are Idle → Generating → Idle and
// Idle → Searching → Idle. A generation or search request arriving while
// another is in progress is rejected with ErrBusy (never queued), so the
// running worker holds exclusive write access to the grid's search state
// for the run's duration.
//
// The algorithmic core underneath is single-threaded and synchronous;
// RunSearchAsync merely moves a whole run onto a dedicated goroutine so a
// host UI thread stays responsive, relying on the state machine for
// exclusion. Cancellation is coarse: cancel the run's context or discard
// the engine; the next run's reset clears any partial state.
//
// Each completed search yields a RunResult carrying a unique run ID,
// the per-run statistics, and the reconstructed path.
package engine
