// Package roster implements the record-browser state that backs the admin
// panel screens: the canonical in-memory account list, case-insensitive
// search filtering, pagination with compressed page windows, and per-row
// expansion state.
//
// The package is pure state and policy. It performs no I/O and knows nothing
// about the HTTP service or the terminal; the panel orchestrator is the only
// writer of the stores, and the TUI reads composed rows per render.
//
// # Composition order
//
// A render always derives its rows the same way: filter the store by the
// current query, clamp the page into range, slice the visible page, then
// append synthesized child rows for expanded parents. The [Composer] owns the
// query, page and expansion state explicitly so the pipeline is testable
// without a UI.
//
// # Synthesized child rows
//
// Expanding an account shows a fixed number of pseudo-records derived from
// the parent. They are presentation-only: their IDs are rewritten
// (parentID*100+index), they are flagged [Row.Synthetic], and no CRUD path
// accepts them as targets.
package roster
