// Package backend hosts the thin cgo layer that links the Go API to TagLib's
// C interface (tag_c). The real implementation lives behind build tags so
// that the rest of the repository can compile without cgo or without TagLib
// installed (-tags notaglib).
//
// Every exported call takes one process-wide lock: TagLib is not re-entrant
// and its string settings are global.
package backend
