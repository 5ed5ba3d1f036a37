// Package pool implements the slab allocator and cooperative garbage
// collector that back node, zone and location-tuple (vloc) records
// throughout the covering-reachability engine (spec.md §4.6 "Pool
// allocator and garbage collector"): fixed-size records carved out of
// large slabs, intrusive reference counting, and background reclamation
// of records whose count reaches zero.
//
// Reference counts are embedded on the record (via the embedded Handle
// and the Record constraint) and reaching zero does not free the record
// immediately: the record is queued to a pending-release channel drained
// by a single cooperative GC goroutine, which invokes the record's Reset
// method and
// returns its slot to the free-list (spec.md §4.6, §9 "The garbage
// collector runs on a separate thread ... Releases into the GC's pending
// list must be thread-safe").
//
// Lifecycle mirrors the three calls spec.md §4.6 names: Start spawns the
// GC goroutine, Stop joins it, and FreeAll unwinds every slab without
// calling destructors (every live record was already released by Stop).
package pool
