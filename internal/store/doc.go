// Package store provides flat-file durable storage for streamlog logs.
//
// A log is a single append-only text file named <epoch-seconds>.<ext> in the
// storage root. Its content is a sequence of newline-separated entries of
// the form "timestamp,message", terminated by one open entry "timestamp,"
// with no message and no trailing newline:
//
//	1700000000,first message
//	1700000061,second message
//	1700000090,
//
// # Active Log
//
// The active log is not stored anywhere. It is derived on every call as the
// log whose filename timestamp is numerically greatest. Nothing is cached
// across calls, so logs created by other invocations are always observed.
//
// # Known Looseness
//
// Enumeration is lenient: entries that are not regular files named
// <integer>.<ext> are skipped rather than reported. Messages are written
// verbatim; a message containing a newline or comma is not escaped and will
// read back differently.
//
// # Concurrency
//
// There is no locking. Each operation opens, reads or appends, and closes
// the file within the call. Concurrent appends from separate processes can
// interleave at the OS append layer.
package store
