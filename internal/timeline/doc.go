// Package timeline turns a log's absolute timestamps into a relative,
// human-readable timeline.
//
// Replay measures every entry against the log's first timestamp, adds an
// optional shift, and formats the result as H:MM:SS:
//
//	0:00:00 first message
//	0:01:01 second message
//
// Parsing is deliberately lenient. A malformed shift falls back to no shift,
// and log lines whose timestamp does not parse are dropped. Neither case is
// reported as an error.
package timeline
