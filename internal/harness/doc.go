// Package harness runs end-to-end streamlog scenarios described in YAML.
//
// A scenario drives a fresh storage root through a sequence of steps
// (start, append, stamp, touch) on a deterministic clock and records a
// transcript of what happened. Steps may carry inline expectations; the
// transcript can also be compared against a golden file:
//
//	name: two_appends
//	description: two notes a minute apart
//	start: 1700000000
//	steps:
//	  - action: start
//	  - action: append
//	    advance: 61
//	    message: first
//	  - action: append
//	    message: second
//	  - action: stamp
//	    shift: "01:00:00"
//	    expect:
//	      lines: ["1:00:00 first", "1:01:01 second"]
//
// Golden files live in testdata/golden/{name}.golden. Regenerate them with:
//
//	go test ./internal/harness -update
package harness
