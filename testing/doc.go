// Package testing provides test utilities for the library.
//
// It follows Go's convention of offering testing helpers in a dedicated
// package (similar to net/http/httptest). Key utilities:
//
//   - StartEmbeddedNATS: In-process NATS server for channel tests
//   - StartMiniredis: In-process Redis for channel tests
//   - NewTestLogger: Logger routed to testing.T output
//
// Example usage:
//
//	import (
//	    "testing"
//	    tabtest "github.com/TabbycatDebate/tabbycat/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := tabtest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
