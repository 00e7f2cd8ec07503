package testing

import (
	"testing"

	"github.com/TabbycatDebate/tabbycat/internal/logger"
	"github.com/TabbycatDebate/tabbycat/types"
)

// NewTestLogger creates a logger that routes output through the test's
// logging facility, so log lines are shown only for failing tests (or
// with -v) and are attributed to the right test.
//
// Parameters:
//   - t: Testing context to log through
//
// Returns:
//   - types.Logger: Logger writing via t.Logf
func NewTestLogger(t *testing.T) types.Logger {
	return logger.NewTest(t)
}
