package solver_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the package if any solve leaves a worker goroutine behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
