package users

import (
	"testing"
	"time"
)

func testTime(t *testing.T) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, "2025-01-02T15:04:05Z")
	if err != nil {
		t.Fatalf("parse test time: %v", err)
	}
	return ts
}
