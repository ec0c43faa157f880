package domain

import (
	"testing"
	"time"
)

func TestRecencyPriorityBuckets(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		age  time.Duration
		want Priority
	}{
		{"brand new", 0, PriorityHigh},
		{"one hour", time.Hour, PriorityHigh},
		{"just under three days", 72*time.Hour - time.Second, PriorityHigh},
		{"exactly three days", 72 * time.Hour, PriorityMedium},
		{"five days", 5 * 24 * time.Hour, PriorityMedium},
		{"just under seven days", 168*time.Hour - time.Second, PriorityMedium},
		{"exactly seven days", 168 * time.Hour, PriorityLow},
		{"one month", 30 * 24 * time.Hour, PriorityLow},
	}

	for _, tc := range cases {
		got := RecencyPriority(now.Add(-tc.age), now)
		if got != tc.want {
			t.Fatalf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestFindVerificationSource(t *testing.T) {
	for _, src := range VerificationSources {
		found, ok := FindVerificationSource(src.Type)
		if !ok {
			t.Fatalf("source %q not resolvable", src.Type)
		}
		if found.Table != src.Table {
			t.Fatalf("source %q resolved to table %q", src.Type, found.Table)
		}
	}

	if _, ok := FindVerificationSource("medal"); ok {
		t.Fatalf("unknown discriminator should not resolve")
	}
}

func TestVerificationSourceRegistryShape(t *testing.T) {
	if len(VerificationSources) != 5 {
		t.Fatalf("expected 5 sources, got %d", len(VerificationSources))
	}

	seenTables := map[string]bool{}
	for _, src := range VerificationSources {
		if src.Type == "" || src.Table == "" || src.StatusCol == "" || src.FeedbackCol == "" {
			t.Fatalf("incomplete source entry: %+v", src)
		}
		if seenTables[src.Table] {
			t.Fatalf("table %q registered twice", src.Table)
		}
		seenTables[src.Table] = true
	}

	// qualifications keep their legacy status column name
	q, _ := FindVerificationSource("qualification")
	if q.StatusCol != "verification_status" {
		t.Fatalf("qualification status column %q", q.StatusCol)
	}
}
