package helpers

import (
	"testing"
	"time"
)

func TestDisplayDate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, time.April, 5, 13, 37, 0, 0, time.UTC), "April 05, 2024"},
		{time.Date(2019, time.December, 31, 0, 0, 0, 0, time.UTC), "December 31, 2019"},
		{time.Date(2025, time.January, 1, 23, 59, 59, 0, time.UTC), "January 01, 2025"},
	}
	for _, tt := range tests {
		if got := DisplayDate(tt.in); got != tt.want {
			t.Errorf("DisplayDate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
