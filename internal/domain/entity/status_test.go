package entity

import (
	"testing"
	"time"
)

func TestClassifyExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	days := func(d float64) *time.Time {
		ts := now.Add(time.Duration(d * 24 * float64(time.Hour)))
		return &ts
	}

	tests := []struct {
		name   string
		expiry *time.Time
		want   Status
	}{
		{
			name:   "no expiry date",
			expiry: nil,
			want:   StatusAvailable,
		},
		{
			name:   "expired yesterday",
			expiry: days(-1),
			want:   StatusExpired,
		},
		{
			name:   "expired long ago",
			expiry: days(-30),
			want:   StatusExpired,
		},
		{
			name:   "expires right now",
			expiry: days(0),
			want:   StatusExpiring,
		},
		{
			name:   "expires later today counts as expiring",
			expiry: days(0.25),
			want:   StatusExpiring,
		},
		{
			name:   "expires in 2 days",
			expiry: days(2),
			want:   StatusExpiring,
		},
		{
			name:   "expires in exactly 3 days",
			expiry: days(3),
			want:   StatusExpiring,
		},
		{
			name:   "expires just past the 3 day window",
			expiry: days(3.5),
			want:   StatusAvailable,
		},
		{
			name:   "expires in 10 days",
			expiry: days(10),
			want:   StatusAvailable,
		},
		{
			name:   "expired a few hours ago rounds up to today",
			expiry: days(-0.25),
			want:   StatusExpiring,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ClassifyExpiry(tt.expiry, now); got != tt.want {
				t.Errorf("ClassifyExpiry() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusValid(t *testing.T) {
	t.Parallel()

	valid := []Status{StatusAvailable, StatusExpiring, StatusExpired}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("Status(%q).Valid() = false, want true", s)
		}
	}

	invalid := []Status{"", "all", "sold", "Available"}
	for _, s := range invalid {
		if s.Valid() {
			t.Errorf("Status(%q).Valid() = true, want false", s)
		}
	}
}
