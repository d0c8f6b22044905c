package report

import (
	"testing"
	"time"

	"github.com/hamed0406/netreport/internal/domain"
)

var at = time.Date(2025, 8, 18, 14, 5, 9, 0, time.UTC)

func sampleResults() []domain.ProbeResult {
	return []domain.ProbeResult{
		domain.Up("google.com", domain.Millis("24.5"), at),
		domain.Up("cdn.example", domain.Millis("150"), at),
		domain.Up("10.0.0.1", domain.Unavailable(), at),
		domain.Down("dead.example", at),
		domain.Up("far.example", domain.Millis("150.1"), at),
	}
}

func TestBuild_SummaryAndRows(t *testing.T) {
	rep := Build(sampleResults(), "18-08-2025   02:05:09 PM")

	if rep.Summary.Total != 5 || rep.Summary.Up != 4 || rep.Summary.Down != 1 {
		t.Fatalf("unexpected summary %+v", rep.Summary)
	}
	if rep.Summary.Up+rep.Summary.Down != rep.Summary.Total {
		t.Fatalf("up + down must equal total: %+v", rep.Summary)
	}
	if rep.Title != "Network Health Report - 18-08-2025   02:05:09 PM" {
		t.Fatalf("title %q", rep.Title)
	}

	want := []Row{
		{"google.com", "UP", "24.5 ms", rep.Timestamp, "up", "fast"},
		{"cdn.example", "UP", "150 ms", rep.Timestamp, "up", "medium"},
		{"10.0.0.1", "UP", "N/A", rep.Timestamp, "up", "slow"},
		{"dead.example", "DOWN", "N/A", rep.Timestamp, "down", "slow"},
		{"far.example", "UP", "150.1 ms", rep.Timestamp, "up", "slow"},
	}
	for i := range want {
		if rep.Rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rep.Rows[i], want[i])
		}
	}
}

func TestBuild_Empty(t *testing.T) {
	rep := Build(nil, "ts")
	if rep.Summary != (Summary{}) || len(rep.Rows) != 0 {
		t.Fatalf("want empty report, got %+v", rep)
	}
}

func TestBucket(t *testing.T) {
	cases := []struct {
		lat  *domain.Latency
		want string
	}{
		{domain.Millis("0.4"), BucketFast},
		{domain.Millis("49.99"), BucketFast},
		{domain.Millis("50"), BucketMedium},
		{domain.Millis("150"), BucketMedium},
		{domain.Millis("150.01"), BucketSlow},
		{domain.Unavailable(), BucketSlow},
		{nil, BucketSlow},
	}
	for _, tc := range cases {
		if got := Bucket(tc.lat); got != tc.want {
			t.Errorf("Bucket(%v) = %q, want %q", tc.lat, got, tc.want)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	if got := FormatTimestamp(at, "UTC"); got != "18-08-2025   02:05:09 PM" {
		t.Fatalf("UTC: got %q", got)
	}
	if got := FormatTimestamp(at, "Not/AZone"); got != "18-08-2025   02:05:09 PM UTC" {
		t.Fatalf("unknown zone should fall back to suffixed UTC, got %q", got)
	}
	morning := time.Date(2025, 1, 2, 9, 7, 3, 0, time.UTC)
	if got := FormatTimestamp(morning, "UTC"); got != "02-01-2025   09:07:03 AM" {
		t.Fatalf("AM: got %q", got)
	}
}

func withLocal(t *testing.T, loc *time.Location) {
	t.Helper()
	saved := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = saved })
}

func TestFormatTimestamp_LocalWithoutZoneDataIsSuffixed(t *testing.T) {
	withLocal(t, time.UTC)

	for _, zone := range []string{"Local", ""} {
		if got := FormatTimestamp(at, zone); got != "18-08-2025   02:05:09 PM UTC" {
			t.Fatalf("zone %q: want suffixed UTC, got %q", zone, got)
		}
		if _, ok := Location(zone); ok {
			t.Fatalf("zone %q: UTC fallback must be reported", zone)
		}
	}
}

func TestFormatTimestamp_LocalWithZoneData(t *testing.T) {
	withLocal(t, time.FixedZone("Local", 2*60*60))

	if got := FormatTimestamp(at, "Local"); got != "18-08-2025   04:05:09 PM" {
		t.Fatalf("want host zone without suffix, got %q", got)
	}
}
