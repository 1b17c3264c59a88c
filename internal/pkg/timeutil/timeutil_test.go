package timeutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportISO(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01T00:00:00.000000+00:00", ExportISO(ts))

	// Non-UTC inputs render in UTC.
	jakarta := time.FixedZone("WIB", 7*3600)
	assert.Equal(t, "2024-01-01T00:00:00.000000+00:00",
		ExportISO(time.Date(2024, 1, 1, 7, 0, 0, 0, jakarta)))

	// Microsecond precision survives.
	assert.Equal(t, "2024-01-01T00:00:00.123456+00:00",
		ExportISO(time.Date(2024, 1, 1, 0, 0, 0, 123456000, time.UTC)))
}

func TestUnixMillis(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(1704067200000), UnixMillis(ts))
}

func TestParseCreatedAt(t *testing.T) {
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value interface{}
	}{
		{name: "unix seconds float", value: float64(1704067200)},
		{name: "json number", value: json.Number("1704067200")},
		{name: "iso with zulu", value: "2024-01-01T00:00:00Z"},
		{name: "iso with offset", value: "2024-01-01T00:00:00+00:00"},
		{name: "iso naive", value: "2024-01-01T00:00:00"},
		{name: "iso micros", value: "2024-01-01T00:00:00.000000+00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCreatedAt(tt.value)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %v, want %v", got, want)
		})
	}
}

func TestParseCreatedAtNonUTCOffset(t *testing.T) {
	got, err := ParseCreatedAt("2024-01-01T07:00:00+07:00")
	require.NoError(t, err)
	assert.Equal(t, int64(1704067200), got.Unix())
}

func TestParseCreatedAtFractionalSeconds(t *testing.T) {
	got, err := ParseCreatedAt(1704067200.5)
	require.NoError(t, err)
	assert.Equal(t, int64(1704067200), got.Unix())
	assert.Equal(t, 500*time.Millisecond, time.Duration(got.Nanosecond()))
}

func TestParseCreatedAtNilIsZero(t *testing.T) {
	got, err := ParseCreatedAt(nil)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestParseCreatedAtRejectsBadInput(t *testing.T) {
	_, err := ParseCreatedAt("not-a-date")
	assert.Error(t, err)

	_, err = ParseCreatedAt(true)
	assert.Error(t, err)

	_, err = ParseCreatedAt([]string{"2024-01-01"})
	assert.Error(t, err)
}

func TestParseThenExportRoundTrip(t *testing.T) {
	got, err := ParseCreatedAt("2024-06-15T10:30:00.123456Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15T10:30:00.123456+00:00", ExportISO(got))
}
