package stamp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commons/stamp"
)

func TestRoundTrip(t *testing.T) {
	at := time.Date(2024, time.March, 9, 13, 45, 30, 250_000_000, time.UTC)

	ms := stamp.FromTime(at)
	assert.Equal(t, int64(1709991930250), ms)
	assert.True(t, at.Equal(stamp.Unstamp(ms)))
	assert.Equal(t, time.UTC, stamp.Unstamp(ms).Location())
}

func TestFromDate(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("no tz database: %v", err)
	}

	ms := stamp.FromDate(2024, time.January, 2, tokyo)
	// midnight in Tokyo is 15:00 UTC the previous day
	assert.True(t, time.Date(2024, time.January, 1, 15, 0, 0, 0, time.UTC).Equal(stamp.Unstamp(ms)))

	assert.Equal(t, stamp.FromDate(2024, time.January, 2, time.Local), stamp.FromDate(2024, time.January, 2, nil))
}

func TestFromDuration(t *testing.T) {
	assert.Equal(t, int64(1500), stamp.FromDuration(1500*time.Millisecond))
	assert.Equal(t, int64(0), stamp.FromDuration(999*time.Microsecond))
	assert.Equal(t, int64(3_600_000), stamp.FromDuration(time.Hour))
}

func TestNow(t *testing.T) {
	before := time.Now().UnixMilli()
	now := stamp.Now()
	after := time.Now().UnixMilli()

	require.GreaterOrEqual(t, now, before)
	require.LessOrEqual(t, now, after)
}
