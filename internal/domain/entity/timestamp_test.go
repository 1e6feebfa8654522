package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apilog-admin/internal/domain/entity"
)

func TestTimestampScanKeepsStoredText(t *testing.T) {
	for _, stored := range []string{"2024-01-01 10:00:00", "2024/01/01 10:00:00", "yesterday"} {
		var ts entity.Timestamp
		require.NoError(t, ts.Scan(stored))
		assert.Equal(t, stored, ts.String())

		out, err := json.Marshal(ts)
		require.NoError(t, err)
		assert.JSONEq(t, `"`+stored+`"`, string(out))
	}

	var ts entity.Timestamp
	require.NoError(t, ts.Scan([]byte("2024-01-01T10:00:00.123Z")))
	assert.Equal(t, "2024-01-01T10:00:00.123Z", ts.String())
}

func TestTimestampScanNumberAndNull(t *testing.T) {
	var ts entity.Timestamp
	require.NoError(t, ts.Scan(int64(1704103200000)))
	out, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "1704103200000", string(out))
	assert.Equal(t, "1704103200000", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsNull())
	out, err = json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestTimestampScanTime(t *testing.T) {
	when := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)

	var ts entity.Timestamp
	require.NoError(t, ts.Scan(when))

	got, ok := ts.Time()
	require.True(t, ok)
	assert.True(t, when.Equal(got))

	out, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-04T05:06:07Z"`, string(out))

	direct, err := json.Marshal(entity.TimeOf(when))
	require.NoError(t, err)
	assert.Equal(t, out, direct)
}

func TestTimestampJSONRoundTrip(t *testing.T) {
	for _, in := range []string{`"2024-01-01 10:00:00"`, `1704103200000`, `null`} {
		var ts entity.Timestamp
		require.NoError(t, json.Unmarshal([]byte(in), &ts))
		out, err := json.Marshal(ts)
		require.NoError(t, err)
		assert.JSONEq(t, in, string(out))
	}
}
