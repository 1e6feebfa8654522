package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apilog-admin/internal/domain/apperror"
	"apilog-admin/internal/domain/entity"
)

func TestParseRouteID(t *testing.T) {
	id, err := entity.ParseRouteID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	id, err = entity.ParseRouteID(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	for _, raw := range []string{"", "abc", "1.5", "12abc", "99999999999999999999"} {
		_, err := entity.ParseRouteID(raw)
		assert.True(t, apperror.Is(err, apperror.KindInvalidArgument), "input %q", raw)
	}
}

func TestNewLogListResponseNeverNullLogs(t *testing.T) {
	resp := entity.NewLogListResponse(&entity.LogPage{Total: 0, Limit: 20})
	assert.NotNil(t, resp.Logs)
	assert.True(t, resp.Success)
	assert.Equal(t, 20, resp.Meta.Limit)
}
