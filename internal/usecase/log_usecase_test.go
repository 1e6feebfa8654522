package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"apilog-admin/internal/domain/apperror"
	"apilog-admin/internal/domain/entity"
	"apilog-admin/internal/usecase"
)

type fakeLogRepo struct {
	logs    []entity.APILogEntry
	total   int64
	err     error
	queries []entity.LogQuery
}

func (f *fakeLogRepo) List(_ context.Context, q entity.LogQuery) ([]entity.APILogEntry, int64, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.logs, f.total, nil
}

type fakeRouteRepo struct {
	routes    []entity.APIRoute
	existing  map[int64]bool
	err       error
	existsIDs []int64
}

func (f *fakeRouteRepo) FindAll(context.Context) ([]entity.APIRoute, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.routes, nil
}

func (f *fakeRouteRepo) Exists(_ context.Context, id int64) (bool, error) {
	f.existsIDs = append(f.existsIDs, id)
	if f.err != nil {
		return false, f.err
	}
	return f.existing[id], nil
}

func TestListLogsPassesFilterAndPage(t *testing.T) {
	routeID := int64(4)
	logs := &fakeLogRepo{
		logs:  []entity.APILogEntry{{ID: 9}, {ID: 8}},
		total: 42,
	}
	uc := usecase.NewLogUsecase(logs, &fakeRouteRepo{}, zap.NewNop())

	filter := entity.LogFilter{RouteID: &routeID, IPAddress: "10.0"}
	page, err := uc.ListLogs(context.Background(), filter, entity.Page{Limit: 2, Offset: 6})
	require.NoError(t, err)

	assert.Equal(t, int64(42), page.Total)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, 6, page.Offset)
	assert.Len(t, page.Logs, 2)

	require.Len(t, logs.queries, 1)
	assert.Nil(t, logs.queries[0].RouteScope)
	assert.Equal(t, filter, logs.queries[0].Filter)
}

func TestListLogsWrapsStoreFailure(t *testing.T) {
	uc := usecase.NewLogUsecase(&fakeLogRepo{err: errors.New("connection refused")}, &fakeRouteRepo{}, zap.NewNop())

	_, err := uc.ListLogs(context.Background(), entity.LogFilter{}, entity.Page{Limit: 20})
	require.Error(t, err)
	assert.Equal(t, apperror.KindStorage, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestListRouteLogsScopesToRoute(t *testing.T) {
	logs := &fakeLogRepo{total: 0}
	routes := &fakeRouteRepo{existing: map[int64]bool{7: true}}
	uc := usecase.NewLogUsecase(logs, routes, zap.NewNop())

	page, err := uc.ListRouteLogs(context.Background(), 7, entity.Page{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Total)

	require.Len(t, logs.queries, 1)
	require.NotNil(t, logs.queries[0].RouteScope)
	assert.Equal(t, int64(7), *logs.queries[0].RouteScope)
	assert.Equal(t, entity.LogFilter{}, logs.queries[0].Filter)
}

func TestListRouteLogsUnknownRoute(t *testing.T) {
	logs := &fakeLogRepo{}
	routes := &fakeRouteRepo{existing: map[int64]bool{}}
	uc := usecase.NewLogUsecase(logs, routes, zap.NewNop())

	_, err := uc.ListRouteLogs(context.Background(), 999999, entity.Page{Limit: 20})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.Equal(t, []int64{999999}, routes.existsIDs)
	assert.Empty(t, logs.queries)
}

func TestListRouteLogsExistenceCheckFails(t *testing.T) {
	logs := &fakeLogRepo{}
	uc := usecase.NewLogUsecase(logs, &fakeRouteRepo{err: errors.New("timeout")}, zap.NewNop())

	_, err := uc.ListRouteLogs(context.Background(), 1, entity.Page{Limit: 20})
	require.Error(t, err)
	assert.Equal(t, apperror.KindStorage, apperror.KindOf(err))
	assert.Empty(t, logs.queries)
}

func TestListRoutes(t *testing.T) {
	want := []entity.APIRoute{{ID: 2, Name: "a"}, {ID: 1, Name: "b"}}
	uc := usecase.NewLogUsecase(&fakeLogRepo{}, &fakeRouteRepo{routes: want}, zap.NewNop())

	got, err := uc.ListRoutes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	uc = usecase.NewLogUsecase(&fakeLogRepo{}, &fakeRouteRepo{err: errors.New("boom")}, zap.NewNop())
	_, err = uc.ListRoutes(context.Background())
	assert.True(t, apperror.Is(err, apperror.KindStorage))
}
