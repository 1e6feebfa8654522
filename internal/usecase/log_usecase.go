package usecase

import (
	"context"

	"go.uber.org/zap"

	"apilog-admin/internal/domain/apperror"
	"apilog-admin/internal/domain/entity"
	"apilog-admin/internal/domain/repository"
)

type LogUsecase interface {
	// ListLogs returns one page of logs matching filter, newest first
	ListLogs(ctx context.Context, filter entity.LogFilter, page entity.Page) (*entity.LogPage, error)
	// ListRouteLogs returns one page of the logs recorded for an existing route
	ListRouteLogs(ctx context.Context, routeID int64, page entity.Page) (*entity.LogPage, error)
	// ListRoutes returns the route catalog sorted by name
	ListRoutes(ctx context.Context) ([]entity.APIRoute, error)
}

type logUsecase struct {
	logRepo   repository.APILogRepository
	routeRepo repository.APIRouteRepository
	logger    *zap.Logger
}

func NewLogUsecase(
	logRepo repository.APILogRepository,
	routeRepo repository.APIRouteRepository,
	logger *zap.Logger,
) LogUsecase {
	return &logUsecase{
		logRepo:   logRepo,
		routeRepo: routeRepo,
		logger:    logger,
	}
}

func (u *logUsecase) ListLogs(ctx context.Context, filter entity.LogFilter, page entity.Page) (*entity.LogPage, error) {
	return u.list(ctx, entity.LogQuery{Filter: filter, Page: page})
}

func (u *logUsecase) ListRouteLogs(ctx context.Context, routeID int64, page entity.Page) (*entity.LogPage, error) {
	exists, err := u.routeRepo.Exists(ctx, routeID)
	if err != nil {
		u.logger.Error("Failed to check API route",
			zap.Int64("route_id", routeID),
			zap.Error(err),
		)
		return nil, apperror.Storage(err)
	}
	if !exists {
		return nil, apperror.NotFound("api route not found")
	}

	return u.list(ctx, entity.LogQuery{RouteScope: &routeID, Page: page})
}

func (u *logUsecase) list(ctx context.Context, query entity.LogQuery) (*entity.LogPage, error) {
	logs, total, err := u.logRepo.List(ctx, query)
	if err != nil {
		u.logger.Error("Failed to list API logs",
			zap.Int("limit", query.Page.Limit),
			zap.Int("offset", query.Page.Offset),
			zap.Error(err),
		)
		return nil, apperror.Storage(err)
	}

	u.logger.Debug("Listed API logs",
		zap.Int64("total", total),
		zap.Int("returned", len(logs)),
	)

	return &entity.LogPage{
		Logs:   logs,
		Total:  total,
		Limit:  query.Page.Limit,
		Offset: query.Page.Offset,
	}, nil
}

func (u *logUsecase) ListRoutes(ctx context.Context) ([]entity.APIRoute, error) {
	routes, err := u.routeRepo.FindAll(ctx)
	if err != nil {
		u.logger.Error("Failed to list API routes", zap.Error(err))
		return nil, apperror.Storage(err)
	}
	return routes, nil
}
