package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"apilog-admin/internal/domain/entity"
	"apilog-admin/internal/domain/repository"
	"apilog-admin/internal/infrastructure/database"
	"apilog-admin/internal/infrastructure/sqlbuilder"
)

type apiRouteRepository struct {
	db     *database.Database
	logger *zap.Logger
}

// NewAPIRouteRepository creates a new API route repository
func NewAPIRouteRepository(db *database.Database, logger *zap.Logger) repository.APIRouteRepository {
	return &apiRouteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *apiRouteRepository) FindAll(ctx context.Context) ([]entity.APIRoute, error) {
	query := `
		SELECT id, name, path, method
		FROM api_routes
		ORDER BY name ASC
	`

	rows, err := r.db.DB.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query API routes", zap.Error(err))
		return nil, fmt.Errorf("failed to query api routes: %w", err)
	}
	defer rows.Close()

	routes := []entity.APIRoute{}
	for rows.Next() {
		var route entity.APIRoute
		if err := rows.Scan(&route.ID, &route.Name, &route.Path, &route.Method); err != nil {
			return nil, fmt.Errorf("failed to scan api route: %w", err)
		}
		routes = append(routes, route)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate api routes: %w", err)
	}

	return routes, nil
}

func (r *apiRouteRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := sqlbuilder.Rebind(r.db.Dialect, `SELECT id FROM api_routes WHERE id = ?`)

	var found int64
	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		r.logger.Error("Failed to look up API route", zap.Int64("route_id", id), zap.Error(err))
		return false, fmt.Errorf("failed to find api route: %w", err)
	}

	return true, nil
}
