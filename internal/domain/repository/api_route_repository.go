package repository

import (
	"context"

	"apilog-admin/internal/domain/entity"
)

type APIRouteRepository interface {
	// FindAll returns every route ordered by name
	FindAll(ctx context.Context) ([]entity.APIRoute, error)

	// Exists reports whether a route with the given id is registered
	Exists(ctx context.Context, id int64) (bool, error)
}
