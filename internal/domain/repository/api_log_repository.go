package repository

import (
	"context"

	"apilog-admin/internal/domain/entity"
)

type APILogRepository interface {
	// List returns one page of joined log rows and the size of the whole filtered set.
	// Both statements are built from the same predicate list.
	List(ctx context.Context, query entity.LogQuery) ([]entity.APILogEntry, int64, error)
}
