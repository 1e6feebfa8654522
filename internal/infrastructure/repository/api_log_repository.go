package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"apilog-admin/internal/domain/entity"
	"apilog-admin/internal/domain/repository"
	"apilog-admin/internal/infrastructure/database"
	"apilog-admin/internal/infrastructure/sqlbuilder"
)

const logRelation = "api_logs LEFT JOIN api_routes ON api_logs.route_id = api_routes.id"

var logColumns = []string{
	"api_logs.id",
	"api_logs.route_id",
	"api_logs.ip_address",
	"api_logs.request_data",
	"api_logs.response_status",
	"api_logs.execution_time",
	"api_logs.created_at",
	"api_routes.name AS api_name",
	"api_routes.path AS api_path",
	"api_routes.method AS api_method",
}

type apiLogRepository struct {
	db     *database.Database
	logger *zap.Logger
}

// NewAPILogRepository creates a new API log repository
func NewAPILogRepository(db *database.Database, logger *zap.Logger) repository.APILogRepository {
	return &apiLogRepository{
		db:     db,
		logger: logger,
	}
}

// logSelect turns a query into the joined listing. The predicate order is
// fixed: route scope, routeId, status, ipAddress, startDate, endDate.
func logSelect(q entity.LogQuery) sqlbuilder.Select {
	where := &sqlbuilder.Predicates{}

	if q.RouteScope != nil {
		where.Eq("api_logs.route_id", *q.RouteScope)
	}

	f := q.Filter
	if f.RouteID != nil {
		where.Eq("api_logs.route_id", *f.RouteID)
	}
	if f.Status != nil {
		where.Eq("api_logs.response_status", *f.Status)
	}
	if f.IPAddress != "" {
		where.Contains("api_logs.ip_address", f.IPAddress)
	}
	if f.StartDate != "" {
		where.Gte("api_logs.created_at", f.StartDate)
	}
	if f.EndDate != "" {
		where.Lte("api_logs.created_at", f.EndDate)
	}

	return sqlbuilder.Select{
		Columns: logColumns,
		From:    logRelation,
		Where:   where,
		OrderBy: "api_logs.created_at DESC",
	}
}

// List runs the count statement, then the page statement
func (r *apiLogRepository) List(ctx context.Context, q entity.LogQuery) ([]entity.APILogEntry, int64, error) {
	stmt := logSelect(q)

	countSQL, countArgs := stmt.Count(r.db.Dialect)
	var total int64
	if err := r.db.DB.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		r.logger.Error("Failed to count API logs", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count api logs: %w", err)
	}

	pageSQL, pageArgs := stmt.Page(r.db.Dialect, q.Page.Limit, q.Page.Offset)
	rows, err := r.db.DB.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		r.logger.Error("Failed to query API logs", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to query api logs: %w", err)
	}
	defer rows.Close()

	logs := []entity.APILogEntry{}
	for rows.Next() {
		entry, err := scanLogEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan api log: %w", err)
		}
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate api logs: %w", err)
	}

	return logs, total, nil
}

func scanLogEntry(rows *sql.Rows) (entity.APILogEntry, error) {
	var (
		entry          entity.APILogEntry
		routeID        sql.NullInt64
		ipAddress      sql.NullString
		requestData    sql.NullString
		responseStatus sql.NullInt64
		executionTime  sql.NullFloat64
		apiName        sql.NullString
		apiPath        sql.NullString
		apiMethod      sql.NullString
	)

	err := rows.Scan(
		&entry.ID,
		&routeID,
		&ipAddress,
		&requestData,
		&responseStatus,
		&executionTime,
		&entry.CreatedAt,
		&apiName,
		&apiPath,
		&apiMethod,
	)
	if err != nil {
		return entity.APILogEntry{}, err
	}

	if routeID.Valid {
		entry.RouteID = &routeID.Int64
	}
	entry.IPAddress = ipAddress.String
	entry.RequestData = nullStringPtr(requestData)
	entry.ResponseStatus = int(responseStatus.Int64)
	entry.ExecutionTime = executionTime.Float64
	entry.APIName = nullStringPtr(apiName)
	entry.APIPath = nullStringPtr(apiPath)
	entry.APIMethod = nullStringPtr(apiMethod)

	return entry, nil
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
