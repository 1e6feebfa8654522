package database

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"
)

// pgxLogger adapts zap to pgx's tracelog interface.
// pgx reports every query at info; those land at debug here.
type pgxLogger struct {
	logger *zap.Logger
}

func newPgxLogger(logger *zap.Logger) *pgxLogger {
	return &pgxLogger{logger: logger.With(zap.String("component", "pgx"))}
}

func (l *pgxLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	if level == tracelog.LogLevelNone {
		return
	}

	fields := make([]zap.Field, 0, len(data))
	for k, v := range data {
		fields = append(fields, zap.Any(k, v))
	}

	switch level {
	case tracelog.LogLevelError:
		l.logger.Error(msg, fields...)
	case tracelog.LogLevelWarn:
		l.logger.Warn(msg, fields...)
	default:
		l.logger.Debug(msg, fields...)
	}
}
