package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"huntlog/config"
	deliverycontext "huntlog/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// gormLogger routes GORM output into slog. Query lines go through the request
// logger so they carry the request and subject ids.
type gormLogger struct {
	fallback      *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormLogger{
		fallback:      base.With(slog.String("component", "gorm")),
		level:         level,
		slowThreshold: defaultSlowQueryThreshold,
	}
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "GORM", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed, slow and (in debug) all queries. Unique violations and
// missing rows are business outcomes such as SlotTaken and stay at debug.
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	log := l.loggerFor(ctx)

	switch {
	case err != nil && expectedQueryError(err):
		if l.level >= logger.Info {
			attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("outcome", queryOutcome(err)))
			log.LogAttrs(ctx, slog.LevelDebug, "GORM query rejected", attrs...)
		}
	case err != nil:
		if l.level >= logger.Error {
			attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
			log.LogAttrs(ctx, slog.LevelError, "GORM query failed", attrs...)
		}
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		if l.level >= logger.Warn {
			attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.Duration("slow_threshold", l.slowThreshold))
			log.LogAttrs(ctx, slog.LevelWarn, "GORM slow query", attrs...)
		}
	case l.level >= logger.Info:
		log.LogAttrs(ctx, slog.LevelDebug, "GORM query", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func (l *gormLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.fallback
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.fallback)
}

func expectedQueryError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || isUniqueConstraintViolation(err)
}

func queryOutcome(err error) string {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "not_found"
	}
	if pgErr, ok := asPgError(err); ok && pgErr.ConstraintName != "" {
		return "unique_violation:" + pgErr.ConstraintName
	}

	return "unique_violation"
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
