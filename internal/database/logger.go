package database

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// queryLogger sends gorm logs to zerolog, tagged with the address of the
// database they were sent to.
//
// Statements are logged at debug level. Failed statements are logged as
// errors and statements slower than slowThreshold as warnings.
type queryLogger struct {
	log           zerolog.Logger
	slowThreshold time.Duration
}

func newQueryLogger(l zerolog.Logger, address string, slowThreshold time.Duration) *queryLogger {
	return &queryLogger{
		log:           l.With().Str("target", address).Logger(),
		slowThreshold: slowThreshold,
	}
}

// LogMode is a no-op, the level is controlled by zerolog.
func (l *queryLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *queryLogger) Info(_ context.Context, s string, args ...interface{}) {
	l.log.Info().Msgf(s, args...)
}

func (l *queryLogger) Warn(_ context.Context, s string, args ...interface{}) {
	l.log.Warn().Msgf(s, args...)
}

func (l *queryLogger) Error(_ context.Context, s string, args ...interface{}) {
	l.log.Error().Msgf(s, args...)
}

func (l *queryLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	var event *zerolog.Event
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		event = l.log.Error().Err(err)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		event = l.log.Warn().Dur("threshold", l.slowThreshold)
	default:
		event = l.log.Debug()
	}

	// fc renders the statement, skip it when the event is discarded
	if !event.Enabled() {
		return
	}

	sql, rows := fc()
	event.Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("statement")
}
