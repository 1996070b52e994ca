package db

import (
	"fmt"
	"time"

	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/person-api/internal/platform/logger"
)

type gormWriter struct {
	log *logger.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Warn(fmt.Sprintf(format, args...))
}

// NewGormLogger routes gorm's slow-query and error output through zap.
func NewGormLogger(logg *logger.Logger, slow time.Duration) gormLogger.Interface {
	return gormLogger.New(
		gormWriter{log: logg.With("component", "gorm")},
		gormLogger.Config{
			SlowThreshold:             slow,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
