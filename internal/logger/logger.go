package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const serviceName = "news-portal-backend"

var (
	base     = logrus.New()
	initOnce sync.Once
)

// Init configures the shared logrus instance. Only the first call takes effect.
func Init(level, format string) {
	initOnce.Do(func() {
		base.SetOutput(os.Stdout)

		lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil {
			lvl = logrus.InfoLevel
		}
		base.SetLevel(lvl)

		if strings.EqualFold(format, "json") {
			base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
		} else {
			base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		}
	})
}

// New returns a log entry tagged with the service name
func New() *logrus.Entry {
	return base.WithField("service", serviceName)
}

// FromGinContext returns a log entry enriched with request scoped fields
func FromGinContext(c *gin.Context) *logrus.Entry {
	entry := New()
	if c == nil {
		return entry
	}
	if requestID := c.GetString("request_id"); requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}
	if c.Request != nil {
		entry = entry.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		})
	}
	return entry
}

// Logger returns the underlying logrus logger
func Logger() *logrus.Logger {
	return base
}
