package logger

import "github.com/sirupsen/logrus"

// LeveledLogger adapts logrus to the retryablehttp.LeveledLogger interface.
type LeveledLogger struct {
	entry *logrus.Entry
}

// NewLeveledLogger creates a leveled logger scoped to the upstream HTTP client
func NewLeveledLogger() *LeveledLogger {
	return &LeveledLogger{entry: New().WithField("component", "upstream_http")}
}

func (l *LeveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(toFields(keysAndValues)).Error(msg)
}

func (l *LeveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(toFields(keysAndValues)).Info(msg)
}

func (l *LeveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(toFields(keysAndValues)).Debug(msg)
}

func (l *LeveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(toFields(keysAndValues)).Warn(msg)
}

func toFields(keysAndValues []interface{}) logrus.Fields {
	fields := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
