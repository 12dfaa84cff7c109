// Package logger configures the application's structured logger. Production
// output is JSON for log aggregation; development output is colored text.
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Init configures the shared logger. An unparseable level falls back to
// info rather than failing startup.
func Init(level string, isDevelopment bool) *logrus.Logger {
	if level == "" {
		if isDevelopment {
			level = "debug"
		} else {
			level = "info"
		}
	}

	if parsed, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		log.SetLevel(parsed)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", level).Warn("invalid LOG_LEVEL, using info")
	}

	if isDevelopment {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}
	log.SetOutput(os.Stdout)
	return log
}

// Get returns the shared logger.
func Get() *logrus.Logger {
	return log
}

// WithRound tags log entries with the round they concern.
func WithRound(externalID string) *logrus.Entry {
	return log.WithField("round", externalID)
}

// WithPlayer tags log entries with a player ID.
func WithPlayer(playerID string) *logrus.Entry {
	return log.WithField("player_id", playerID)
}

// WithMatch tags log entries with a match ID.
func WithMatch(matchID string) *logrus.Entry {
	return log.WithField("match_id", matchID)
}
