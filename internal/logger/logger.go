// Package logger provides leveled loggers writing to a shared log file, with
// errors mirrored to stderr. Levels above the configured one are discarded.
package logger

import (
	"io"
	"log"
	"os"
)

var (
	Info   *log.Logger
	Warn   *log.Logger
	Debug  *log.Logger
	Error  *log.Logger
	Always *log.Logger // bypasses level filtering, always written to file

	currentLevel string
)

// severity rank per level name; unknown names mean "never log"
var levels = map[string]int{
	"error": 0,
	"warn":  1,
	"info":  2,
	"debug": 3,
}

func Init() error {
	return InitWithConfig("info", "finback.log")
}

func InitWithConfig(logLevel, logFilePath string) error {
	currentLevel = logLevel

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	Info = log.New(writerFor("info", logFile), "ℹ️  INFO: ", log.Ldate|log.Ltime)
	Warn = log.New(writerFor("warn", logFile), "⚠️  WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	Debug = log.New(writerFor("debug", logFile), "🐛 DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)
	Error = log.New(io.MultiWriter(os.Stderr, logFile), "❌ ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	Always = log.New(logFile, "📝 ALWAYS: ", log.Ldate|log.Ltime)

	return nil
}

func writerFor(level string, logFile io.Writer) io.Writer {
	if shouldLog(level) {
		return logFile
	}
	return io.Discard
}

func shouldLog(level string) bool {
	configured, ok := levels[currentLevel]
	if !ok {
		configured = levels["info"]
	}
	required, ok := levels[level]
	if !ok {
		return false
	}
	return configured >= required
}
