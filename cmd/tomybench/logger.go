package main

import (
	"fmt"
	stdlog "log"
	"os"
	"time"
)

// logger is a minimal named logger in the style of
// ghosecorp-ghostsql/internal/util.Logger, adapted for this CLI.
type logger struct {
	name   string
	logger *stdlog.Logger
}

func newLogger(name string) *logger {
	return &logger{name: name, logger: stdlog.New(os.Stdout, "", 0)}
}

func (l *logger) Info(format string, args ...any) { l.log("INFO", format, args...) }

func (l *logger) Fatal(format string, args ...any) {
	l.log("FATAL", format, args...)
	os.Exit(1)
}

func (l *logger) log(level, format string, args ...any) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	l.logger.Printf("[%s] [%s] [%s] %s", timestamp, level, l.name, fmt.Sprintf(format, args...))
}
