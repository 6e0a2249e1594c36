// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging installs the process-wide logger exactly once.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Prefix tags every log line.
const Prefix = "stempelkarten"

var once sync.Once

// ParseLevel maps a level name (debug, info, warn, error) to a log level.
// The empty string means info.
func ParseLevel(s string) (log.Level, error) {
	if strings.TrimSpace(s) == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// New builds a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}

// Init installs a logger writing to w as the process default. Only the first
// call has an effect; it reports whether this call installed the logger.
func Init(w io.Writer, level log.Level) bool {
	installed := false
	once.Do(func() {
		log.SetDefault(New(w, level))
		installed = true
	})
	return installed
}
