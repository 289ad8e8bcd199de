package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logFileName = "particles.log"
	maxLogSize  = 10 * 1024 * 1024
)

// logDir is relative to the working directory
var logDir = "logs"

// setupLogging routes the standard logger to logs/particles.log when debug is set, io.Discard otherwise
// An oversized log is rotated to particles-<timestamp>.log first
// Returns the open file for the caller to close, nil when logging is disabled or the file cannot be opened
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("particles-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			log.SetOutput(io.Discard)
			return nil
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// logConfig is the Init argument recognized by logSink
type logConfig struct {
	Debug bool
}

// logSink owns the debug log file as a hub-managed service
type logSink struct {
	debug bool
	file  *os.File
}

func newLogSink() *logSink {
	return &logSink{}
}

// Name implements service.Service
func (s *logSink) Name() string {
	return "logsink"
}

// Dependencies implements service.Service
func (s *logSink) Dependencies() []string {
	return nil
}

// Init implements service.Service
func (s *logSink) Init(args ...any) error {
	for _, arg := range args {
		if cfg, ok := arg.(*logConfig); ok && cfg != nil {
			s.debug = cfg.Debug
			break
		}
	}
	return nil
}

// Start implements service.Service
func (s *logSink) Start() error {
	s.file = setupLogging(s.debug)
	return nil
}

// Stop implements service.Service
func (s *logSink) Stop() error {
	log.SetOutput(io.Discard)
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
