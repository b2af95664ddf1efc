package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const maxBufferSize = 1000

var (
	instance *Logger
	once     sync.Once
)

type LogEntry struct {
	Timestamp time.Time
	Message   string
}

// Logger writes tagged entries to a log file and keeps the most recent
// ones in memory for the logs view. When Init fails or is never called
// the in-memory buffer still works, only the file output is disabled.
type Logger struct {
	file    *os.File
	logger  *log.Logger
	mu      sync.Mutex
	buffer  []LogEntry
	enabled bool
}

func Init(logPath string) error {
	var initErr error
	once.Do(func() {
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			initErr = fmt.Errorf("failed to create log directory: %w", err)
			return
		}

		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			initErr = fmt.Errorf("failed to open log file: %w", err)
			return
		}

		instance = &Logger{
			file:    file,
			logger:  log.New(file, "", log.LstdFlags),
			buffer:  make([]LogEntry, 0, maxBufferSize),
			enabled: true,
		}
	})

	if instance == nil && initErr == nil {
		instance = &Logger{
			buffer:  make([]LogEntry, 0, maxBufferSize),
			enabled: false,
		}
	}

	return initErr
}

func EnsureInit() {
	if instance == nil {
		instance = &Logger{
			buffer:  make([]LogEntry, 0, maxBufferSize),
			enabled: false,
		}
	}
}

func Close() error {
	if instance != nil && instance.file != nil {
		return instance.file.Close()
	}
	return nil
}

func emit(message string) {
	EnsureInit()
	instance.mu.Lock()
	defer instance.mu.Unlock()

	if len(instance.buffer) >= maxBufferSize {
		instance.buffer = instance.buffer[1:]
	}
	instance.buffer = append(instance.buffer, LogEntry{
		Timestamp: time.Now(),
		Message:   message,
	})

	if instance.enabled && instance.logger != nil {
		instance.logger.Println(message)
	}
}

func GetLogs() []LogEntry {
	EnsureInit()
	instance.mu.Lock()
	defer instance.mu.Unlock()

	logs := make([]LogEntry, len(instance.buffer))
	copy(logs, instance.buffer)
	return logs
}

func Log(message string, args ...interface{}) {
	emit(fmt.Sprintf("[INFO] "+message, args...))
}

func LogError(operation, target string, err error) {
	emit(fmt.Sprintf("[ERROR] %s: %s - %v", operation, target, err))
}

func LogFileOpen(path string) {
	emit(fmt.Sprintf("[FILE_OPEN] %s", path))
}

func LogFileWrite(path string) {
	emit(fmt.Sprintf("[FILE_WRITE] %s", path))
}

func LogHTTP(id, method, path string, status int, elapsed time.Duration) {
	emit(fmt.Sprintf("[HTTP] %s %s %s - %d (%v)", id, method, path, status, elapsed))
}

// LogRender records one completed preview refresh so stale-response
// drops can be diagnosed from the log alone.
func LogRender(seq uint64, lines, svgBytes int, elapsed time.Duration) {
	emit(fmt.Sprintf("[RENDER] seq=%d lines=%d svg=%dB (%v)", seq, lines, svgBytes, elapsed))
}
