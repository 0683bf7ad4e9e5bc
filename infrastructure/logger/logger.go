package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

type Logger interface {
	Info(msg string)
	Error(msg string, err error)
	Warning(msg string)
	Close()
}

type LogData struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	File      string `json:"file"`
	Function  string `json:"function"`
	Message   string `json:"message"`
	Err       string `json:"err,omitempty"`
}

type jsonLogger struct {
	mu      sync.Mutex
	out     io.WriteCloser
	encoder *json.Encoder
	now     func() time.Time
}

// NewFileLogger writes JSON lines to <logDir>/<logPrefix>_<timestamp>.json.
func NewFileLogger(logDir, logPrefix string) (Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory '%s': %w", logDir, err)
	}

	logFileName := fmt.Sprintf("%s_%s.json", logPrefix, time.Now().Format("2006-01-02_15-04-05"))
	logFilePath := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", logFilePath, err)
	}

	return NewLogger(file), nil
}

// NewLogger writes JSON lines to out. Close closes out.
func NewLogger(out io.WriteCloser) Logger {
	return &jsonLogger{
		out:     out,
		encoder: json.NewEncoder(out),
		now:     time.Now,
	}
}

func (l *jsonLogger) write(level, msg string, errIn error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.out == nil {
		fmt.Fprintf(os.Stderr, "logger is closed, dropping %s entry: %s\n", level, msg)
		return
	}

	entry := LogData{
		Timestamp: l.now().Format(time.RFC3339),
		Level:     level,
		Message:   msg,
	}
	entry.File, entry.Function = caller(3)
	if errIn != nil {
		entry.Err = errIn.Error()
	}

	if err := l.encoder.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}

// caller returns the short file and function name skip frames up.
func caller(skip int) (string, string) {
	pc, filePath, _, ok := runtime.Caller(skip)
	if !ok {
		return "???", "???"
	}

	funcName := "???"
	if fn := runtime.FuncForPC(pc); fn != nil {
		parts := strings.Split(fn.Name(), ".")
		funcName = parts[len(parts)-1]
	}

	return filepath.Base(filePath), funcName
}

func (l *jsonLogger) Info(msg string) {
	l.write("INFO", msg, nil)
}

func (l *jsonLogger) Error(msg string, err error) {
	l.write("ERROR", msg, err)
}

func (l *jsonLogger) Warning(msg string) {
	l.write("WARNING", msg, nil)
}

func (l *jsonLogger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.out == nil {
		return
	}
	if err := l.out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "error closing log output: %v\n", err)
	}
	l.out = nil
}
