package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var (
	levelNames = map[Level]string{
		DEBUG: "DEBUG",
		INFO:  "INFO",
		WARN:  "WARN",
		ERROR: "ERROR",
	}
	levelColors = map[Level]string{
		DEBUG: "\033[36m",
		INFO:  "\033[32m",
		WARN:  "\033[33m",
		ERROR: "\033[31m",
	}
	reset = "\033[0m"
)

// Logger 带级别的日志器；WithPrefix 派生的子日志器共享根日志器的级别与输出
type Logger struct {
	mu       sync.Mutex
	level    Level
	out      io.Writer
	useColor bool

	prefix string
	child  bool
}

var (
	std     *Logger
	stdOnce sync.Once
)

func Init(level string, useColor bool) {
	stdOnce.Do(func() {
		std = &Logger{
			level:    parseLevel(level),
			out:      os.Stderr,
			useColor: useColor,
		}
	})
}

// InitWithFile 日志写入文件（追加），打开失败时保持原输出并返回错误
func InitWithFile(level string, logFile string) error {
	Init(level, false)
	if logFile == "" {
		return nil
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	SetOutput(file)
	return nil
}

func Get() *Logger {
	Init("INFO", true)
	return std
}

// Configure 在已初始化之后调整级别和颜色（配置文件加载晚于包初始化）
func Configure(level string, useColor bool) {
	l := Get()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = parseLevel(level)
	l.useColor = useColor
}

func SetLevel(level string) {
	l := Get()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = parseLevel(level)
}

func SetOutput(w io.Writer) {
	l := Get()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

func parseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

func Debug(format string, v ...interface{}) {
	Get().log(DEBUG, format, v...)
}

func Info(format string, v ...interface{}) {
	Get().log(INFO, format, v...)
}

func Warn(format string, v ...interface{}) {
	Get().log(WARN, format, v...)
}

func Error(format string, v ...interface{}) {
	Get().log(ERROR, format, v...)
}

func Fatal(format string, v ...interface{}) {
	Get().log(ERROR, format, v...)
	os.Exit(1)
}

// WithPrefix 返回带前缀的子日志器，如 [Torrentz]
func WithPrefix(prefix string) *Logger {
	return &Logger{prefix: prefix, child: true}
}

func (l *Logger) Debug(format string, v ...interface{}) { l.log(DEBUG, format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.log(INFO, format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.log(WARN, format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.log(ERROR, format, v...) }

func (l *Logger) log(level Level, format string, v ...interface{}) {
	root := l
	if l.child {
		root = Get()
	}

	root.mu.Lock()
	defer root.mu.Unlock()

	if level < root.level {
		return
	}

	msg := fmt.Sprintf(format, v...)
	levelStr := levelNames[level]

	var output string
	if root.useColor {
		output = fmt.Sprintf("%s[%s]%s %s", levelColors[level], levelStr, reset, msg)
	} else {
		output = fmt.Sprintf("[%s] %s", levelStr, msg)
	}

	if l.prefix != "" {
		output = fmt.Sprintf("[%s] %s", l.prefix, output)
	}

	fmt.Fprintf(root.out, "%s %s\n", time.Now().Format("2006/01/02 15:04:05"), output)
}
