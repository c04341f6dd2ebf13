// Package xlog is a small leveled logger using github.com/go-stack/stack
// for call-site capture and github.com/mattn/go-colorable plus
// github.com/mattn/go-isatty for TTY-aware coloring.
//
// It is for operational diagnostics only; the machine package does not call
// it. It is distinct from, and never substitutes for, the ordered
// trace-string vector the Trace builtin appends to: that vector is
// evaluation output, not a diagnostic log, and callers read it back from
// the machine directly.
package xlog

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-stack/stack"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Level is a logging severity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERRO"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DBUG"
	case LevelTrace:
		return "TRCE"
	default:
		return "????"
	}
}

// Logger writes leveled records with a captured call site to an output
// stream, coloring the level tag when the stream is a terminal.
type Logger struct {
	out      io.Writer
	minLevel Level
	color    bool
}

// New creates a Logger writing to w at minLevel and above. If w is an
// *os.File it is wrapped with go-colorable, and level tags are colored when
// the file refers to a terminal; any other writer is used as is, without
// color.
func New(w io.Writer, minLevel Level) *Logger {
	color := false
	out := w
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		out = colorable.NewColorable(f)
	}
	return &Logger{out: out, minLevel: minLevel, color: color}
}

// Default is a Logger writing to stderr at LevelInfo, used by package-level
// helpers below.
var Default = New(os.Stderr, LevelInfo)

func levelColor(l Level) string {
	switch l {
	case LevelError:
		return "\x1b[31m"
	case LevelWarn:
		return "\x1b[33m"
	case LevelDebug, LevelTrace:
		return "\x1b[36m"
	default:
		return "\x1b[32m"
	}
}

// log emits one record if lvl is at or below the logger's minimum severity
// (lower Level values are more severe).
func (lg *Logger) log(lvl Level, skip int, msg string, ctx ...interface{}) {
	if lvl > lg.minLevel {
		return
	}
	call := stack.Caller(skip)
	ts := time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
	tag := lvl.String()
	if lg.color {
		tag = levelColor(lvl) + tag + "\x1b[0m"
	}
	fmt.Fprintf(lg.out, "%s [%s] %s", ts, tag, msg)
	for i := 0; i+1 < len(ctx); i += 2 {
		fmt.Fprintf(lg.out, " %v=%v", ctx[i], ctx[i+1])
	}
	fmt.Fprintf(lg.out, " caller=%+v\n", call)
}

func (lg *Logger) Error(msg string, ctx ...interface{}) { lg.log(LevelError, 3, msg, ctx...) }
func (lg *Logger) Warn(msg string, ctx ...interface{})  { lg.log(LevelWarn, 3, msg, ctx...) }
func (lg *Logger) Info(msg string, ctx ...interface{})  { lg.log(LevelInfo, 3, msg, ctx...) }
func (lg *Logger) Debug(msg string, ctx ...interface{}) { lg.log(LevelDebug, 3, msg, ctx...) }
func (lg *Logger) Trace(msg string, ctx ...interface{}) { lg.log(LevelTrace, 3, msg, ctx...) }

// Debug logs at Debug level on the package default logger.
func Debug(msg string, ctx ...interface{}) { Default.log(LevelDebug, 3, msg, ctx...) }

// Warn logs at Warn level on the package default logger.
func Warn(msg string, ctx ...interface{}) { Default.log(LevelWarn, 3, msg, ctx...) }
