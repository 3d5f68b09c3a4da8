package debug

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type timeHook struct{}

func (timeHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	// millisecond precision with no timezone
	e.Str("time", time.Now().Format("2006-01-02T15:04:05.0000Z"))
}

// callerHook tags each event with the package, file and line that logged it.
type callerHook struct {
	colorize bool
}

func (h callerHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	pc, file, line, ok := runtime.Caller(3)
	if !ok {
		return
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return
	}

	e.Str("caller", formatCaller(callerPackage(fn.Name()), file, line, h.colorize))
}

// callerPackage strips the function and any receiver from a fully qualified
// function name.
func callerPackage(name string) string {
	start := strings.LastIndexByte(name, '/') + 1

	dot := strings.IndexByte(name[start:], '.')
	if dot < 0 {
		return name
	}
	return name[:start+dot]
}

func formatCaller(pkg, path string, line int, colorize bool) string {
	file := filepath.Base(path)
	if !colorize {
		return fmt.Sprintf("%s:%s:%d", pkg, file, line)
	}

	sep := color.New(color.Faint).Sprint(":")
	return pkg + sep + color.New(color.Bold).Sprint(file) + sep + color.New(color.FgHiRed, color.Bold).Sprintf("%d", line)
}

// NewLogger builds the console logger used by the CLI. Debug lowers the
// level from info to debug and adds caller information.
func NewLogger(w io.Writer, debug bool, colorize bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, NoColor: !colorize}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(out).Level(level).Hook(timeHook{})
	if debug {
		logger = logger.Hook(callerHook{colorize: colorize})
	}
	return logger
}

// WithRequest returns ctx carrying logger tagged with a fresh request id.
func WithRequest(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.With().Str("request_id", uuid.NewString()).Logger().WithContext(ctx)
}
