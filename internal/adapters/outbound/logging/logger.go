// Package logging provides the leveled console logger handed to each
// component at construction.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// ParseColorMode validates a --color flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (valid: auto, always, never)", s)
	}
}

// Options configures a Logger. Nil writers default to stdout and stderr.
type Options struct {
	Out     io.Writer
	Err     io.Writer
	Color   ColorMode
	Verbose bool
}

type level struct {
	name  string
	color lipgloss.Color
}

var (
	levelDebug   = level{"DEBUG", lipgloss.Color("#8B949E")}
	levelInfo    = level{"INFO", lipgloss.Color("#60A5FA")}
	levelSuccess = level{"SUCCESS", lipgloss.Color("#22C55E")}
	levelWarn    = level{"WARN", lipgloss.Color("#F59E0B")}
	levelError   = level{"ERROR", lipgloss.Color("#EF4444")}
)

// Logger writes timestamped, level-tagged lines. Errors go to the error
// writer, everything else to the output writer. Safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	err      io.Writer
	verbose  bool
	renderer *lipgloss.Renderer
	color    bool
	now      func() time.Time
}

func New(opts Options) *Logger {
	l := &Logger{
		out:     opts.Out,
		err:     opts.Err,
		verbose: opts.Verbose,
		now:     time.Now,
	}
	if l.out == nil {
		l.out = os.Stdout
	}
	if l.err == nil {
		l.err = os.Stderr
	}

	switch opts.Color {
	case ColorAlways:
		l.color = true
	case ColorNever:
		l.color = false
	default:
		l.color = isTerminal(l.out) && os.Getenv("NO_COLOR") == "" && strings.ToLower(os.Getenv("TERM")) != "dumb"
	}

	l.renderer = lipgloss.NewRenderer(l.out)
	if l.color {
		l.renderer.SetColorProfile(termenv.ANSI256)
	} else {
		l.renderer.SetColorProfile(termenv.Ascii)
	}
	return l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func (l *Logger) line(lv level, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	ts := l.now().Format("2006-01-02 15:04:05")
	tag := "[" + lv.name + "]"
	if l.color {
		tag = l.renderer.NewStyle().Bold(true).Foreground(lv.color).Render(tag)
	}

	w := l.out
	if lv == levelError {
		w = l.err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(w, ts+" "+tag+" "+text+"\n")
}

// Debug logs only when the logger is verbose.
func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.line(levelDebug, format, args...)
}

func (l *Logger) Info(format string, args ...any)    { l.line(levelInfo, format, args...) }
func (l *Logger) Success(format string, args ...any) { l.line(levelSuccess, format, args...) }
func (l *Logger) Warn(format string, args ...any)    { l.line(levelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any)   { l.line(levelError, format, args...) }

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return New(Options{Out: io.Discard, Err: io.Discard, Color: ColorNever})
}
