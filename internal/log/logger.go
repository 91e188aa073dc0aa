package log

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// kind describes how one class of status message is printed.
type kind struct {
	level  string // level name in verbose mode
	marker string
	attrs  []color.Attribute
	toErr  bool
}

var (
	kindSection = kind{level: "INFO", marker: "[+] ", attrs: []color.Attribute{color.FgGreen}}
	kindItem    = kind{level: "INFO", marker: "    - "}
	kindSuccess = kind{level: "INFO", marker: "✨ ", attrs: []color.Attribute{color.FgGreen, color.Bold}}
	kindWarn    = kind{level: "WARN", marker: "[!] ", attrs: []color.Attribute{color.FgYellow}}
	kindError   = kind{level: "ERROR", marker: "[✘] ", attrs: []color.Attribute{color.FgRed}, toErr: true}
	kindHint    = kind{level: "INFO", marker: "-> ", attrs: []color.Attribute{color.FgCyan}}
)

var (
	verbose bool

	stdout io.Writer = color.Output
	stderr io.Writer = color.Error
)

// Init switches between plain progress lines and timestamped verbose lines on stderr.
func Init(debug bool) {
	verbose = debug
}

// SetOutput redirects progress output to out and errors and verbose lines to errOut.
func SetOutput(out, errOut io.Writer) {
	stdout = out
	stderr = errOut
}

// Reset restores the terminal writers and plain mode.
func Reset() {
	stdout = color.Output
	stderr = color.Error
	verbose = false
}

// Section announces a command stage, e.g. "[+] Vendoring ..."
func Section(msg string) { emit(kindSection, msg) }

// Item lists a file or directory touched by the current stage.
func Item(msg string) { emit(kindItem, msg) }

// Success closes a command.
func Success(msg string) { emit(kindSuccess, msg) }

// Warn reports a recoverable problem, such as an empty manifest bundle.
func Warn(msg string) { emit(kindWarn, msg) }

// Error reports the error a command failed with.
func Error(msg string) { emit(kindError, msg) }

// Hint suggests the next logtree command to run.
func Hint(msg string) { emit(kindHint, msg) }

// Debug prints manifest and cache details in verbose mode only.
func Debug(format string, v ...interface{}) {
	if verbose {
		stamp("DEBUG", fmt.Sprintf(format, v...))
	}
}

func emit(k kind, msg string) {
	if verbose {
		stamp(k.level, k.marker+msg)
		return
	}

	w := stdout
	if k.toErr {
		w = stderr
	}
	if len(k.attrs) == 0 {
		_, _ = fmt.Fprintf(w, "%s%s\n", k.marker, msg)
		return
	}
	_, _ = color.New(k.attrs...).Fprintf(w, "%s%s\n", k.marker, msg)
}

func stamp(level, msg string) {
	_, _ = fmt.Fprintf(stderr, "[%s] %s: %s\n", time.Now().Format("2006-01-02 15:04:05"), level, msg)
}
