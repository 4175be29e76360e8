package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

var colored = isatty.IsTerminal(os.Stdout.Fd())

func paint(color, s string) string {
	if !colored {
		return s
	}
	return color + s + colorReset
}

func line(color, level, tag, msg string) {
	ts := time.Now().Format("15:04:05")
	fmt.Printf("%s %s %s %s\n",
		paint(colorGray, ts),
		paint(color, fmt.Sprintf("%-5s", level)),
		paint(colorCyan, "["+tag+"]"),
		msg)
}

// Info logs an informational message under a tag.
func Info(tag, msg string) { line(colorCyan, "INFO", tag, msg) }

// Success logs a completed-step message under a tag.
func Success(tag, msg string) { line(colorGreen, "OK", tag, msg) }

// Warn logs a recoverable problem under a tag.
func Warn(tag, msg string) { line(colorYellow, "WARN", tag, msg) }

// Error logs a failure under a tag.
func Error(tag, msg string) { line(colorRed, "ERROR", tag, msg) }

// Banner prints the startup banner with the build version.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	fmt.Println()
	fmt.Println(paint(colorCyan, "  verse-trader "+version))
	fmt.Println(paint(colorGray, "  trading intelligence for the verse"))
	fmt.Println()
}

// Section prints a section divider for grouped stats output.
func Section(title string) {
	fmt.Println(paint(colorGray, "── "+title+" ──"))
}

// Stats prints a single aligned statistic line inside a section.
func Stats(key string, value int) {
	fmt.Printf("   %-14s %d\n", key, value)
}

// Server logs the listen address once the HTTP server is up.
func Server(addr string) {
	Success("Server", "Listening on http://"+addr)
}
