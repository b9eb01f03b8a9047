// Package ui provides terminal output utilities for the client-facing
// commands. The display's stdout belongs to the status bar, so
// warnings and errors always go to stderr.
package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Color functions for styled output
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Blue   = color.New(color.FgBlue).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
)

// Success prints a success message with a green checkmark.
func Success(msg string) {
	fmt.Printf("%s %s\n", Green("✓"), msg)
}

// Successf prints a formatted success message.
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message with a yellow warning symbol.
func Warning(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Yellow("⚠"), msg)
}

// Warningf prints a formatted warning message.
func Warningf(format string, args ...interface{}) {
	Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message with a red X.
func Error(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Red("✗"), msg)
}

// Errorf prints a formatted error message.
func Errorf(format string, args ...interface{}) {
	Error(fmt.Sprintf(format, args...))
}

// Info prints an info message with a blue arrow.
func Info(msg string) {
	fmt.Printf("%s %s\n", Blue("→"), msg)
}

// Infof prints a formatted info message.
func Infof(format string, args ...interface{}) {
	Info(fmt.Sprintf(format, args...))
}

// Header prints a bold section header.
func Header(title string) {
	fmt.Printf("%s\n", Bold(title))
}

// KeyValue prints an aligned key/value pair.
func KeyValue(key, value string) {
	fmt.Printf("  %-18s %s\n", key+":", value)
}

// NewLine prints an empty line.
func NewLine() {
	fmt.Println()
}
