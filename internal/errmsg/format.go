// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

// Op represents an operation that can fail.
type Op string

const (
	// Folder scan
	OpScan       Op = "scan folder"
	OpFolderOpen Op = "open folder"

	// Playback
	OpPlay Op = "play"
	OpSeek Op = "seek"

	// Desktop integration
	OpMPRIS  Op = "start media key service"
	OpNotify Op = "show notification"

	// Startup
	OpConfigLoad Op = "load config"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
// A cancelled operation is not an error worth showing and yields "".
func Format(op Op, err error) string {
	if err == nil || errors.Is(err, context.Canceled) {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// FormatFile is FormatWith using only the base name of path, which keeps
// status line messages short.
func FormatFile(op Op, path string, err error) string {
	if path == "" {
		return Format(op, err)
	}
	return FormatWith(op, filepath.Base(path), err)
}
