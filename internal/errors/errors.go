package errors

import (
	"fmt"
	"os"

	"github.com/julianstephens/calgrid/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf wraps its arguments into an error (%w is honored) and exits through Fatal.
func Fatalf(format string, args ...any) {
	Fatal(fmt.Errorf(format, args...))
}
