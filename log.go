package affinetool

import (
	"github.com/akeil/affinetool/internal/logging"
)

// SetLogLevel sets the log level by name.
//
// Valid names are "debug", "info", "warning", "error".
// Anything else disables logging.
func SetLogLevel(level string) {
	logging.SetLevel(logging.ParseLevel(level))
}
