// ABOUTME: Debug log for the TUI that writes slog records to a file in the config dir
// ABOUTME: Keeps log output away from the terminal while the TUI owns it

package debuglog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/markalston/mocha-admin/internal/logger"
)

// FileName is the log file created inside the config directory.
const FileName = "debug.log"

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init opens dir/debug.log and returns a logger writing to it. With an empty
// dir or on any error the returned logger discards everything.
func Init(dir string, opts logger.Options) (*slog.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	if dir == "" {
		return logger.Discard(), nil
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return logger.Discard(), err
	}

	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return logger.Discard(), err
	}
	logFile = f
	return logger.New(f, opts), nil
}

// Writer returns the open log file, or io.Discard.
func Writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return io.Discard
	}
	return logFile
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
