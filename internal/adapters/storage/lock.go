package storage

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/CarsonBain/wins/internal/logging"
)

// LockFile is the name of the lock file guarding a data directory
const LockFile = "wins.lock"

// lockTimeout bounds how long an invocation waits for another one to finish
var lockTimeout = 30 * time.Second

// ErrStoreLocked is returned when another invocation holds the store
var ErrStoreLocked = errors.New("store is in use by another wins process")

// FileLock is an exclusive advisory lock held for the life of one invocation
type FileLock struct {
	file *os.File
}

// AcquireLock takes an exclusive lock on path, creating the file if needed.
// It polls until lockTimeout elapses.
func AcquireLock(path string) (*FileLock, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	deadline := time.Now().Add(lockTimeout)
	for {
		err := tryLockFile(file)
		if err == nil {
			return &FileLock{file: file}, nil
		}
		if time.Now().After(deadline) {
			file.Close()
			return nil, fmt.Errorf("%w: %w", ErrStoreLocked, err)
		}
		logging.Logger.Debug("Store locked, waiting", "path", path)
		time.Sleep(100 * time.Millisecond)
	}
}

// Release unlocks and closes the lock file. It is safe to call more than once.
func (l *FileLock) Release() {
	if l == nil || l.file == nil {
		return
	}
	if err := unlockFile(l.file); err != nil {
		logging.Logger.Warn("Failed to unlock store", "error", err)
	}
	l.file.Close()
	l.file = nil
}
