//go:build !unix && !windows

package storage

import "os"

func tryLockFile(file *os.File) error { return nil }

func unlockFile(file *os.File) error { return nil }
