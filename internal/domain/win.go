package domain

import "time"

// WinEntry is a manually logged accomplishment
type WinEntry struct {
	Content   string
	ID        string
	Tags      []string
	Timestamp time.Time
}
