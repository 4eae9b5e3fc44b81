package domain

import "time"

// PREntry is a merged pull request cached from the remote source.
// ID is assigned by the remote and is the entry's identity; Number is only
// unique within Repo.
type PREntry struct {
	Additions    int
	Body         string
	ChangedFiles int
	Deletions    int
	ID           int64
	Labels       []string
	MergedAt     time.Time
	Number       int
	Repo         string // owner/name
	Title        string
	URL          string
}
