package storage

import "time"

// WinModel is the GORM model for wins table
type WinModel struct {
	Content   string    `gorm:"not null"`
	CreatedAt time.Time
	ID        string    `gorm:"primaryKey"`
	Position  int       `gorm:"not null;default:0;index:idx_win_position"`
	Tags      []string  `gorm:"serializer:json;type:text;not null"`
	Timestamp time.Time `gorm:"not null;index:idx_win_timestamp"`
}

// TableName specifies the table name for GORM
func (WinModel) TableName() string { return "wins" }

// PREntryModel is the GORM model for cached pull requests
type PREntryModel struct {
	Additions    int       `gorm:"not null;default:0"`
	Body         string    `gorm:"not null;default:''"`
	ChangedFiles int       `gorm:"not null;default:0"`
	Deletions    int       `gorm:"not null;default:0"`
	ID           int64     `gorm:"primaryKey;autoIncrement:false"`
	Labels       []string  `gorm:"serializer:json;type:text;not null"`
	MergedAt     time.Time `gorm:"not null;index:idx_pr_merged_at"`
	Number       int       `gorm:"not null"`
	Position     int       `gorm:"not null;default:0;index:idx_pr_position"`
	Repo         string    `gorm:"not null;index:idx_pr_repo"`
	Title        string    `gorm:"not null;default:''"`
	URL          string    `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (PREntryModel) TableName() string { return "pr_entries" }

// syncStateID is the primary key of the single sync_state row
const syncStateID = 1

// SyncStateModel holds the sync watermark
type SyncStateModel struct {
	ID         int        `gorm:"primaryKey;autoIncrement:false"`
	LastPRSync *time.Time `gorm:"default:null"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (SyncStateModel) TableName() string { return "sync_state" }
