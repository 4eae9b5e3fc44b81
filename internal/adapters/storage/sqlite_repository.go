package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/CarsonBain/wins/internal/domain"
	"github.com/CarsonBain/wins/internal/logging"
	"github.com/CarsonBain/wins/internal/ports"
)

// DatabaseFile is the name of the database inside the data directory
const DatabaseFile = "wins.db"

// SQLiteRepository implements ports.StoreRepository using GORM
type SQLiteRepository struct {
	db   *gorm.DB
	lock *FileLock
}

// Verify interface compliance at compile time
var _ ports.StoreRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the wins logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("WINS_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens the database at dbPath, creating it and its
// directory when missing. The repository holds an exclusive lock on a
// sibling wins.lock file until Close.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	lock, err := AcquireLock(filepath.Join(filepath.Dir(dbPath), LockFile))
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		lock.Release()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&WinModel{}, &PREntryModel{}, &SyncStateModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			lock.Release()
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		lock.Release()
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Opened store", "path", dbPath)
	return &SQLiteRepository{db: db, lock: lock}, nil
}

// NewSQLiteRepositoryForDir opens the store database inside a data directory
func NewSQLiteRepositoryForDir(dataDir string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(dataDir, DatabaseFile))
}

// Close closes the database connection and releases the store lock
func (r *SQLiteRepository) Close() error {
	defer r.lock.Release()

	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ListWins implements WinReader.ListWins
func (r *SQLiteRepository) ListWins(ctx context.Context, dr domain.DateRange) ([]domain.WinEntry, error) {
	var models []WinModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("position ASC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load wins: %w", err)
	}

	// Timestamps are stored as text, so range filtering happens after load
	wins := make([]domain.WinEntry, 0, len(models))
	for _, m := range models {
		win := winModelToDomain(m)
		if dr.Contains(win.Timestamp) {
			wins = append(wins, win)
		}
	}
	return wins, nil
}

// ListPRs implements PRReader.ListPRs
func (r *SQLiteRepository) ListPRs(ctx context.Context, dr domain.DateRange) ([]domain.PREntry, error) {
	var models []PREntryModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("position ASC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load pull requests: %w", err)
	}

	prs := make([]domain.PREntry, 0, len(models))
	for _, m := range models {
		pr := prModelToDomain(m)
		if dr.Contains(pr.MergedAt) {
			prs = append(prs, pr)
		}
	}
	return prs, nil
}

// AddWin implements WinWriter.AddWin
func (r *SQLiteRepository) AddWin(ctx context.Context, win domain.WinEntry) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var maxPosition int
			row := tx.Model(&WinModel{}).Select("COALESCE(MAX(position), -1)").Row()
			if err := row.Scan(&maxPosition); err != nil {
				return fmt.Errorf("failed to read win positions: %w", err)
			}

			model := domainToWinModel(win, maxPosition+1)
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to save win %s: %w", win.ID, err)
			}
			return nil
		})
	}, 3)
}

// LoadStore implements StoreLoader.LoadStore
func (r *SQLiteRepository) LoadStore(ctx context.Context) (*domain.Store, error) {
	var wins []WinModel
	var prs []PREntryModel
	var state SyncStateModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Order("position ASC").Find(&wins).Error; err != nil {
				return err
			}
			if err := tx.Order("position ASC").Find(&prs).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", syncStateID).Limit(1).Find(&state).Error; err != nil {
				return err
			}
			return nil
		})
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	store := domain.NewStore()
	for _, m := range wins {
		store.Wins = append(store.Wins, winModelToDomain(m))
	}
	for _, m := range prs {
		store.PRs = append(store.PRs, prModelToDomain(m))
	}
	store.LastPRSync = utcPtr(state.LastPRSync)

	logging.Logger.Debug("Loaded store", "wins", len(store.Wins), "prs", len(store.PRs), "lastPRSync", store.LastPRSync)
	return store, nil
}

// SaveStore implements StoreLoader.SaveStore. The snapshot replaces the
// persisted store wholesale; a failure leaves the previous store intact.
func (r *SQLiteRepository) SaveStore(ctx context.Context, store *domain.Store) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&WinModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear wins: %w", err)
			}
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&PREntryModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear pull requests: %w", err)
			}

			if len(store.Wins) > 0 {
				wins := make([]WinModel, len(store.Wins))
				for i, w := range store.Wins {
					wins[i] = domainToWinModel(w, i)
				}
				if err := tx.CreateInBatches(wins, 100).Error; err != nil {
					return fmt.Errorf("failed to save wins: %w", err)
				}
			}

			if len(store.PRs) > 0 {
				prs := make([]PREntryModel, len(store.PRs))
				for i, p := range store.PRs {
					prs[i] = domainToPRModel(p, i)
				}
				if err := tx.CreateInBatches(prs, 100).Error; err != nil {
					return fmt.Errorf("failed to save pull requests: %w", err)
				}
			}

			state := SyncStateModel{ID: syncStateID, LastPRSync: utcPtr(store.LastPRSync)}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&state).Error; err != nil {
				return fmt.Errorf("failed to save sync state: %w", err)
			}

			logging.Logger.Debug("Saved store", "wins", len(store.Wins), "prs", len(store.PRs))
			return nil
		})
	}, 3)
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
