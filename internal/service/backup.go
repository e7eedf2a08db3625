package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/javiator/tenant-management-applications/internal/store"
)

// Backups copies the SQLite database file into the backup directory. The
// copy is not transactionally consistent with concurrent writers, which is
// acceptable at this system's write volume.
type Backups struct {
	store *store.Store
	dir   string
	now   func() time.Time
}

// NewBackups returns the backup service writing into dir.
func NewBackups(s *store.Store, dir string) *Backups {
	return &Backups{store: s, dir: dir, now: time.Now}
}

// Run copies the database file and returns the copy's path and filename.
// Non-SQLite backends are rejected; a missing database file is reported as
// not found.
func (b *Backups) Run() (path, filename string, err error) {
	if b.store.Dialect() != store.DialectSQLite {
		return "", "", Validationf("backup is only supported for sqlite databases")
	}
	src := b.store.SQLitePath()
	if src == "" {
		return "", "", Validationf("backup is not available for in-memory databases")
	}
	if _, err := os.Stat(src); err != nil {
		return "", "", fmt.Errorf("database file %s: %w", src, ErrNotFound)
	}

	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	filename = fmt.Sprintf("app_backup_%s.db", b.now().Format("20060102_150405"))
	path = filepath.Join(b.dir, filename)
	if err := copyFile(src, path); err != nil {
		return "", "", fmt.Errorf("backup failed: %w", err)
	}
	return path, filename, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
