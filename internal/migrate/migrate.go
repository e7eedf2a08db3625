// Package migrate runs the versioned schema migrations. Applied versions
// are tracked in a schema_migrations table so migrations are idempotent.
package migrate

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Migration is a single reversible schema change.
type Migration struct {
	Version string
	Name    string
	Up      func(*gorm.DB) error
	Down    func(*gorm.DB) error
}

// Record marks an applied migration.
type Record struct {
	Version   string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName keeps the conventional migration-tracking table name.
func (Record) TableName() string {
	return "schema_migrations"
}

// Status describes one known migration and whether it has been applied.
type Status struct {
	Version string
	Name    string
	Applied bool
}

// Migrator applies and rolls back registered migrations in version order.
type Migrator struct {
	db         *gorm.DB
	migrations []*Migration
}

// New returns a Migrator carrying the application's schema migrations.
func New(db *gorm.DB) *Migrator {
	return &Migrator{db: db, migrations: all()}
}

func (m *Migrator) ensureVersionTable() error {
	return m.db.AutoMigrate(&Record{})
}

func (m *Migrator) appliedVersions() (map[string]bool, error) {
	if err := m.ensureVersionTable(); err != nil {
		return nil, fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	var records []Record
	if err := m.db.Find(&records).Error; err != nil {
		return nil, err
	}

	versions := make(map[string]bool, len(records))
	for _, record := range records {
		versions[record.Version] = true
	}
	return versions, nil
}

// Up applies every pending migration, oldest first.
func (m *Migrator) Up() error {
	applied, err := m.appliedVersions()
	if err != nil {
		return err
	}

	for _, mig := range m.migrations {
		if applied[mig.Version] {
			continue
		}
		if err := mig.Up(m.db); err != nil {
			return fmt.Errorf("migration %s (%s) failed: %w", mig.Version, mig.Name, err)
		}
		record := Record{Version: mig.Version, Name: mig.Name, AppliedAt: time.Now()}
		if err := m.db.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record migration %s: %w", mig.Version, err)
		}
	}
	return nil
}

// Down rolls back the most recently applied migration. It is a no-op when
// nothing has been applied.
func (m *Migrator) Down() error {
	if err := m.ensureVersionTable(); err != nil {
		return err
	}

	var last Record
	err := m.db.Order("version DESC").First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, mig := range m.migrations {
		if mig.Version != last.Version {
			continue
		}
		if err := mig.Down(m.db); err != nil {
			return fmt.Errorf("rollback of %s (%s) failed: %w", mig.Version, mig.Name, err)
		}
		return m.db.Delete(&last).Error
	}
	return fmt.Errorf("applied migration %s is not known to this binary", last.Version)
}

// StatusList reports every known migration in order with its applied state.
func (m *Migrator) StatusList() ([]Status, error) {
	applied, err := m.appliedVersions()
	if err != nil {
		return nil, err
	}

	statuses := make([]Status, 0, len(m.migrations))
	for _, mig := range m.migrations {
		statuses = append(statuses, Status{
			Version: mig.Version,
			Name:    mig.Name,
			Applied: applied[mig.Version],
		})
	}
	return statuses, nil
}
