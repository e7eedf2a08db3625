package migrate

import (
	"gorm.io/gorm"

	"github.com/javiator/tenant-management-applications/internal/models"
)

// all returns the application's schema migrations in version order.
func all() []*Migration {
	return []*Migration{
		{
			Version: "20240301000001",
			Name:    "create_properties",
			Up: func(db *gorm.DB) error {
				return db.Migrator().CreateTable(&models.Property{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&models.Property{})
			},
		},
		{
			Version: "20240301000002",
			Name:    "create_tenants",
			Up: func(db *gorm.DB) error {
				return db.Migrator().CreateTable(&models.Tenant{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&models.Tenant{})
			},
		},
		{
			Version: "20240301000003",
			Name:    "create_transactions",
			Up: func(db *gorm.DB) error {
				return db.Migrator().CreateTable(&models.Transaction{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&models.Transaction{})
			},
		},
	}
}
