package database

import (
	"fmt"

	"github.com/orgconsole/b2b-admin-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type index struct {
	model  interface{}
	name   string
	column string
}

var indexes = []index{
	{&models.User{}, "idx_users_organization_id", "organization_id"},
	{&models.Organization{}, "idx_organizations_status", "status"},
}

// Migrate creates or updates the schema and its indexes.
func Migrate(db *gorm.DB, log logrus.FieldLogger) error {
	log.Info("Running database migrations...")
	if err := db.AutoMigrate(
		&models.Organization{},
		&models.User{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := AddIndexes(db, log); err != nil {
		return err
	}

	log.Info("Database migrations completed")
	return nil
}

// AddIndexes creates the lookup indexes that are not already present.
func AddIndexes(db *gorm.DB, log logrus.FieldLogger) error {
	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			log.WithField("index", idx.name).Debug("Index already exists, skipping")
			continue
		}

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(idx.model); err != nil {
			return fmt.Errorf("failed to parse model for index %s: %w", idx.name, err)
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, stmt.Schema.Table, idx.column)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.WithFields(logrus.Fields{
			"index": idx.name,
			"table": stmt.Schema.Table,
		}).Info("Created index")
	}

	return nil
}
