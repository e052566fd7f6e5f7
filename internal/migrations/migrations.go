// Package migrations creates and updates the schema.
package migrations

import (
	"fmt"

	"github.com/linskybing/civictrack/internal/domain/department"
	"github.com/linskybing/civictrack/internal/domain/report"
	"github.com/linskybing/civictrack/internal/domain/user"
	"github.com/linskybing/civictrack/internal/domain/vote"
	"gorm.io/gorm"
)

// Models lists every persisted type in dependency order.
func Models() []any {
	return []any{
		&user.User{},
		&department.Department{},
		&report.Report{},
		&report.StatusHistory{},
		&vote.Vote{},
	}
}

func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
