// Package model contains the gorm table mappings. Types are exported so cmd/gen can read them.
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// assignID fills a missing primary key. UUIDs are issued by the application so the
// same models work on PostgreSQL and SQLite.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// All returns every model, in dependency order, for AutoMigrate and the gen tool.
func All() []any {
	return []any{
		&SequenceModel{},
		&IdentityModel{},
		&DoctorModel{},
		&DoctorAssignmentModel{},
		&ProductModel{},
		&VisitReportModel{},
		&OrderModel{},
		&OrderItemModel{},
		&OrderStatusHistoryModel{},
		&MRTargetModel{},
		&MRPerformanceLogModel{},
		&ProductActivityLogModel{},
		&MRRequestModel{},
	}
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
