// file: internals/features/school/analytics/model/discipline_incident_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	SeverityMinor = "minor"
	SeverityMajor = "major"
)

// DisciplineIncidentModel maps the `discipline_incidents` table. This is an
// optional source: some schools never enable the discipline module, so the
// relation may not exist at all.
type DisciplineIncidentModel struct {
	// PK
	ID uuid.UUID `json:"discipline_incidents_id" gorm:"column:discipline_incidents_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Tenant
	SchoolID uuid.UUID `json:"discipline_incidents_school_id" gorm:"column:discipline_incidents_school_id;type:uuid;not null;index:idx_discipline_incidents_school_student,priority:1"`

	StudentID uuid.UUID `json:"discipline_incidents_student_id" gorm:"column:discipline_incidents_student_id;type:uuid;not null;index:idx_discipline_incidents_school_student,priority:2"`

	OccurredAt  time.Time `json:"discipline_incidents_occurred_at" gorm:"column:discipline_incidents_occurred_at;type:timestamptz;not null;index"`
	Severity    string    `json:"discipline_incidents_severity" gorm:"column:discipline_incidents_severity;type:varchar(10);not null;default:minor"`
	Description *string   `json:"discipline_incidents_description" gorm:"column:discipline_incidents_description;type:text"`

	CreatedAt time.Time `json:"discipline_incidents_created_at" gorm:"column:discipline_incidents_created_at;not null;autoCreateTime"`
}

func (DisciplineIncidentModel) TableName() string { return "discipline_incidents" }
