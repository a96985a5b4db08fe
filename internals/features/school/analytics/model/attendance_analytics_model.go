// file: internals/features/school/analytics/model/attendance_analytics_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Trend labels written by the upstream aggregation jobs.
const (
	TrendImproving = "improving"
	TrendStable    = "stable"
	TrendDeclining = "declining"
	TrendCritical  = "critical"
)

// AttendanceAnalyticsModel maps the `attendance_analytics` table: one
// precomputed per-period attendance summary per student. Rows are written
// by the upstream analytics jobs; this service only reads them.
type AttendanceAnalyticsModel struct {
	// PK
	ID uuid.UUID `json:"attendance_analytics_id" gorm:"column:attendance_analytics_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Tenant
	SchoolID uuid.UUID `json:"attendance_analytics_school_id" gorm:"column:attendance_analytics_school_id;type:uuid;not null;index:idx_attendance_analytics_school_student,priority:1"`

	StudentID uuid.UUID `json:"attendance_analytics_student_id" gorm:"column:attendance_analytics_student_id;type:uuid;not null;index:idx_attendance_analytics_school_student,priority:2"`

	AnalysisDate time.Time `json:"attendance_analytics_analysis_date" gorm:"column:attendance_analytics_analysis_date;type:date;not null;index:idx_attendance_analytics_date,sort:desc"`
	Period       string    `json:"attendance_analytics_period" gorm:"column:attendance_analytics_period;type:varchar(20);not null;default:monthly"`

	AttendanceRate  float64 `json:"attendance_analytics_attendance_rate" gorm:"column:attendance_analytics_attendance_rate;type:numeric(5,2);not null"`
	PunctualityRate float64 `json:"attendance_analytics_punctuality_rate" gorm:"column:attendance_analytics_punctuality_rate;type:numeric(5,2);not null"`

	AttendanceTrend    string `json:"attendance_analytics_attendance_trend" gorm:"column:attendance_analytics_attendance_trend;type:varchar(20);not null;default:stable"`
	ChronicAbsenteeism bool   `json:"attendance_analytics_chronic_absenteeism" gorm:"column:attendance_analytics_chronic_absenteeism;not null;default:false"`
	TardinessConcern   bool   `json:"attendance_analytics_tardiness_concern" gorm:"column:attendance_analytics_tardiness_concern;not null;default:false"`

	CreatedAt time.Time `json:"attendance_analytics_created_at" gorm:"column:attendance_analytics_created_at;not null;autoCreateTime"`
}

func (AttendanceAnalyticsModel) TableName() string { return "attendance_analytics" }
