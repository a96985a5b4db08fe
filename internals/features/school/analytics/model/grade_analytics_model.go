// file: internals/features/school/analytics/model/grade_analytics_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// GradeAnalyticsModel maps the `grade_analytics` table: per-period grade
// summaries per student, written upstream.
type GradeAnalyticsModel struct {
	// PK
	ID uuid.UUID `json:"grade_analytics_id" gorm:"column:grade_analytics_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Tenant
	SchoolID uuid.UUID `json:"grade_analytics_school_id" gorm:"column:grade_analytics_school_id;type:uuid;not null;index:idx_grade_analytics_school_student,priority:1"`

	StudentID uuid.UUID `json:"grade_analytics_student_id" gorm:"column:grade_analytics_student_id;type:uuid;not null;index:idx_grade_analytics_school_student,priority:2"`

	AnalysisDate time.Time `json:"grade_analytics_analysis_date" gorm:"column:grade_analytics_analysis_date;type:date;not null;index:idx_grade_analytics_date,sort:desc"`
	Period       string    `json:"grade_analytics_period" gorm:"column:grade_analytics_period;type:varchar(20);not null;default:monthly"`

	AverageGrade    float64 `json:"grade_analytics_average_grade" gorm:"column:grade_analytics_average_grade;type:numeric(5,2);not null"`
	GradeTrend      string  `json:"grade_analytics_grade_trend" gorm:"column:grade_analytics_grade_trend;type:varchar(20);not null;default:stable"`
	GradeVolatility float64 `json:"grade_analytics_grade_volatility" gorm:"column:grade_analytics_grade_volatility;type:numeric(5,2);not null;default:0"`

	MissingAssignments int `json:"grade_analytics_missing_assignments" gorm:"column:grade_analytics_missing_assignments;not null;default:0"`
	LateAssignments    int `json:"grade_analytics_late_assignments" gorm:"column:grade_analytics_late_assignments;not null;default:0"`

	CreatedAt time.Time `json:"grade_analytics_created_at" gorm:"column:grade_analytics_created_at;not null;autoCreateTime"`
}

func (GradeAnalyticsModel) TableName() string { return "grade_analytics" }
