// file: internals/features/school/risk_assessment/model/risk_assessment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Discrete risk buckets derived from the overall score.
const (
	RiskLevelLow      = "low"
	RiskLevelMedium   = "medium"
	RiskLevelHigh     = "high"
	RiskLevelCritical = "critical"
)

// StudentRiskAssessmentModel maps the `student_risk_assessments` table: one
// row per student per assessment event. Rows are append-only; only the
// intervention tracking fields are ever updated in place.
type StudentRiskAssessmentModel struct {
	// PK
	ID uuid.UUID `json:"student_risk_assessments_id" gorm:"column:student_risk_assessments_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Tenant
	SchoolID uuid.UUID `json:"student_risk_assessments_school_id" gorm:"column:student_risk_assessments_school_id;type:uuid;not null;index:idx_risk_assessments_school_student,priority:1;index:idx_risk_assessments_school_level,priority:1"`

	StudentID uuid.UUID `json:"student_risk_assessments_student_id" gorm:"column:student_risk_assessments_student_id;type:uuid;not null;index:idx_risk_assessments_school_student,priority:2"`

	AssessmentDate   time.Time `json:"student_risk_assessments_assessment_date" gorm:"column:student_risk_assessments_assessment_date;type:timestamptz;not null"`
	AssessmentPeriod string    `json:"student_risk_assessments_assessment_period" gorm:"column:student_risk_assessments_assessment_period;type:varchar(20);not null;default:monthly"`
	AlgorithmVersion string    `json:"student_risk_assessments_algorithm_version" gorm:"column:student_risk_assessments_algorithm_version;type:varchar(20);not null"`

	// Sub-scores, each clamped to [0,100]
	AttendanceScore float64 `json:"student_risk_assessments_attendance_score" gorm:"column:student_risk_assessments_attendance_score;type:numeric(5,2);not null"`
	AcademicScore   float64 `json:"student_risk_assessments_academic_score" gorm:"column:student_risk_assessments_academic_score;type:numeric(5,2);not null"`
	BehavioralScore float64 `json:"student_risk_assessments_behavioral_score" gorm:"column:student_risk_assessments_behavioral_score;type:numeric(5,2);not null"`
	SocialScore     float64 `json:"student_risk_assessments_social_score" gorm:"column:student_risk_assessments_social_score;type:numeric(5,2);not null"`

	// Weighted sum of the four sub-scores, never set directly
	OverallScore float64 `json:"student_risk_assessments_overall_score" gorm:"column:student_risk_assessments_overall_score;type:numeric(5,2);not null"`

	RiskLevel string `json:"student_risk_assessments_risk_level" gorm:"column:student_risk_assessments_risk_level;type:varchar(10);not null;index:idx_risk_assessments_school_level,priority:2"`

	// Issue flags
	AttendanceIssues  bool `json:"student_risk_assessments_attendance_issues" gorm:"column:student_risk_assessments_attendance_issues;not null;default:false"`
	GradeDecline      bool `json:"student_risk_assessments_grade_decline" gorm:"column:student_risk_assessments_grade_decline;not null;default:false"`
	FrequentTardiness bool `json:"student_risk_assessments_frequent_tardiness" gorm:"column:student_risk_assessments_frequent_tardiness;not null;default:false"`
	DisciplineIssues  bool `json:"student_risk_assessments_discipline_issues" gorm:"column:student_risk_assessments_discipline_issues;not null;default:false"`
	SocialIsolation   bool `json:"student_risk_assessments_social_isolation" gorm:"column:student_risk_assessments_social_isolation;not null;default:false"`
	FamilyIssues      bool `json:"student_risk_assessments_family_issues" gorm:"column:student_risk_assessments_family_issues;not null;default:false"`

	InterventionRequired bool `json:"student_risk_assessments_intervention_required" gorm:"column:student_risk_assessments_intervention_required;not null;default:false"`

	// Non-null only when intervention_required is true
	InterventionPlan datatypes.JSON `json:"student_risk_assessments_intervention_plan" gorm:"column:student_risk_assessments_intervention_plan;type:jsonb"`

	// Intervention tracking, mutable after creation via the update path
	LastInterventionDate    *time.Time `json:"student_risk_assessments_last_intervention_date" gorm:"column:student_risk_assessments_last_intervention_date;type:timestamptz"`
	InterventionSuccessRate *float64   `json:"student_risk_assessments_intervention_success_rate" gorm:"column:student_risk_assessments_intervention_success_rate;type:numeric(5,2)"`

	// Timestamps
	CreatedAt time.Time `json:"student_risk_assessments_created_at" gorm:"column:student_risk_assessments_created_at;not null;autoCreateTime;index:idx_risk_assessments_created_at,sort:desc"`
	UpdatedAt time.Time `json:"student_risk_assessments_updated_at" gorm:"column:student_risk_assessments_updated_at;not null;autoUpdateTime"`
}

func (StudentRiskAssessmentModel) TableName() string { return "student_risk_assessments" }
