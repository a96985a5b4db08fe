// file: internals/features/school/risk_assessment/dto/risk_assessment_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	model "schoolsis_backend/internals/features/school/risk_assessment/model"
	service "schoolsis_backend/internals/features/school/risk_assessment/service"
)

// RiskAssessmentResponse is the wire shape of one persisted assessment.
type RiskAssessmentResponse struct {
	ID               uuid.UUID `json:"id"`
	SchoolID         uuid.UUID `json:"school_id"`
	StudentID        uuid.UUID `json:"student_id"`
	AssessmentDate   time.Time `json:"assessment_date"`
	AssessmentPeriod string    `json:"assessment_period"`
	AlgorithmVersion string    `json:"algorithm_version"`

	AttendanceScore float64 `json:"attendance_score"`
	AcademicScore   float64 `json:"academic_score"`
	BehavioralScore float64 `json:"behavioral_score"`
	SocialScore     float64 `json:"social_score"`
	OverallScore    float64 `json:"overall_score"`
	RiskLevel       string  `json:"risk_level"`

	AttendanceIssues  bool `json:"attendance_issues"`
	GradeDecline      bool `json:"grade_decline"`
	FrequentTardiness bool `json:"frequent_tardiness"`
	DisciplineIssues  bool `json:"discipline_issues"`
	SocialIsolation   bool `json:"social_isolation"`
	FamilyIssues      bool `json:"family_issues"`

	InterventionRequired bool                        `json:"intervention_required"`
	InterventionPlan     []service.InterventionEntry `json:"intervention_plan,omitempty"`

	LastInterventionDate    *time.Time `json:"last_intervention_date,omitempty"`
	InterventionSuccessRate *float64   `json:"intervention_success_rate,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToRiskAssessmentResponse(m *model.StudentRiskAssessmentModel) RiskAssessmentResponse {
	resp := RiskAssessmentResponse{
		ID:               m.ID,
		SchoolID:         m.SchoolID,
		StudentID:        m.StudentID,
		AssessmentDate:   m.AssessmentDate,
		AssessmentPeriod: m.AssessmentPeriod,
		AlgorithmVersion: m.AlgorithmVersion,

		AttendanceScore: m.AttendanceScore,
		AcademicScore:   m.AcademicScore,
		BehavioralScore: m.BehavioralScore,
		SocialScore:     m.SocialScore,
		OverallScore:    m.OverallScore,
		RiskLevel:       m.RiskLevel,

		AttendanceIssues:  m.AttendanceIssues,
		GradeDecline:      m.GradeDecline,
		FrequentTardiness: m.FrequentTardiness,
		DisciplineIssues:  m.DisciplineIssues,
		SocialIsolation:   m.SocialIsolation,
		FamilyIssues:      m.FamilyIssues,

		InterventionRequired:    m.InterventionRequired,
		LastInterventionDate:    m.LastInterventionDate,
		InterventionSuccessRate: m.InterventionSuccessRate,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if len(m.InterventionPlan) > 0 {
		// stored as JSONB; ignore a malformed plan rather than fail the read
		_ = json.Unmarshal(m.InterventionPlan, &resp.InterventionPlan)
	}
	return resp
}

// AssessStudentResponse adds the transient evaluator diagnostics to the
// persisted assessment.
type AssessStudentResponse struct {
	Assessment  RiskAssessmentResponse             `json:"assessment"`
	Evaluations map[string]service.EvaluatorResult `json:"evaluations"`
}

// UpdateInterventionRequest carries the mutable tracking fields.
type UpdateInterventionRequest struct {
	LastInterventionDate    *time.Time `json:"last_intervention_date"`
	InterventionSuccessRate *float64   `json:"intervention_success_rate" validate:"omitempty,gte=0,lte=100"`
}

// ListByRiskLevelResponse is the paginated cohort listing.
type ListByRiskLevelResponse struct {
	Data  []RiskAssessmentResponse `json:"data"`
	Total int64                    `json:"total"`
}
