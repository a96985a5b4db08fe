// file: internals/features/school/risk_assessment/service/risk_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	amodel "schoolsis_backend/internals/features/school/analytics/model"
	metricsvc "schoolsis_backend/internals/features/school/analytics/service"
	model "schoolsis_backend/internals/features/school/risk_assessment/model"
)

const (
	// AlgorithmVersion is stamped on every assessment row.
	AlgorithmVersion = "1.0.0"

	defaultPeriod = "monthly"

	// recentAggregateRows is how many aggregate rows the attendance and
	// academic evaluators look back over.
	recentAggregateRows = 3

	// disciplineRecentDays is the "recent incidents" window.
	disciplineRecentDays = 30
)

// MetricSource is the read side of the metric store the evaluators consume.
// *metricsvc.MetricStore is the production implementation.
type MetricSource interface {
	RecentAttendance(ctx context.Context, schoolID, studentID uuid.UUID, n int) ([]amodel.AttendanceAnalyticsModel, error)
	RecentGrades(ctx context.Context, schoolID, studentID uuid.UUID, n int) ([]amodel.GradeAnalyticsModel, error)
	DisciplineCounts(ctx context.Context, schoolID, studentID uuid.UUID, recentDays int) (metricsvc.DisciplineCounts, error)
	StudentProfile(ctx context.Context, schoolID, studentID uuid.UUID) (metricsvc.StudentProfile, error)
	ActiveStudentIDs(ctx context.Context, schoolID uuid.UUID) ([]uuid.UUID, error)
}

// AssessmentWriter is the slice of the repository the pipeline needs.
type AssessmentWriter interface {
	Create(ctx context.Context, row *model.StudentRiskAssessmentModel) error
}

// RiskAssessmentService runs the per-student scoring pipeline.
type RiskAssessmentService struct {
	Metrics MetricSource
	Repo    AssessmentWriter
	Log     *log.Logger
}

func NewRiskAssessmentService(db *gorm.DB, logger *log.Logger) *RiskAssessmentService {
	if logger == nil {
		logger = log.Default()
	}
	return &RiskAssessmentService{
		Metrics: metricsvc.NewMetricStore(db),
		Repo:    NewAssessmentRepository(db),
		Log:     logger,
	}
}

// AssessmentOutcome bundles the persisted row with the transient
// per-evaluator diagnostics for the caller's response.
type AssessmentOutcome struct {
	Assessment  *model.StudentRiskAssessmentModel
	Plan        []InterventionEntry
	Evaluations map[string]EvaluatorResult
}

// AssessStudent runs the full pipeline for one student: four evaluators,
// aggregation, plan generation, persistence. Evaluator failures degrade to
// zero scores and never surface; only a persistence failure is returned.
func (s *RiskAssessmentService) AssessStudent(ctx context.Context, schoolID, studentID uuid.UUID) (*AssessmentOutcome, error) {
	attendance := s.EvaluateAttendance(ctx, schoolID, studentID)
	academic := s.EvaluateAcademic(ctx, schoolID, studentID)
	behavioral := s.EvaluateBehavioral(ctx, schoolID, studentID)
	social := s.EvaluateSocial(ctx, schoolID, studentID)

	overall := OverallScore(attendance.Score, academic.Score, behavioral.Score, social.Score)
	level := RiskLevelFor(overall)
	required := InterventionRequired(level, attendance, academic)

	row := &model.StudentRiskAssessmentModel{
		SchoolID:         schoolID,
		StudentID:        studentID,
		AssessmentDate:   time.Now(),
		AssessmentPeriod: defaultPeriod,
		AlgorithmVersion: AlgorithmVersion,

		AttendanceScore: attendance.Score,
		AcademicScore:   academic.Score,
		BehavioralScore: behavioral.Score,
		SocialScore:     social.Score,
		OverallScore:    overall,
		RiskLevel:       level,

		AttendanceIssues:  hasIssue(attendance, TagAttendance),
		GradeDecline:      hasIssue(academic, TagGradeDecline),
		FrequentTardiness: hasIssue(attendance, TagTardiness),
		DisciplineIssues:  hasIssue(behavioral, TagDiscipline) || hasIssue(behavioral, TagFrequentDiscipline),
		SocialIsolation:   hasIssue(social, TagLimitedEngagement),
		FamilyIssues:      hasIssue(social, TagMissingEmergencyInfo),

		InterventionRequired: required,
	}

	var plan []InterventionEntry
	if required {
		plan = BuildInterventionPlan(attendance, academic, behavioral, social)
		raw, err := json.Marshal(plan)
		if err != nil {
			return nil, fmt.Errorf("marshal intervention plan: %w", err)
		}
		row.InterventionPlan = raw
	}

	if err := s.Repo.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("persist risk assessment: %w", err)
	}

	return &AssessmentOutcome{
		Assessment: row,
		Plan:       plan,
		Evaluations: map[string]EvaluatorResult{
			"attendance": attendance,
			"academic":   academic,
			"behavioral": behavioral,
			"social":     social,
		},
	}, nil
}
