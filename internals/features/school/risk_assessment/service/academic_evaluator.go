// file: internals/features/school/risk_assessment/service/academic_evaluator.go
package service

import (
	"context"

	"github.com/google/uuid"

	amodel "schoolsis_backend/internals/features/school/analytics/model"
)

// EvaluateAcademic scores the most recent grade aggregates. Same failure
// isolation as the attendance evaluator.
func (s *RiskAssessmentService) EvaluateAcademic(ctx context.Context, schoolID, studentID uuid.UUID) EvaluatorResult {
	rows, err := s.Metrics.RecentGrades(ctx, schoolID, studentID, recentAggregateRows)
	if err != nil {
		s.Log.Printf("[ERROR] grade lookup failed student=%s: %v", studentID, err)
		return errorResult(err)
	}
	return scoreAcademic(rows)
}

func scoreAcademic(rows []amodel.GradeAnalyticsModel) EvaluatorResult {
	if len(rows) == 0 {
		return EvaluatorResult{
			Score:      0,
			Issues:     []string{},
			Confidence: ConfidenceLow,
			Details:    map[string]any{"reason": "no grade data"},
		}
	}

	recent := rows[0]
	score := 0.0
	issues := []string{}

	switch {
	case recent.AverageGrade < 60:
		score += 35
		issues = append(issues, TagFailingGrades)
	case recent.AverageGrade < 70:
		score += 25
		issues = append(issues, TagLowGrades)
	case recent.AverageGrade < 80:
		score += 15
	}

	switch recent.GradeTrend {
	case amodel.TrendDeclining:
		score += 25
		issues = append(issues, TagGradeDecline)
	case amodel.TrendCritical:
		score += 35
		issues = append(issues, TagCriticalGrades)
	}

	switch {
	case recent.MissingAssignments > 5:
		score += 20
		issues = append(issues, TagMissingAssignments)
	case recent.MissingAssignments > 2:
		score += 10
	}

	switch {
	case recent.LateAssignments > 10:
		score += 10
		issues = append(issues, TagLateAssignments)
	case recent.LateAssignments > 5:
		score += 5
	}

	if recent.GradeVolatility > 20 {
		score += 10
		issues = append(issues, TagUnstableGrades)
	}

	confidence := ConfidenceMedium
	if len(rows) >= 2 {
		confidence = ConfidenceHigh
	}

	return EvaluatorResult{
		Score:      clampScore(score),
		Issues:     issues,
		Confidence: confidence,
		Details: map[string]any{
			"analysis_date":       recent.AnalysisDate,
			"average_grade":       recent.AverageGrade,
			"grade_trend":         recent.GradeTrend,
			"grade_volatility":    recent.GradeVolatility,
			"missing_assignments": recent.MissingAssignments,
			"late_assignments":    recent.LateAssignments,
			"rows_considered":     len(rows),
		},
	}
}
