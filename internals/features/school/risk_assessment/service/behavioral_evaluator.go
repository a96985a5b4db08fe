// file: internals/features/school/risk_assessment/service/behavioral_evaluator.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	metricsvc "schoolsis_backend/internals/features/school/analytics/service"
)

// EvaluateBehavioral scores discipline-incident counts. The discipline
// source is optional: when the relation itself is absent the evaluator logs
// a warning and returns a deterministic zero result with zeroed counts,
// instead of failing the pipeline.
func (s *RiskAssessmentService) EvaluateBehavioral(ctx context.Context, schoolID, studentID uuid.UUID) EvaluatorResult {
	counts, err := s.Metrics.DisciplineCounts(ctx, schoolID, studentID, disciplineRecentDays)
	if err != nil {
		if errors.Is(err, metricsvc.ErrSourceUnavailable) {
			s.Log.Printf("[WARN] discipline source unavailable school=%s, behavioral score defaults to 0", schoolID)
			return EvaluatorResult{
				Score:      0,
				Issues:     []string{},
				Confidence: ConfidenceLow,
				Details: map[string]any{
					"total_incidents":  0,
					"major_incidents":  0,
					"recent_incidents": 0,
					"source":           "unavailable",
				},
			}
		}
		s.Log.Printf("[ERROR] discipline lookup failed student=%s: %v", studentID, err)
		return errorResult(err)
	}
	return scoreBehavioral(counts)
}

func scoreBehavioral(counts metricsvc.DisciplineCounts) EvaluatorResult {
	score := 0.0
	issues := []string{}

	switch {
	case counts.Recent > 3:
		score += 40
		issues = append(issues, TagFrequentDiscipline)
	case counts.Recent > 1:
		score += 20
		issues = append(issues, TagDiscipline)
	}

	switch {
	case counts.Major > 1:
		score += 30
		issues = append(issues, TagMajorDiscipline)
	case counts.Major > 0:
		score += 15
	}

	switch {
	case counts.Total > 10:
		score += 30
		issues = append(issues, TagChronicDiscipline)
	case counts.Total > 5:
		score += 15
	}

	confidence := ConfidenceMedium
	if counts.Total > 0 {
		confidence = ConfidenceHigh
	}

	return EvaluatorResult{
		Score:      clampScore(score),
		Issues:     issues,
		Confidence: confidence,
		Details: map[string]any{
			"total_incidents":  counts.Total,
			"major_incidents":  counts.Major,
			"recent_incidents": counts.Recent,
		},
	}
}
