// file: internals/features/school/risk_assessment/service/social_evaluator.go
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	metricsvc "schoolsis_backend/internals/features/school/analytics/service"
)

// EvaluateSocial scores engagement and contact-info signals from the
// student profile. Confidence is always medium: the profile is complete by
// construction but only weakly indicative of social risk.
func (s *RiskAssessmentService) EvaluateSocial(ctx context.Context, schoolID, studentID uuid.UUID) EvaluatorResult {
	profile, err := s.Metrics.StudentProfile(ctx, schoolID, studentID)
	if err != nil {
		s.Log.Printf("[ERROR] profile lookup failed student=%s: %v", studentID, err)
		return errorResult(err)
	}
	return scoreSocial(profile)
}

func scoreSocial(p metricsvc.StudentProfile) EvaluatorResult {
	score := 0.0
	issues := []string{}

	if p.EnrollmentCount < 2 {
		score += 25
		issues = append(issues, TagLimitedEngagement)
	}

	if strPtrEmpty(p.EmergencyContactName) || strPtrEmpty(p.EmergencyContactPhone) {
		score += 20
		issues = append(issues, TagMissingEmergencyInfo)
	}

	if p.MedicalConditions != nil && strings.Contains(strings.ToLower(*p.MedicalConditions), "social") {
		score += 15
		issues = append(issues, TagMedicalSocialConcerns)
	}

	if strPtrEmpty(p.PrimaryEmail) {
		score += 10
		issues = append(issues, TagNoContactInfo)
	}

	return EvaluatorResult{
		Score:      clampScore(score),
		Issues:     issues,
		Confidence: ConfidenceMedium,
		Details: map[string]any{
			"enrollment_count":      p.EnrollmentCount,
			"has_emergency_contact": !strPtrEmpty(p.EmergencyContactName) && !strPtrEmpty(p.EmergencyContactPhone),
			"has_primary_email":     !strPtrEmpty(p.PrimaryEmail),
		},
	}
}

func strPtrEmpty(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
