// file: internals/features/school/risk_assessment/service/aggregator.go
package service

import (
	model "schoolsis_backend/internals/features/school/risk_assessment/model"
)

// Fixed sub-score weights. They must sum to 1.0.
const (
	WeightAttendance = 0.35
	WeightAcademic   = 0.40
	WeightBehavioral = 0.15
	WeightSocial     = 0.10
)

// Risk level thresholds on the overall score, checked high to low.
const (
	ThresholdCritical = 80.0
	ThresholdHigh     = 60.0
	ThresholdMedium   = 40.0
)

// OverallScore is the weighted sum of the four sub-scores, rounded to the
// 2 decimals that get persisted.
func OverallScore(attendance, academic, behavioral, social float64) float64 {
	return round2(WeightAttendance*attendance +
		WeightAcademic*academic +
		WeightBehavioral*behavioral +
		WeightSocial*social)
}

// RiskLevelFor maps an overall score to its discrete bucket, first match
// wins from critical down.
func RiskLevelFor(overall float64) string {
	switch {
	case overall >= ThresholdCritical:
		return model.RiskLevelCritical
	case overall >= ThresholdHigh:
		return model.RiskLevelHigh
	case overall >= ThresholdMedium:
		return model.RiskLevelMedium
	default:
		return model.RiskLevelLow
	}
}

// InterventionRequired: high/critical level always requires intervention;
// any attendance or academic issue does too, even at a low overall score.
func InterventionRequired(level string, attendance, academic EvaluatorResult) bool {
	if level == model.RiskLevelHigh || level == model.RiskLevelCritical {
		return true
	}
	return len(attendance.Issues) > 0 || len(academic.Issues) > 0
}
