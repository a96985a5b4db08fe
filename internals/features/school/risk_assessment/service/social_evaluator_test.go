package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	metricsvc "schoolsis_backend/internals/features/school/analytics/service"
)

func fullProfile() metricsvc.StudentProfile {
	return metricsvc.StudentProfile{
		EnrollmentCount:       3,
		EmergencyContactName:  strPtr("Dana Rivera"),
		EmergencyContactPhone: strPtr("(217) 555-0142"),
		PrimaryEmail:          strPtr("student@springfield.edu"),
	}
}

func TestScoreSocial_CompleteProfile(t *testing.T) {
	res := scoreSocial(fullProfile())

	assert.Equal(t, 0.0, res.Score)
	assert.Empty(t, res.Issues)
	assert.Equal(t, ConfidenceMedium, res.Confidence)
}

func TestScoreSocial_LimitedEngagement(t *testing.T) {
	p := fullProfile()
	p.EnrollmentCount = 1

	res := scoreSocial(p)
	assert.Equal(t, 25.0, res.Score)
	assert.Equal(t, []string{TagLimitedEngagement}, res.Issues)
}

func TestScoreSocial_MissingEmergencyInfo(t *testing.T) {
	p := fullProfile()
	p.EmergencyContactPhone = nil

	res := scoreSocial(p)
	assert.Equal(t, 20.0, res.Score)
	assert.Equal(t, []string{TagMissingEmergencyInfo}, res.Issues)

	p = fullProfile()
	p.EmergencyContactName = strPtr("   ")

	res = scoreSocial(p)
	assert.Equal(t, []string{TagMissingEmergencyInfo}, res.Issues)
}

func TestScoreSocial_MedicalSocialConcerns(t *testing.T) {
	p := fullProfile()
	p.MedicalConditions = strPtr("Social anxiety, seasonal allergies")

	res := scoreSocial(p)
	assert.Equal(t, 15.0, res.Score)
	assert.Equal(t, []string{TagMedicalSocialConcerns}, res.Issues)
}

func TestScoreSocial_NoContactInfo(t *testing.T) {
	p := fullProfile()
	p.PrimaryEmail = nil

	res := scoreSocial(p)
	assert.Equal(t, 10.0, res.Score)
	assert.Equal(t, []string{TagNoContactInfo}, res.Issues)
}

func TestScoreSocial_AllSignals(t *testing.T) {
	p := metricsvc.StudentProfile{
		EnrollmentCount:   0,
		MedicalConditions: strPtr("needs social support"),
	}

	res := scoreSocial(p)
	assert.Equal(t, 70.0, res.Score)
	assert.Equal(t, []string{
		TagLimitedEngagement,
		TagMissingEmergencyInfo,
		TagMedicalSocialConcerns,
		TagNoContactInfo,
	}, res.Issues)
	assert.Equal(t, ConfidenceMedium, res.Confidence)
}
