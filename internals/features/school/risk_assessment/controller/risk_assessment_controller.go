// file: internals/features/school/risk_assessment/controller/risk_assessment_controller.go
package controller

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolsis_backend/internals/features/school/risk_assessment/dto"
	model "schoolsis_backend/internals/features/school/risk_assessment/model"
	service "schoolsis_backend/internals/features/school/risk_assessment/service"
	helper "schoolsis_backend/internals/helpers"
	helperAuth "schoolsis_backend/internals/helpers/auth"
)

type RiskAssessmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Svc       *service.RiskAssessmentService
	Repo      *service.AssessmentRepository
	Batch     *service.BatchRunner
}

func NewRiskAssessmentController(db *gorm.DB) *RiskAssessmentController {
	svc := service.NewRiskAssessmentService(db, log.Default())
	return &RiskAssessmentController{
		DB:        db,
		Validator: validator.New(),
		Svc:       svc,
		Repo:      service.NewAssessmentRepository(db),
		Batch:     service.NewBatchRunner(svc, log.Default()),
	}
}

// ========================= Helpers =========================

func (ctl *RiskAssessmentController) tenant(c *fiber.Ctx) (uuid.UUID, error) {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "School ID not found in token")
	}
	return schoolID, nil
}

func parseStudentIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("student_id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}
	return id, nil
}

func validRiskLevel(s string) bool {
	switch s {
	case model.RiskLevelLow, model.RiskLevelMedium, model.RiskLevelHigh, model.RiskLevelCritical:
		return true
	}
	return false
}

// ========================= Handlers =========================

// POST /risk-assessments/students/:student_id/assess
func (ctl *RiskAssessmentController) Assess(c *fiber.Ctx) error {
	schoolID, err := ctl.tenant(c)
	if err != nil {
		return err
	}
	studentID, err := parseStudentIDParam(c)
	if err != nil {
		return err
	}

	outcome, err := ctl.Svc.AssessStudent(c.UserContext(), schoolID, studentID)
	if err != nil {
		// calculation/persistence failure, distinct from "not assessed yet"
		return fiber.NewError(fiber.StatusInternalServerError, "Risk calculation failed: "+err.Error())
	}

	return helper.JsonCreated(c, "Risk assessment created", dto.AssessStudentResponse{
		Assessment:  dto.ToRiskAssessmentResponse(outcome.Assessment),
		Evaluations: outcome.Evaluations,
	})
}

// GET /risk-assessments/students/:student_id/latest
func (ctl *RiskAssessmentController) Latest(c *fiber.Ctx) error {
	schoolID, err := ctl.tenant(c)
	if err != nil {
		return err
	}
	studentID, err := parseStudentIDParam(c)
	if err != nil {
		return err
	}

	row, err := ctl.Repo.Latest(c.UserContext(), schoolID, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "No assessment found for this student")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", dto.ToRiskAssessmentResponse(row))
}

// GET /risk-assessments/students/:student_id/history?months=6
func (ctl *RiskAssessmentController) History(c *fiber.Ctx) error {
	schoolID, err := ctl.tenant(c)
	if err != nil {
		return err
	}
	studentID, err := parseStudentIDParam(c)
	if err != nil {
		return err
	}

	months := c.QueryInt("months", 6)
	if months < 1 || months > 36 {
		return fiber.NewError(fiber.StatusBadRequest, "months must be between 1 and 36")
	}

	rows, err := ctl.Repo.TrendHistory(c.UserContext(), schoolID, studentID, months)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.RiskAssessmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToRiskAssessmentResponse(&rows[i]))
	}
	return helper.JsonOK(c, "", out)
}

// GET /risk-assessments?risk_level=high&page=&per_page=
func (ctl *RiskAssessmentController) ListByRiskLevel(c *fiber.Ctx) error {
	schoolID, err := ctl.tenant(c)
	if err != nil {
		return err
	}

	level := strings.ToLower(strings.TrimSpace(c.Query("risk_level")))
	if !validRiskLevel(level) {
		return fiber.NewError(fiber.StatusBadRequest, "risk_level must be one of low|medium|high|critical")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	rows, total, err := ctl.Repo.ListByRiskLevel(c.UserContext(), schoolID, level, paging.Limit, paging.Offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.RiskAssessmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToRiskAssessmentResponse(&rows[i]))
	}
	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	p.Count = len(out)
	return helper.JsonList(c, "", out, &p)
}

// PATCH /risk-assessments/students/:student_id/intervention
func (ctl *RiskAssessmentController) UpdateIntervention(c *fiber.Ctx) error {
	schoolID, err := ctl.tenant(c)
	if err != nil {
		return err
	}
	studentID, err := parseStudentIDParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateInterventionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	row, err := ctl.Repo.UpdateIntervention(c.UserContext(), schoolID, studentID, service.InterventionUpdate{
		LastInterventionDate:    req.LastInterventionDate,
		InterventionSuccessRate: req.InterventionSuccessRate,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "No assessment found for this student")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Intervention tracking updated", dto.ToRiskAssessmentResponse(row))
}

// GET /risk-assessments/stats?days=30
func (ctl *RiskAssessmentController) Stats(c *fiber.Ctx) error {
	schoolID, err := ctl.tenant(c)
	if err != nil {
		return err
	}

	days := c.QueryInt("days", 30)
	if days < 1 || days > 365 {
		return fiber.NewError(fiber.StatusBadRequest, "days must be between 1 and 365")
	}

	stats, err := ctl.Repo.CohortStats(c.UserContext(), schoolID, days)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", stats)
}

// POST /risk-assessments/batch
func (ctl *RiskAssessmentController) RunBatch(c *fiber.Ctx) error {
	schoolID, err := ctl.tenant(c)
	if err != nil {
		return err
	}

	// a started batch runs to completion; detach from the request timeout
	summary, err := ctl.Batch.RunBatch(context.WithoutCancel(c.UserContext()), schoolID)
	if err != nil {
		if errors.Is(err, service.ErrBatchAlreadyRunning) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Batch assessment completed", summary)
}

// DELETE /risk-assessments/purge?days=365
func (ctl *RiskAssessmentController) Purge(c *fiber.Ctx) error {
	schoolID, err := ctl.tenant(c)
	if err != nil {
		return err
	}
	if !helperAuth.HasGlobalRole(c, "superadmin") && !helperAuth.HasGlobalRole(c, "admin") {
		return fiber.NewError(fiber.StatusForbidden, "Admin role required")
	}

	days := c.QueryInt("days", 365)
	if days < 30 {
		return fiber.NewError(fiber.StatusBadRequest, "retention must be at least 30 days")
	}

	purged, err := ctl.Repo.PurgeOlderThan(c.UserContext(), schoolID, days)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Old assessments purged", fiber.Map{"purged": purged})
}
