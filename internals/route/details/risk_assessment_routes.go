// file: internals/route/details/risk_assessment_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	riskController "schoolsis_backend/internals/features/school/risk_assessment/controller"
	middlewares "schoolsis_backend/internals/middlewares"
)

// RiskAssessmentRoutes: admin-scoped risk scoring endpoints
func RiskAssessmentRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := riskController.NewRiskAssessmentController(db)

	r := admin.Group("/risk-assessments")

	r.Get("/", ctrl.ListByRiskLevel)
	r.Get("/stats", ctrl.Stats)

	r.Post("/students/:student_id/assess", ctrl.Assess)
	r.Get("/students/:student_id/latest", ctrl.Latest)
	r.Get("/students/:student_id/history", ctrl.History)
	r.Patch("/students/:student_id/intervention", ctrl.UpdateIntervention)

	// batch runs are heavy; throttle triggers per caller
	r.Post("/batch", middlewares.BatchRunRateLimiter(), ctrl.RunBatch)

	r.Delete("/purge", ctrl.Purge)
}
