// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolMiddleware "schoolsis_backend/internals/middlewares/auth_school"
	routeDetails "schoolsis_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== ADMIN (per school) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + tenant scope)...")
	admin := app.Group("/api/a",
		schoolMiddleware.AuthJWT(schoolMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	log.Println("[INFO] Setting up StudentRoutes...")
	routeDetails.StudentRoutes(admin, db)

	log.Println("[INFO] Setting up RiskAssessmentRoutes...")
	routeDetails.RiskAssessmentRoutes(admin, db)
}
