// file: internals/route/details/student_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "schoolsis_backend/internals/features/school/students/controller"
)

// StudentRoutes: admin-scoped student CRUD
func StudentRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	r := admin.Group("/students")
	r.Post("/", ctrl.Create)
	r.Get("/", ctrl.List)
	r.Get("/:id", ctrl.GetByID)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
