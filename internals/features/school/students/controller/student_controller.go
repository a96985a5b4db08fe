// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolsis_backend/internals/features/school/students/dto"
	model "schoolsis_backend/internals/features/school/students/model"
	helper "schoolsis_backend/internals/helpers"
	helperAuth "schoolsis_backend/internals/helpers/auth"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========================= Helpers =========================

func isUniqueViolation(err error) bool {
	// safe for pgx/pq: look for code 23505 or the usual phrasing
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key value") ||
		strings.Contains(s, "unique constraint")
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

func tenantID(c *fiber.Ctx) (uuid.UUID, error) {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "School ID not found in token")
	}
	return schoolID, nil
}

// ========================= Handlers =========================

// POST /students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	schoolID, err := tenantID(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	row := model.StudentModel{
		SchoolID:      schoolID,
		StudentNumber: strings.TrimSpace(req.StudentNumber),
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		GradeLevel:    strings.TrimSpace(req.GradeLevel),
		BirthDate:     req.BirthDate,

		PrimaryEmail: req.PrimaryEmail,
		Phone:        req.Phone,
		Address:      req.Address,

		Guardian1Name:  req.Guardian1Name,
		Guardian1Phone: req.Guardian1Phone,
		Guardian1Email: req.Guardian1Email,
		Guardian2Name:  req.Guardian2Name,
		Guardian2Phone: req.Guardian2Phone,
		Guardian2Email: req.Guardian2Email,

		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		MedicalConditions:     req.MedicalConditions,

		Status: model.StatusActive,
	}
	if req.EnrollmentCount != nil {
		row.EnrollmentCount = *req.EnrollmentCount
	}
	if req.Status != nil {
		row.Status = *req.Status
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Student number already exists for this school")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Student created", dto.ToStudentResponse(&row))
}

// GET /students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	schoolID, err := tenantID(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	var row model.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("students_id = ? AND students_school_id = ?", id, schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", dto.ToStudentResponse(&row))
}

// GET /students?status=&grade_level=&q=&page=&per_page=
func (ctl *StudentController) List(c *fiber.Ctx) error {
	schoolID, err := tenantID(c)
	if err != nil {
		return err
	}

	qry := ctl.DB.WithContext(c.UserContext()).
		Model(&model.StudentModel{}).
		Where("students_school_id = ?", schoolID)

	if v := strings.TrimSpace(c.Query("status")); v != "" {
		qry = qry.Where("students_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("grade_level")); v != "" {
		qry = qry.Where("students_grade_level = ?", v)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		qry = qry.Where(
			"(LOWER(students_first_name) LIKE ? OR LOWER(students_last_name) LIKE ? OR LOWER(students_student_number) LIKE ?)",
			like, like, like,
		)
	}

	var total int64
	if err := qry.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var rows []model.StudentModel
	if err := qry.
		Order("students_last_name ASC, students_first_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToStudentResponse(&rows[i]))
	}
	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	p.Count = len(out)
	return helper.JsonList(c, "", out, &p)
}

// PUT /students/:id (partial update)
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	schoolID, err := tenantID(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var row model.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("students_id = ? AND students_school_id = ?", id, schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	applyStudentUpdate(&row, &req)

	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Student updated", dto.ToStudentResponse(&row))
}

// DELETE /students/:id (soft delete)
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	schoolID, err := tenantID(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("students_id = ? AND students_school_id = ?", id, schoolID).
		Delete(&model.StudentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"id": id})
}

func applyStudentUpdate(row *model.StudentModel, req *dto.UpdateStudentRequest) {
	if req.FirstName != nil {
		row.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		row.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.GradeLevel != nil {
		row.GradeLevel = strings.TrimSpace(*req.GradeLevel)
	}
	if req.BirthDate != nil {
		row.BirthDate = req.BirthDate
	}
	if req.PrimaryEmail != nil {
		row.PrimaryEmail = req.PrimaryEmail
	}
	if req.Phone != nil {
		row.Phone = req.Phone
	}
	if req.Address != nil {
		row.Address = req.Address
	}
	if req.Guardian1Name != nil {
		row.Guardian1Name = req.Guardian1Name
	}
	if req.Guardian1Phone != nil {
		row.Guardian1Phone = req.Guardian1Phone
	}
	if req.Guardian1Email != nil {
		row.Guardian1Email = req.Guardian1Email
	}
	if req.Guardian2Name != nil {
		row.Guardian2Name = req.Guardian2Name
	}
	if req.Guardian2Phone != nil {
		row.Guardian2Phone = req.Guardian2Phone
	}
	if req.Guardian2Email != nil {
		row.Guardian2Email = req.Guardian2Email
	}
	if req.EmergencyContactName != nil {
		row.EmergencyContactName = req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		row.EmergencyContactPhone = req.EmergencyContactPhone
	}
	if req.MedicalConditions != nil {
		row.MedicalConditions = req.MedicalConditions
	}
	if req.EnrollmentCount != nil {
		row.EnrollmentCount = *req.EnrollmentCount
	}
	if req.Status != nil {
		row.Status = *req.Status
	}
}
