package controller

import (
	"context"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "grades_backend/internals/features/grades/dto"
	model "grades_backend/internals/features/grades/model"
	helper "grades_backend/internals/helpers"
	authmw "grades_backend/internals/middlewares/auth"
)

// GradeStore is what the controller needs from the persistence layer.
// Satisfied by repository.GradeRepository.
type GradeStore interface {
	Create(ctx context.Context, req *dto.GradeCreateRequest, professorID, professorName string) (*model.GradeModel, error)
	GetByID(ctx context.Context, gradeID string) (*model.GradeModel, error)
	GetAll(ctx context.Context, skip, limit int64) ([]model.GradeModel, error)
	GetByStudent(ctx context.Context, studentID string) ([]model.GradeModel, error)
	GetByCourse(ctx context.Context, courseID string) ([]model.GradeModel, error)
	GetByProfessor(ctx context.Context, professorID string) ([]model.GradeModel, error)
	Update(ctx context.Context, gradeID string, req *dto.GradeUpdateRequest) (*model.GradeModel, error)
	Delete(ctx context.Context, gradeID string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type GradeController struct {
	Store GradeStore
}

var validate = validator.New()

// =========================================================
// LIST ALL - GET /api/grades?skip=&limit=
// =========================================================
func (h *GradeController) GetAll(c *fiber.Ctx) error {
	skip, err := strconv.ParseInt(c.Query("skip", "0"), 10, 64)
	if err != nil || skip < 0 {
		return helper.JsonValidationError(c, map[string][]string{"skip": {"must be an integer >= 0"}})
	}
	limit, err := strconv.ParseInt(c.Query("limit", "100"), 10, 64)
	if err != nil || limit < 1 || limit > 100 {
		return helper.JsonValidationError(c, map[string][]string{"limit": {"must be an integer between 1 and 100"}})
	}

	grades, err := h.Store.GetAll(c.UserContext(), skip, limit)
	if err != nil {
		log.Printf("[ERROR] list grades: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch grades")
	}
	total, err := h.Store.Count(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] count grades: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch grades")
	}

	return helper.JsonList(c, "", dto.ToGradeResponses(grades), fiber.Map{
		"skip":  skip,
		"limit": limit,
		"total": total,
	})
}

// =========================================================
// DETAIL - GET /api/grades/:id
// =========================================================
func (h *GradeController) GetByID(c *fiber.Ctx) error {
	grade, err := h.Store.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		log.Printf("[ERROR] get grade: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch grade")
	}
	if grade == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Grade not found")
	}
	return helper.JsonOK(c, "", dto.ToGradeResponse(grade))
}

// =========================================================
// BY STUDENT - GET /api/grades/student/:student_id
// =========================================================
func (h *GradeController) GetByStudent(c *fiber.Ctx) error {
	grades, err := h.Store.GetByStudent(c.UserContext(), c.Params("student_id"))
	if err != nil {
		log.Printf("[ERROR] list grades by student: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch grades")
	}
	return helper.JsonOK(c, "", dto.ToGradeResponses(grades))
}

// =========================================================
// BY COURSE - GET /api/grades/course/:course_id
// =========================================================
func (h *GradeController) GetByCourse(c *fiber.Ctx) error {
	grades, err := h.Store.GetByCourse(c.UserContext(), c.Params("course_id"))
	if err != nil {
		log.Printf("[ERROR] list grades by course: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch grades")
	}
	return helper.JsonOK(c, "", dto.ToGradeResponses(grades))
}

// =========================================================
// MY GRADES - GET /api/grades/professor/my-grades
// Scoped to the caller's own user_id.
// =========================================================
func (h *GradeController) GetMyGrades(c *fiber.Ctx) error {
	identity, ok := authmw.Identity(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - missing identity")
	}
	grades, err := h.Store.GetByProfessor(c.UserContext(), identity.UserID)
	if err != nil {
		log.Printf("[ERROR] list grades by professor: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch grades")
	}
	return helper.JsonOK(c, "", dto.ToGradeResponses(grades))
}

// =========================================================
// CREATE - POST /api/grades
// professor_id/professor_name are forced from the validated claim; any
// client-supplied value is ignored.
// =========================================================
func (h *GradeController) Create(c *fiber.Ctx) error {
	identity, ok := authmw.Identity(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - missing identity")
	}

	var req dto.GradeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrors(err))
	}

	grade, err := h.Store.Create(c.UserContext(), &req, identity.UserID, identity.Email)
	if err != nil {
		log.Printf("[ERROR] create grade: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create grade")
	}
	return helper.JsonCreated(c, "Grade created", dto.ToGradeResponse(grade))
}

// =========================================================
// UPDATE - PUT /api/grades/:id
// Only grade and comments may change; updated_at always advances.
// =========================================================
func (h *GradeController) Update(c *fiber.Ctx) error {
	var req dto.GradeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrors(err))
	}

	grade, err := h.Store.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		log.Printf("[ERROR] update grade: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update grade")
	}
	if grade == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Grade not found")
	}
	return helper.JsonUpdated(c, "Grade updated", dto.ToGradeResponse(grade))
}

// =========================================================
// DELETE - DELETE /api/grades/:id
// 204 on success, 404 when the id never existed (or was already gone).
// =========================================================
func (h *GradeController) Delete(c *fiber.Ctx) error {
	deleted, err := h.Store.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		log.Printf("[ERROR] delete grade: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete grade")
	}
	if !deleted {
		return helper.JsonError(c, fiber.StatusNotFound, "Grade not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
