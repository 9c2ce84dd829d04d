package controllers

import (
	"Backend-SriSudha-School/src/models"
	"Backend-SriSudha-School/src/services/students"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// GetStudents godoc
// @Summary List students
// @Description Paginated student list with group filter and name/admission-no search
// @Tags students
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param search query string false "Search"
// @Param group query string false "Group"
// @Success 200 {object} models.PaginatedResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /students [get]
func GetStudents(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query parameters"})
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 25
	}

	result, total, err := students.GetStudents(params)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(models.NewPaginatedResponse(result, total, params))
}

// GetStudentByAdmissionNo godoc
// @Summary Get one student
// @Tags students
// @Produce json
// @Param admissionNo path string true "Admission number"
// @Success 200 {object} models.Student
// @Failure 404 {object} models.ErrorResponse
// @Router /students/{admissionNo} [get]
func GetStudentByAdmissionNo(c *fiber.Ctx) error {
	student, err := students.GetStudentByAdmissionNo(c.Params("admissionNo"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(student)
}

// CreateStudent godoc
// @Summary Create a student
// @Description The admission number is generated server-side (YYYY-NNN).
// @Tags students
// @Accept json
// @Produce json
// @Param student body models.Student true "Student"
// @Success 201 {object} models.Student
// @Failure 400 {object} models.ErrorResponse
// @Router /students [post]
func CreateStudent(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	if err := students.CreateStudent(&student); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(http.StatusCreated).JSON(student)
}

// CreateStudentsBulk godoc
// @Summary Create students in bulk
// @Description Admission numbers continue the current sequence in input order.
// @Tags students
// @Accept json
// @Produce json
// @Param students body []models.Student true "Students"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /students/bulk [post]
func CreateStudentsBulk(c *fiber.Ctx) error {
	var req []models.Student
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	created, err := students.CreateStudentsBulk(req)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":  "Students created successfully",
		"count":    len(created),
		"students": created,
	})
}

// UpdateStudent godoc
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param admissionNo path string true "Admission number"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /students/{admissionNo} [put]
func UpdateStudent(c *fiber.Ctx) error {
	var updates bson.M
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	if err := students.UpdateStudent(c.Params("admissionNo"), updates); err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Student updated successfully"})
}

// DeleteStudent godoc
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param admissionNo path string true "Admission number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /students/{admissionNo} [delete]
func DeleteStudent(c *fiber.Ctx) error {
	if err := students.DeleteStudent(c.Params("admissionNo")); err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}

// DeleteStudentsBulk godoc
// @Summary Delete students in bulk
// @Tags students
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /students/bulk-delete [post]
func DeleteStudentsBulk(c *fiber.Ctx) error {
	var body struct {
		AdmissionNos []string `json:"admissionNos"`
	}
	if err := c.BodyParser(&body); err != nil || len(body.AdmissionNos) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "admissionNos is required"})
	}

	deleted, err := students.DeleteStudentsBulk(body.AdmissionNos)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Students deleted", "deleted": deleted})
}

// GetGroups godoc
// @Summary List class groups
// @Description Distinct groups across the roster, legacy stream codes excluded.
// @Tags students
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /students/groups [get]
func GetGroups(c *fiber.Ctx) error {
	groups, err := students.GetGroups()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"groups": groups})
}
