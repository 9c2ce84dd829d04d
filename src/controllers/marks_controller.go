package controllers

import (
	"Backend-SriSudha-School/src/models"
	"Backend-SriSudha-School/src/services/marks"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// UpsertMark godoc
// @Summary Save a single mark
// @Tags marks
// @Accept json
// @Produce json
// @Param mark body models.Mark true "Mark"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /marks [post]
func UpsertMark(c *fiber.Ctx) error {
	var mark models.Mark
	if err := c.BodyParser(&mark); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	if err := marks.UpsertMark(&mark); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Mark saved successfully"})
}

// ImportMarks godoc
// @Summary Import marks in bulk
// @Description Rows without a month use the selected month, falling back to the current month. Rows missing admissionNo or subject are skipped.
// @Tags marks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /marks/import [post]
func ImportMarks(c *fiber.Ctx) error {
	var body struct {
		Month string                 `json:"month"`
		Rows  []models.MarkImportRow `json:"rows"`
	}
	if err := c.BodyParser(&body); err != nil || len(body.Rows) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "rows is required"})
	}

	imported, skipped, err := marks.ImportMarks(body.Rows, body.Month)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error(), "imported": imported})
	}
	return c.JSON(fiber.Map{"message": "Marks imported", "imported": imported, "skippedRows": skipped})
}

// GetMarkSheet godoc
// @Summary Marks of one student
// @Description month → subject → {marks, status, remarks}
// @Tags marks
// @Produce json
// @Param admissionNo path string true "Admission number"
// @Success 200 {object} models.MarkSheet
// @Failure 500 {object} models.ErrorResponse
// @Router /marks/{admissionNo} [get]
func GetMarkSheet(c *fiber.Ctx) error {
	sheet, err := marks.GetMarkSheet(c.Params("admissionNo"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(sheet)
}

// GetMarksByMonth godoc
// @Summary Marks of all students for one month
// @Tags marks
// @Produce json
// @Param month query string true "YYYY-MM"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /marks [get]
func GetMarksByMonth(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "month is required"})
	}

	result, err := marks.GetMarksByMonth(month)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"month": month, "marks": result})
}
