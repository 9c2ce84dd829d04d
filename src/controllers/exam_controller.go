package controllers

import (
	"Backend-SriSudha-School/src/models"
	"Backend-SriSudha-School/src/services/exams"
	"Backend-SriSudha-School/src/utils"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateExamSchedule godoc
// @Summary Create an exam schedule
// @Tags exams
// @Accept json
// @Produce json
// @Param schedule body models.ExamSchedule true "Schedule"
// @Success 201 {object} models.ExamSchedule
// @Failure 400 {object} models.ErrorResponse
// @Router /exam-schedules [post]
func CreateExamSchedule(c *fiber.Ctx) error {
	var schedule models.ExamSchedule
	if err := c.BodyParser(&schedule); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := exams.CreateExamSchedule(&schedule); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(schedule)
}

// GetExamSchedules godoc
// @Summary List exam schedules
// @Tags exams
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /exam-schedules [get]
func GetExamSchedules(c *fiber.Ctx) error {
	result, err := exams.GetExamSchedules()
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"schedules": result})
}

// UpdateExamSchedule godoc
// @Summary Update an exam schedule
// @Tags exams
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /exam-schedules/{id} [put]
func UpdateExamSchedule(c *fiber.Ctx) error {
	var updates bson.M
	if err := c.BodyParser(&updates); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := exams.UpdateExamSchedule(c.Params("id"), updates); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Schedule updated successfully"})
}

// DeleteExamSchedule godoc
// @Summary Delete an exam schedule
// @Tags exams
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /exam-schedules/{id} [delete]
func DeleteExamSchedule(c *fiber.Ctx) error {
	if err := exams.DeleteExamSchedule(c.Params("id")); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Schedule deleted successfully"})
}
