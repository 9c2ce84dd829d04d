package controllers

import (
	"Backend-SriSudha-School/src/models"
	"Backend-SriSudha-School/src/qrcode"
	"Backend-SriSudha-School/src/services/outpasses"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// CreateOutpass godoc
// @Summary Submit an outpass request
// @Tags outpasses
// @Accept json
// @Produce json
// @Param outpass body models.Outpass true "Outpass"
// @Success 201 {object} models.Outpass
// @Failure 400 {object} models.ErrorResponse
// @Router /outpasses [post]
func CreateOutpass(c *fiber.Ctx) error {
	var outpass models.Outpass
	if err := c.BodyParser(&outpass); err != nil || outpass.AdmissionNo == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "admissionNo is required"})
	}

	if err := outpasses.CreateOutpass(&outpass); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(http.StatusCreated).JSON(outpass)
}

// GetOutpasses godoc
// @Summary List outpass requests, newest first
// @Tags outpasses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /outpasses [get]
func GetOutpasses(c *fiber.Ctx) error {
	result, err := outpasses.GetOutpasses()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"outpasses": result})
}

// UpdateOutpassStatus godoc
// @Summary Update an outpass status
// @Tags outpasses
// @Accept json
// @Produce json
// @Param id path string true "Outpass ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /outpasses/{id}/status [put]
func UpdateOutpassStatus(c *fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil || body.Status == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "status is required"})
	}

	if err := outpasses.UpdateOutpassStatus(c.Params("id"), body.Status); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Status updated successfully"})
}

// GetGatePassQR godoc
// @Summary Gate-pass QR image for an approved outpass
// @Tags outpasses
// @Produce png
// @Param token path string true "Gate token"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /outpasses/gate/{token} [get]
func GetGatePassQR(c *fiber.Ctx) error {
	outpass, err := outpasses.GetOutpassByGateToken(c.Params("token"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if outpass.Status != models.OutpassApproved {
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": "outpass is not approved"})
	}

	png, err := qrcode.GeneratePNG(outpass.GateToken)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate QR"})
	}
	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
