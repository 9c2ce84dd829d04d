package controllers

import (
	"Backend-SriSudha-School/src/services/blobs"
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetStudentsBlob godoc
// @Summary Raw students blob used by the frontend roster sync
// @Tags blob
// @Produce json
// @Success 200 {array} interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/blob/get-students [get]
func GetStudentsBlob(c *fiber.Ctx) error {
	content, err := blobs.Get(blobs.StudentsPath)
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "No remote students"})
	}

	// ถ้า parse ได้ก็ส่งเป็น JSON, ไม่ได้ก็ส่ง raw เหมือนของเดิม
	var parsed interface{}
	if json.Unmarshal(content, &parsed) == nil {
		return c.JSON(parsed)
	}
	return c.Send(content)
}

// SaveStudentsBlob godoc
// @Summary Persist the students blob verbatim
// @Tags blob
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/blob/save-students [post]
func SaveStudentsBlob(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		body = []byte("{}")
	}

	url, err := blobs.Save(blobs.StudentsPath, body)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"url": url})
}
