package qrcode

import (
	"github.com/skip2/go-qrcode"
)

// GeneratePNG สร้าง QR Code เป็น PNG bytes (ใช้กับ gate pass ของ outpass)
func GeneratePNG(data string) ([]byte, error) {
	return qrcode.Encode(data, qrcode.Medium, 256)
}
