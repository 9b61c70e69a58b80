// Package qrimg generates QR code images for table links.
package qrimg

import (
	qrcode "github.com/skip2/go-qrcode"
)

// Generator implements ports.CodeImageGenerator using QR codes.
type Generator struct {
	level qrcode.RecoveryLevel
}

// NewGenerator creates a QR code generator with medium error recovery, which
// is plenty for codes printed at cell size and scanned from a phone.
func NewGenerator() *Generator {
	return &Generator{level: qrcode.Medium}
}

// Generate encodes the payload as a square PNG of sizePx pixels.
func (g *Generator) Generate(payload string, sizePx int) ([]byte, error) {
	return qrcode.Encode(payload, g.level, sizePx)
}
