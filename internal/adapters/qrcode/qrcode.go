package qrcode

import (
	"encoding/base64"
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

const defaultSize = 256

// Generator renders share links as PNG QR codes embedded in data URLs.
type Generator struct {
	size     int
	recovery qr.RecoveryLevel
}

// NewGenerator creates a generator producing 256px codes with medium error
// recovery.
func NewGenerator() *Generator {
	return &Generator{size: defaultSize, recovery: qr.Medium}
}

// DataURL encodes content as a "data:image/png;base64,..." string.
func (g *Generator) DataURL(content string) (string, error) {
	png, err := qr.Encode(content, g.recovery, g.size)
	if err != nil {
		return "", fmt.Errorf("qrcode: failed to encode: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
