package qr

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// DataURL renders text as a 200px QR PNG wrapped in a data URL, ready to
// drop into an <img> tag or a PDF.
func DataURL(text string) (string, error) {
	png, err := qrcode.Encode(text, qrcode.Medium, 200)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
