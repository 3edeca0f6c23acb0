package receipt

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"canteen-backend/entity"

	"github.com/jung-kurt/gofpdf"
)

const qrDataURLPrefix = "data:image/png;base64,"

// Render produces the printable receipt for a finalized order.
func Render(o *entity.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Canteen Order Receipt")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Order ID: "+o.Code)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Date: "+o.CreatedAt.Format("02 Jan 2006"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Time: "+o.CreatedAt.Format("15:04:05"))
	pdf.Ln(6)
	if o.StudentName != "" && o.StudentName != "Anonymous" {
		pdf.Cell(0, 6, "Student: "+o.StudentName)
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 6, "Order Items:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, it := range o.Items {
		pdf.Cell(0, 6, fmt.Sprintf("%d. %s", i+1, it.Name))
		pdf.Ln(5)
		pdf.Cell(0, 6, fmt.Sprintf("    Qty: %d x Rs. %.2f = Rs. %.2f", it.Quantity, it.Price, it.Subtotal))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 7, fmt.Sprintf("Total Amount: Rs. %.2f", o.TotalAmount))
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Payment Method: "+o.PaymentMethod)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Status: "+o.Status)
	pdf.Ln(6)
	if !o.EstimatedTime.IsZero() {
		pdf.Cell(0, 6, "ETA: "+o.EstimatedTime.Format("15:04"))
		pdf.Ln(6)
	}

	if strings.HasPrefix(o.QRCode, qrDataURLPrefix) {
		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(o.QRCode, qrDataURLPrefix))
		if err == nil {
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("tracking-qr", opts, bytes.NewReader(raw))
			pdf.ImageOptions("tracking-qr", 150, 40, 40, 40, false, opts, 0, "")
			pdf.SetXY(145, 82)
			pdf.SetFont("Helvetica", "", 9)
			pdf.Cell(50, 5, "Scan QR to track order")
			pdf.SetXY(10, pdf.GetY()+10)
			pdf.SetFont("Helvetica", "", 11)
		}
	}

	pdf.Ln(8)
	pdf.Cell(0, 6, "Thank you for your order!")
	pdf.Ln(6)
	pdf.Cell(0, 6, "Please show this receipt when collecting your order.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
