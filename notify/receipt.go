package notify

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/docdash/docdash-server/models"
)

// BuildReceiptPDF renders a payment receipt for a paid appointment.
func BuildReceiptPDF(appt *models.Appointment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(216, 27, 96)
	pdf.CellFormat(0, 10, "DocDash - Payment Receipt", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 7, "Quick Care, Anytime, Anywhere", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Appointment", "1", 1, "C", false, 0, "")
	receiptDetail(pdf, "Receipt No", uuid.NewString(), true)
	receiptDetail(pdf, "Appointment ID", fmt.Sprintf("%d", appt.ID), true)
	receiptDetail(pdf, "Patient", appt.Patient.Name, true)
	receiptDetail(pdf, "Doctor", fmt.Sprintf("%s - %s (%s)", appt.Doctor.Name, appt.Doctor.Speciality, appt.Doctor.Degree), true)
	receiptDetail(pdf, "Date", displayDate(appt.SlotDate), true)
	receiptDetail(pdf, "Time", appt.SlotTime, true)

	pdf.CellFormat(0, 10, "Payment", "1", 1, "C", false, 0, "")
	receiptDetail(pdf, "Paid On", time.Now().Format("2006-01-02"), false)
	if appt.PaymentRef != "" {
		receiptDetail(pdf, "Payment Ref", appt.PaymentRef, false)
	}
	pdf.SetFont("Arial", "B", 13)
	receiptDetail(pdf, "Amount Paid", fmt.Sprintf("$%.2f", appt.Amount), true)

	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, "Thank you for using DocDash.", "", "L", false)
	pdf.SetY(pdf.GetY() + 12)
	pdf.CellFormat(0, 10, "This is a computer generated receipt", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// receiptDetail adds one label/value row to the receipt table.
func receiptDetail(pdf *gofpdf.Fpdf, label, value string, header bool) {
	if header {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(255, 255, 255)
	} else {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
	}
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}
