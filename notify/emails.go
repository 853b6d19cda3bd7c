package notify

import (
	"fmt"
	"log"
	"strings"

	"github.com/docdash/docdash-server/models"
)

// BookingConfirmed emails the patient their booking details.
func (n *Notifier) BookingConfirmed(appt *models.Appointment) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment has been successfully booked.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Doctor:</strong> %s - %s (%s)</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Location:</strong> %s, %s</li>
			<li><strong>Fees:</strong> $%.2f</li>
		</ul>
		<p>Please arrive 10 minutes early and bring relevant documents.</p>
		<p>Best regards,</p>
		<p>The DocDash Team</p>
	`, appt.Patient.Name, appt.Doctor.Name, appt.Doctor.Speciality, appt.Doctor.Degree,
		displayDate(appt.SlotDate), appt.SlotTime,
		appt.Doctor.AddressLine1, appt.Doctor.AddressLine2, appt.Amount)

	n.enqueue(Message{
		To:       appt.Patient.Email,
		Subject:  "Your Appointment is Confirmed",
		HTMLBody: body,
	})
}

// AppointmentCancelled emails the patient that their booking was cancelled.
func (n *Notifier) AppointmentCancelled(appt *models.Appointment) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment has been cancelled.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Doctor:</strong> %s - %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Need to rebook? Head back to DocDash and pick a new slot.</p>
		<p>Best regards,</p>
		<p>The DocDash Team</p>
	`, appt.Patient.Name, appt.Doctor.Name, appt.Doctor.Speciality,
		displayDate(appt.SlotDate), appt.SlotTime)

	n.enqueue(Message{
		To:       appt.Patient.Email,
		Subject:  "Your Appointment has been Cancelled",
		HTMLBody: body,
	})
}

// PaymentReceived emails the patient a receipt with the PDF attached.
func (n *Notifier) PaymentReceived(appt *models.Appointment) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We received your payment of <strong>$%.2f</strong> for your appointment
		with %s on %s at %s.</p>
		<p>Your receipt is attached.</p>
		<p>Best regards,</p>
		<p>The DocDash Team</p>
	`, appt.Patient.Name, appt.Amount, appt.Doctor.Name,
		displayDate(appt.SlotDate), appt.SlotTime)

	msg := Message{
		To:       appt.Patient.Email,
		Subject:  "Payment Receipt - DocDash",
		HTMLBody: body,
	}

	receipt, err := BuildReceiptPDF(appt)
	if err != nil {
		// Send the confirmation anyway; the receipt can be re-requested.
		log.Printf("notify: failed to build receipt for appointment %d: %v", appt.ID, err)
	} else {
		msg.AttachmentName = fmt.Sprintf("receipt_%d.pdf", appt.ID)
		msg.Attachment = receipt
	}
	n.enqueue(msg)
}

// ReminderDue emails the patient the day before their appointment.
func (n *Notifier) ReminderDue(appt *models.Appointment) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your appointment tomorrow.</p>
		<ul>
			<li><strong>Doctor:</strong> %s - %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Location:</strong> %s, %s</li>
		</ul>
		<p>If you need to cancel, please do so as soon as possible.</p>
		<p>Best regards,</p>
		<p>The DocDash Team</p>
	`, appt.Patient.Name, appt.Doctor.Name, appt.Doctor.Speciality,
		displayDate(appt.SlotDate), appt.SlotTime,
		appt.Doctor.AddressLine1, appt.Doctor.AddressLine2)

	n.enqueue(Message{
		To:       appt.Patient.Email,
		Subject:  "Reminder: Upcoming Appointment",
		HTMLBody: body,
	})
}

// VerificationCode emails a registration code. Codes expire quickly, so the
// copy says so.
func (n *Notifier) VerificationCode(name, email, code string) {
	body := fmt.Sprintf(`
		<p>Welcome to DocDash, %s!</p>
		<p>Please verify your email address by entering the code below:</p>
		<h1 style="letter-spacing:5px;">%s</h1>
		<p>This code is valid for 5 minutes. If you didn't request this, please
		ignore this message.</p>
		<p>Best regards,</p>
		<p>The DocDash Team</p>
	`, name, code)

	n.enqueue(Message{
		To:       email,
		Subject:  "Verify your DocDash account",
		HTMLBody: body,
	})
}

// displayDate turns a "15_06_2025" key into "15/06/2025" for email copy.
func displayDate(dateKey string) string {
	return strings.ReplaceAll(dateKey, "_", "/")
}
