// Package payments wraps the external checkout provider. Only the redirect
// URL and the paid/unpaid signal cross into the booking core.
package payments

import (
	"context"
	"fmt"
	"os"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/docdash/docdash-server/models"
)

// RazorpayProvider creates hosted payment links for appointment fees and
// implements booking.PaymentProvider.
type RazorpayProvider struct {
	client *razorpay.Client
}

func NewRazorpayProvider() *RazorpayProvider {
	return &RazorpayProvider{
		client: razorpay.NewClient(
			os.Getenv("RAZORPAY_KEY_ID"),
			os.Getenv("RAZORPAY_KEY_SECRET"),
		),
	}
}

// CreateSession creates a payment link for the appointment fee and returns
// the provider's link id plus the short URL the patient is redirected to.
// The razorpay client has no context support; callers bound the overall
// operation instead.
func (p *RazorpayProvider) CreateSession(_ context.Context, appt *models.Appointment) (string, string, error) {
	data := map[string]interface{}{
		// Amount is in the smallest currency unit.
		"amount":      int64(appt.Amount * 100),
		"currency":    "USD",
		"description": fmt.Sprintf("Consultation with Dr. %s (%s)", appt.Doctor.Name, appt.Doctor.Speciality),
		"customer": map[string]interface{}{
			"name":  appt.Patient.Name,
			"email": appt.Patient.Email,
		},
		"callback_url":    fmt.Sprintf("%s/payment-success?appointmentId=%d", os.Getenv("CLIENT_URL"), appt.ID),
		"callback_method": "get",
	}

	body, err := p.client.PaymentLink.Create(data, nil)
	if err != nil {
		return "", "", fmt.Errorf("payments: create payment link: %w", err)
	}

	ref, _ := body["id"].(string)
	url, _ := body["short_url"].(string)
	if ref == "" || url == "" {
		return "", "", fmt.Errorf("payments: malformed payment link response")
	}
	return ref, url, nil
}
