package service

import (
	"sitekhata/internal/domain/entity"
)

// PaymentQRService defines the interface for UPI payment QR generation.
// The contractor shows the generated code to a client so they can pay a site
// invoice, or scans a worker's code when settling wages.
type PaymentQRService interface {
	// GeneratePaymentQR renders a scannable UPI payment code as PNG bytes.
	GeneratePaymentQR(payeeVPA, payeeName string, amount entity.Money, note string) ([]byte, error)

	// BuildUPILink builds the upi://pay deep link the QR encodes.
	BuildUPILink(payeeVPA, payeeName string, amount entity.Money, note string) string
}
