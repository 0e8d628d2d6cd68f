package qrcode

import (
	"fmt"
	"net/url"

	"sitekhata/config"
	"sitekhata/internal/domain/entity"
	domainerrors "sitekhata/internal/domain/errors"
	"sitekhata/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

// upiQRService renders UPI deep links as QR codes. Any UPI app (GPay,
// PhonePe, Paytm) can scan the result and pre-fill the payment screen.
type upiQRService struct {
	size int
}

// NewUPIQRService is the constructor for upiQRService.
func NewUPIQRService(cfg *config.Config) service.PaymentQRService {
	size := defaultQRSize
	if cfg.UPI != nil && cfg.UPI.QRSize > 0 {
		size = cfg.UPI.QRSize
	}

	return &upiQRService{size: size}
}

// BuildUPILink builds the upi://pay deep link the QR encodes. The amount is
// rendered as plain decimal rupees since that is what the UPI spec expects.
func (s *upiQRService) BuildUPILink(payeeVPA, payeeName string, amount entity.Money, note string) string {
	params := url.Values{}
	params.Set("pa", payeeVPA)
	params.Set("pn", payeeName)
	params.Set("am", formatUPIAmount(amount))
	params.Set("cu", "INR")
	if note != "" {
		params.Set("tn", note)
	}

	return "upi://pay?" + params.Encode()
}

// GeneratePaymentQR renders a scannable UPI payment code as PNG bytes.
func (s *upiQRService) GeneratePaymentQR(payeeVPA, payeeName string, amount entity.Money, note string) ([]byte, error) {
	link := s.BuildUPILink(payeeVPA, payeeName, amount, note)

	png, err := qrcode.Encode(link, qrcode.Medium, s.size)
	if err != nil {
		return nil, domainerrors.ErrQRGenerationFailed.WrapMessage(err.Error())
	}

	return png, nil
}

func formatUPIAmount(amount entity.Money) string {
	paise := amount.Paise()
	if paise%100 == 0 {
		return fmt.Sprintf("%d", paise/100)
	}

	return fmt.Sprintf("%d.%02d", paise/100, paise%100)
}
