package qrcode

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"sitekhata/config"
	"sitekhata/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUPIQRService_BuildUPILink(t *testing.T) {
	svc := NewUPIQRService(&config.Config{})

	link := svc.BuildUPILink("builder@upi", "Sharma Constructions", entity.RupeesToMoney(900), "wage settlement")

	require.True(t, strings.HasPrefix(link, "upi://pay?"), "link = %s", link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	params := parsed.Query()
	assert.Equal(t, "builder@upi", params.Get("pa"))
	assert.Equal(t, "Sharma Constructions", params.Get("pn"))
	assert.Equal(t, "900", params.Get("am"))
	assert.Equal(t, "INR", params.Get("cu"))
	assert.Equal(t, "wage settlement", params.Get("tn"))
}

func TestUPIQRService_BuildUPILink_OmitsEmptyNote(t *testing.T) {
	svc := NewUPIQRService(&config.Config{})

	link := svc.BuildUPILink("builder@upi", "Sharma", entity.RupeesToMoney(500), "")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.False(t, parsed.Query().Has("tn"))
}

func TestFormatUPIAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   entity.Money
		expected string
	}{
		{name: "whole rupees", amount: entity.RupeesToMoney(900), expected: "900"},
		{name: "rupees and paise", amount: entity.Money(35050), expected: "350.50"},
		{name: "single digit paise", amount: entity.Money(35005), expected: "350.05"},
		{name: "zero", amount: entity.Money(0), expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatUPIAmount(tt.amount); got != tt.expected {
				t.Fatalf("formatUPIAmount(%d) = %s, want %s", tt.amount.Paise(), got, tt.expected)
			}
		})
	}
}

func TestUPIQRService_GeneratePaymentQR_ProducesPNG(t *testing.T) {
	svc := NewUPIQRService(&config.Config{})

	png, err := svc.GeneratePaymentQR("builder@upi", "Sharma", entity.RupeesToMoney(900), "advance")

	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "output is not a PNG")
}

func TestUPIQRService_HonorsConfiguredSize(t *testing.T) {
	cfg := &config.Config{UPI: &config.UPIConfig{QRSize: 128}}
	svc := NewUPIQRService(cfg).(*upiQRService)

	assert.Equal(t, 128, svc.size)
}
