package qrcode

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"farmnaturals/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	// TypeOrderTracking marks payloads produced for order tracking.
	TypeOrderTracking = "order-tracking"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData is the JSON payload encoded in the QR image
type QRCodeData struct {
	OrderNumber string `json:"order_number"`
	Type        string `json:"type"`
	URL         string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance. baseURL is the status endpoint the
// encoded link points at; the order number is appended as the last path segment.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateOrderQR renders the tracking payload of an order as a PNG
func (s *qrcodeService) GenerateOrderQR(orderNumber string) ([]byte, error) {
	data := QRCodeData{
		OrderNumber: orderNumber,
		Type:        TypeOrderTracking,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/" + url.PathEscape(orderNumber)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseOrderQR decodes a scanned payload and returns the order number
func ParseOrderQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != TypeOrderTracking {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.OrderNumber == "" {
		return "", fmt.Errorf("QR code carries no order number")
	}

	return data.OrderNumber, nil
}
