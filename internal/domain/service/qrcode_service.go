package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateOrderQR renders a PNG QR code pointing at the order's tracking URL
	GenerateOrderQR(orderNumber string) ([]byte, error)
}
