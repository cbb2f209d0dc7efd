package service

// QRCodeService renders QR codes for printed region notices.
type QRCodeService interface {
	// GeneratePNG encodes content as a PNG QR code.
	GeneratePNG(content string) ([]byte, error)
}
