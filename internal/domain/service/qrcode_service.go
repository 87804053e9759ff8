package service

// QRCodeService renders otpauth provisioning URIs as QR codes.
type QRCodeService interface {
	// GeneratePNG encodes content as a PNG image.
	GeneratePNG(content string) ([]byte, error)

	// GenerateDataURL encodes content as a "data:image/png;base64," URL.
	GenerateDataURL(content string) (string, error)
}
