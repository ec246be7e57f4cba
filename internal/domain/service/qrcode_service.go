package service

// QRCodeService renders share codes for partner content.
type QRCodeService interface {
	// GenerateEventQR returns a PNG QR code pointing at the public page of an event.
	GenerateEventQR(eventID int64) ([]byte, error)

	// EventURL returns the link encoded by GenerateEventQR.
	EventURL(eventID int64) string
}
