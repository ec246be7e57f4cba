// Package qrcode renders share codes for dashboard content.
package qrcode

import (
	"strconv"
	"strings"

	"partnerdash/config"
	"partnerdash/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service from the qrcode configuration section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := 256, "M", ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
		baseURL = cfg.QRCode.BaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// EventURL returns the public link of an event.
func (s *qrcodeService) EventURL(eventID int64) string {
	return s.baseURL + "/events/" + strconv.FormatInt(eventID, 10)
}

// GenerateEventQR encodes EventURL as a PNG.
func (s *qrcodeService) GenerateEventQR(eventID int64) ([]byte, error) {
	qrCode, err := qrcode.New(s.EventURL(eventID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
