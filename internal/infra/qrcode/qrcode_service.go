// Package qrcode generates share QR codes for public listing pages.
package qrcode

import (
	"fmt"
	"strings"

	"homio/config"
	"homio/internal/domain/service"
	"homio/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

const defaultSize = 256

type qrCodeService struct {
	baseURL string
	size    int
	level   qrcode.RecoveryLevel
}

// Params defines the parameters required for the QR code service
type Params struct {
	fx.In

	Config *config.Config
}

// NewQRCodeService creates a QR code service from configuration.
func NewQRCodeService(params Params) service.QRCodeService {
	size := defaultSize
	level := qrcode.Medium
	var baseURL string

	if params.Config.Listing != nil {
		baseURL = strings.TrimRight(params.Config.Listing.PublicBaseURL, "/")
	}
	if params.Config.QRCode != nil {
		if params.Config.QRCode.Size > 0 {
			size = params.Config.QRCode.Size
		}
		level = parseRecoveryLevel(params.Config.QRCode.ErrorCorrectionLevel)
	}

	return &qrCodeService{
		baseURL: baseURL,
		size:    size,
		level:   level,
	}
}

// GenerateProjectQR generates a PNG QR code encoding the public listing URL
// for the given project slug.
func (s *qrCodeService) GenerateProjectQR(projectID uuid.UUID, slug string) ([]byte, error) {
	if slug == "" {
		return nil, errors.New("slug cannot be empty")
	}

	url := fmt.Sprintf("%s/projects/%s", s.baseURL, slug)

	qrCode, err := qrcode.New(url, s.level)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create QR code for project %s", projectID)
	}

	png, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render QR code for project %s", projectID)
	}

	return png, nil
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
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
