// Package service defines interfaces for infrastructure-backed domain services.
package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates share QR codes for public listing pages.
type QRCodeService interface {
	// GenerateProjectQR returns a PNG QR code encoding the public listing URL
	// for the given project slug.
	GenerateProjectQR(projectID uuid.UUID, slug string) ([]byte, error)
}
