package service

import (
	"time"

	"github.com/MKhiriev/go-journal-keeper/internal/adapter"
	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/media"
)

// Services bundles the services built over one backend.
type Services struct {
	ProfileService ProfileService
	JournalService JournalService
}

// NewServices wires the profile and journal services to backend.
func NewServices(backend *adapter.Backend, cfg config.ClientConfig, logger *logger.Logger) *Services {
	return &Services{
		ProfileService: NewProfileService(
			backend.Documents,
			backend.Objects,
			cfg.Adapter,
			media.NewPictureNormalizer(cfg.App.PictureMaxEdge, logger),
			logger,
		),
		JournalService: NewJournalService(backend.Documents, cfg.Adapter, logger),
	}
}

// now is the clock of every service. UTC keeps stored timestamps comparable.
func now() time.Time {
	return time.Now().UTC()
}
