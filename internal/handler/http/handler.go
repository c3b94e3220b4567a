package http

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/session"
)

// maxPictureSize bounds a multipart picture upload.
const maxPictureSize = 10 << 20

type Handler struct {
	holder  *session.Holder
	cfg     config.Server
	version string

	upgrader websocket.Upgrader
	logger   *logger.Logger
}

func NewHandler(holder *session.Holder, cfg config.Server, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	h := &Handler{
		holder:  holder,
		cfg:     cfg,
		version: version,
		logger:  logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// CORS does not cover upgrades
		CheckOrigin: func(r *http.Request) bool {
			return h.originAllowed(r.Header.Get("Origin"))
		},
	}
	return h
}
