package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/models"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
)

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, models.Ok(h.holder.Snapshot()), http.StatusOK)
}

func (h *Handler) refreshSession(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, h.holder.Refresh(r.Context()), http.StatusOK)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, r, err)
		return
	}

	writeResult(w, r, h.holder.SignIn(r.Context(), creds), http.StatusOK)
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, r, err)
		return
	}

	writeResult(w, r, h.holder.SignUp(r.Context(), creds), http.StatusCreated)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, h.holder.SignOut(r.Context()), http.StatusOK)
}

// sessionEvents streams session snapshots over a websocket: the current one
// first, then one per state change until the client goes away.
func (h *Handler) sessionEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	snapshots, unsubscribe := h.holder.Subscribe()
	defer unsubscribe()

	// the client never sends anything; reading only detects close and pongs
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingPeriod)
	defer ping.Stop()

	write := func(snap any) error {
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		return conn.WriteJSON(snap)
	}

	if err = write(models.Ok(h.holder.Snapshot())); err != nil {
		log.Err(err).Msg("error writing session snapshot")
		return
	}

	for {
		select {
		case <-closed:
			return
		case snap, ok := <-snapshots:
			if !ok {
				return
			}
			if err = write(models.Ok(snap)); err != nil {
				log.Err(err).Msg("error writing session snapshot")
				return
			}
		case <-ping.C:
			if err = conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}
