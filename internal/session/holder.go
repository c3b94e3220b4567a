// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-journal-keeper/internal/adapter"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/service"
	"github.com/MKhiriev/go-journal-keeper/internal/store"
	"github.com/MKhiriev/go-journal-keeper/internal/validators"
	"github.com/MKhiriev/go-journal-keeper/models"
)

// Holder owns the current identity and profile. State is changed only after
// the remote call that justifies the change has returned.
type Holder struct {
	identity adapter.IdentityService
	profiles service.ProfileService
	journals service.JournalService
	cache    store.LocalSessionCache

	credentials validators.Validator
	logger      *logger.Logger

	mu      sync.RWMutex
	state   State
	user    *models.Identity
	profile *models.Profile

	subMu       sync.Mutex
	subscribers map[int]chan Snapshot
	nextSubID   int
}

// NewHolder returns a holder in [StateUnknown]. cache may be nil, in which
// case sessions do not survive a restart.
func NewHolder(identity adapter.IdentityService, services *service.Services, cache store.LocalSessionCache, logger *logger.Logger) *Holder {
	return &Holder{
		identity:    identity,
		profiles:    services.ProfileService,
		journals:    services.JournalService,
		cache:       cache,
		credentials: validators.NewCredentialsValidator(),
		logger:      logger,
		state:       StateUnknown,
		subscribers: make(map[int]chan Snapshot),
	}
}

// Snapshot returns a copy of the current state.
func (h *Holder) Snapshot() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snapshotLocked()
}

func (h *Holder) snapshotLocked() Snapshot {
	snap := Snapshot{State: h.state}
	if h.user != nil {
		u := *h.user
		snap.User = &u
	}
	if h.profile != nil {
		p := *h.profile
		snap.Profile = &p
	}
	return snap
}

// Subscribe returns a channel receiving a snapshot after every state change,
// and a function that ends the subscription. A slow reader only ever sees the
// latest snapshot.
func (h *Holder) Subscribe() (<-chan Snapshot, func()) {
	h.subMu.Lock()
	defer h.subMu.Unlock()

	id := h.nextSubID
	h.nextSubID++
	ch := make(chan Snapshot, 1)
	h.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.subMu.Lock()
			defer h.subMu.Unlock()
			delete(h.subscribers, id)
			close(ch)
		})
	}
}

func (h *Holder) publish(snap Snapshot) {
	h.subMu.Lock()
	defer h.subMu.Unlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- snap:
		default:
			// drop the stale snapshot and keep the newest
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

// set replaces the whole state and notifies subscribers.
func (h *Holder) set(state State, user *models.Identity, profile *models.Profile) Snapshot {
	h.mu.Lock()
	h.state, h.user, h.profile = state, user, profile
	snap := h.snapshotLocked()
	h.mu.Unlock()

	h.publish(snap)
	return snap
}

// Hydrate restores a cached session secret, if any, and checks it.
func (h *Holder) Hydrate(ctx context.Context) models.Result[Snapshot] {
	if h.cache != nil {
		secret, err := h.cache.Load(ctx)
		switch {
		case err == nil:
			h.identity.SetSecret(secret)
		case errors.Is(err, store.ErrLocalSessionNotFound):
		default:
			h.logger.Warn().Err(err).Str("func", "*Holder.Hydrate").Msg("could not read cached session")
		}
	}

	return h.Refresh(ctx)
}

// Refresh runs the Checking step: the identity service decides between
// Authenticated and Anonymous, and a missing profile is created on the way.
func (h *Holder) Refresh(ctx context.Context) models.Result[Snapshot] {
	h.mu.Lock()
	h.state = StateChecking
	snap := h.snapshotLocked()
	h.mu.Unlock()
	h.publish(snap)

	identity, err := h.identity.Current(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrNotFound) {
			h.forgetSecret(ctx)
			return models.Ok(h.set(StateAnonymous, nil, nil))
		}
		h.logger.Err(err).Str("func", "*Holder.Refresh").Msg("identity check failed")
		return models.NewResult(h.set(StateAnonymous, nil, nil), err)
	}

	profile, err := h.ensureProfile(ctx, identity)
	if err != nil {
		h.logger.Err(err).Str("func", "*Holder.Refresh").Str("user_id", identity.ID).Msg("signed in without a profile")
		return models.NewResult(h.set(StateAuthenticated, &identity, nil), err)
	}

	return models.Ok(h.set(StateAuthenticated, &identity, &profile))
}

// ensureProfile returns the profile of identity, creating it from the
// identity name and email the first time.
func (h *Holder) ensureProfile(ctx context.Context, identity models.Identity) (models.Profile, error) {
	profile, err := h.profiles.Get(ctx, identity.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, service.ErrProfileNotFound) {
		return models.Profile{}, err
	}

	h.logger.Info().Str("func", "*Holder.ensureProfile").Str("user_id", identity.ID).Msg("creating first profile")
	return h.profiles.Create(ctx, identity.ID, models.ProfileDraft{Name: identity.Name, Email: identity.Email})
}

// SignIn starts a session and re-runs the Checking step.
func (h *Holder) SignIn(ctx context.Context, creds models.Credentials) models.Result[Snapshot] {
	if err := h.credentials.Validate(ctx, creds, validators.FieldEmail, validators.FieldPassword); err != nil {
		return models.NewResult(h.Snapshot(), fmt.Errorf("%w: %w", service.ErrValidation, err))
	}

	if _, err := h.identity.CreateSession(ctx, creds.Email, creds.Password); err != nil {
		h.logger.Err(err).Str("func", "*Holder.SignIn").Msg("sign in failed")
		return models.NewResult(h.Snapshot(), err)
	}
	h.rememberSecret(ctx)

	return h.Refresh(ctx)
}

// SignUp creates an account, signs it in and re-runs the Checking step.
func (h *Holder) SignUp(ctx context.Context, creds models.Credentials) models.Result[Snapshot] {
	if err := h.credentials.Validate(ctx, creds, validators.FieldName, validators.FieldEmail, validators.FieldPassword); err != nil {
		return models.NewResult(h.Snapshot(), fmt.Errorf("%w: %w", service.ErrValidation, err))
	}

	if _, err := h.identity.CreateAccount(ctx, creds.Email, creds.Password, creds.Name); err != nil {
		h.logger.Err(err).Str("func", "*Holder.SignUp").Msg("account creation failed")
		return models.NewResult(h.Snapshot(), err)
	}

	return h.SignIn(ctx, creds)
}

// SignOut always ends in [StateAnonymous] with the cached secret removed. A
// failed remote session deletion is reported in the result.
func (h *Holder) SignOut(ctx context.Context) models.Result[Snapshot] {
	remoteErr := h.identity.DeleteAllSessions(ctx)
	if errors.Is(remoteErr, adapter.ErrUnauthorized) {
		// nothing to revoke
		remoteErr = nil
	}
	if remoteErr != nil {
		h.logger.Warn().Err(remoteErr).Str("func", "*Holder.SignOut").Msg("remote sign out failed, clearing local session anyway")
		remoteErr = fmt.Errorf("%w: %w", ErrRemoteSignOut, remoteErr)
	}

	h.identity.SetSecret("")
	h.forgetSecret(ctx)

	return models.NewResult(h.set(StateAnonymous, nil, nil), remoteErr)
}

func (h *Holder) rememberSecret(ctx context.Context) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Save(ctx, h.identity.Secret()); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Holder.rememberSecret").Msg("could not cache session")
	}
}

func (h *Holder) forgetSecret(ctx context.Context) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Clear(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Holder.forgetSecret").Msg("could not clear cached session")
	}
}

// currentUser returns the signed-in user id.
func (h *Holder) currentUser() (string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.state != StateAuthenticated || h.user == nil {
		return "", ErrNotAuthenticated
	}
	return h.user.ID, nil
}

// storeProfile replaces the cached profile if userID is still signed in.
func (h *Holder) storeProfile(userID string, profile models.Profile) {
	h.mu.Lock()
	if h.state != StateAuthenticated || h.user == nil || h.user.ID != userID {
		h.mu.Unlock()
		return
	}
	h.profile = &profile
	snap := h.snapshotLocked()
	h.mu.Unlock()

	h.publish(snap)
}
