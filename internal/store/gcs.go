// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
)

// NewConnectGCS builds a Cloud Storage client. An empty credentials file
// falls back to application default credentials.
func NewConnectGCS(ctx context.Context, cfg config.GCS, log *logger.Logger) (*storage.Client, error) {
	opts := []option.ClientOption{option.WithScopes(storage.ScopeReadWrite)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewConnectGCS").Msg("error creating gcs client")
		return nil, fmt.Errorf("error creating gcs client: %w", err)
	}
	log.Info().Str("func", "NewConnectGCS").Msg("gcs client created")

	return client, nil
}
