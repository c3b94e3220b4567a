// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied to fields no source has set.
const (
	defaultProfilesCollection = "profiles"
	defaultJournalsCollection = "journals"
	defaultPicturesBucket     = "profile-pictures"
	defaultMongoDatabase      = "journal"
	defaultLocalDSN           = "journal.db"
	defaultTokenIssuer        = "journal-keeper"
	defaultTokenDuration      = 30 * 24 * time.Hour
	defaultPictureMaxEdge     = 1024
	defaultAdapterTimeout     = 15 * time.Second
	defaultGatewayAddress     = "localhost:8081"
	defaultGatewayTimeout     = 30 * time.Second
)

// validate checks the merged [StructuredConfig] before the gateway starts.
// Defaults are filled in first.
func (cfg *StructuredConfig) validate() error {
	clientCfg := cfg.Client()
	clientCfg.applyDefaults()
	cfg.App, cfg.Adapter, cfg.Storage = clientCfg.App, clientCfg.Adapter, clientCfg.Storage

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultGatewayAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultGatewayTimeout
	}

	return clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.Kind == "" {
		cfg.Adapter.Kind = KindAppwrite
	}
	if cfg.Adapter.ProfilesCollectionID == "" {
		cfg.Adapter.ProfilesCollectionID = defaultProfilesCollection
	}
	if cfg.Adapter.JournalsCollectionID == "" {
		cfg.Adapter.JournalsCollectionID = defaultJournalsCollection
	}
	if cfg.Adapter.PicturesBucketID == "" {
		cfg.Adapter.PicturesBucketID = defaultPicturesBucket
	}
	if cfg.Adapter.ObjectStore == "" {
		cfg.Adapter.ObjectStore = ObjectStoreCloudinary
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
	if cfg.Storage.Local.DSN == "" {
		cfg.Storage.Local.DSN = defaultLocalDSN
	}
	if cfg.Storage.Mongo.Database == "" {
		cfg.Storage.Mongo.Database = defaultMongoDatabase
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.PictureMaxEdge == 0 {
		cfg.App.PictureMaxEdge = defaultPictureMaxEdge
	}
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Adapter.Kind {
	case KindAppwrite:
		if cfg.Adapter.Endpoint == "" || cfg.Adapter.ProjectID == "" || cfg.Adapter.DatabaseID == "" {
			return fmt.Errorf("%w: appwrite needs endpoint, project and database", ErrInvalidAdapterConfigs)
		}
	case KindSelfHosted:
		if cfg.Storage.Mongo.URI == "" || cfg.Storage.DB.DSN == "" || cfg.Storage.Redis.URI == "" {
			return fmt.Errorf("%w: selfhosted needs mongo, postgres and redis", ErrInvalidStorageConfigs)
		}
		if cfg.App.TokenSignKey == "" {
			return fmt.Errorf("%w: selfhosted needs a token sign key", ErrInvalidAppConfigs)
		}
		switch cfg.Adapter.ObjectStore {
		case ObjectStoreCloudinary:
			c := cfg.Storage.Cloudinary
			if c.CloudName == "" || c.APIKey == "" || c.APISecret == "" {
				return fmt.Errorf("%w: cloudinary credentials are incomplete", ErrInvalidStorageConfigs)
			}
		case ObjectStoreGCS:
		default:
			return fmt.Errorf("%w: object store %q", ErrInvalidAdapterConfigs, cfg.Adapter.ObjectStore)
		}
	case KindMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Adapter.Kind)
	}

	if cfg.Adapter.ProfilesCollectionID == "" || cfg.Adapter.JournalsCollectionID == "" || cfg.Adapter.PicturesBucketID == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
