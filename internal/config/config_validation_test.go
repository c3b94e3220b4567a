package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appwriteConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			Endpoint:   "https://cloud.appwrite.io/v1",
			ProjectID:  "proj",
			DatabaseID: "db",
		},
	}
}

func TestValidate_AppliesDefaults(t *testing.T) {
	cfg := appwriteConfig()

	require.NoError(t, cfg.validate())

	assert.Equal(t, KindAppwrite, cfg.Adapter.Kind)
	assert.Equal(t, "profiles", cfg.Adapter.ProfilesCollectionID)
	assert.Equal(t, "journals", cfg.Adapter.JournalsCollectionID)
	assert.Equal(t, "profile-pictures", cfg.Adapter.PicturesBucketID)
	assert.Equal(t, ObjectStoreCloudinary, cfg.Adapter.ObjectStore)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "journal.db", cfg.Storage.Local.DSN)
	assert.Equal(t, "journal", cfg.Storage.Mongo.Database)
	assert.Equal(t, "journal-keeper", cfg.App.TokenIssuer)
	assert.Equal(t, 30*24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 1024, cfg.App.PictureMaxEdge)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestValidate_KeepsExplicitValues(t *testing.T) {
	cfg := appwriteConfig()
	cfg.Adapter.ProfilesCollectionID = "users"
	cfg.App.PictureMaxEdge = 256
	cfg.Server.HTTPAddress = ":9000"

	require.NoError(t, cfg.validate())

	assert.Equal(t, "users", cfg.Adapter.ProfilesCollectionID)
	assert.Equal(t, 256, cfg.App.PictureMaxEdge)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr error
	}{
		{
			name: "appwrite complete",
			cfg: ClientConfig{Adapter: Adapter{
				Kind: KindAppwrite, Endpoint: "http://x", ProjectID: "p", DatabaseID: "d",
			}},
		},
		{
			name:    "appwrite missing endpoint",
			cfg:     ClientConfig{Adapter: Adapter{Kind: KindAppwrite, ProjectID: "p", DatabaseID: "d"}},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "memory needs nothing",
			cfg:  ClientConfig{Adapter: Adapter{Kind: KindMemory}},
		},
		{
			name:    "unknown backend",
			cfg:     ClientConfig{Adapter: Adapter{Kind: "firebase"}},
			wantErr: ErrUnknownBackend,
		},
		{
			name: "selfhosted missing redis",
			cfg: ClientConfig{
				App:     App{TokenSignKey: "k"},
				Adapter: Adapter{Kind: KindSelfHosted, ObjectStore: ObjectStoreGCS},
				Storage: Storage{Mongo: Mongo{URI: "mongodb://m"}, DB: DB{DSN: "postgres://p"}},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "selfhosted missing sign key",
			cfg: ClientConfig{
				Adapter: Adapter{Kind: KindSelfHosted, ObjectStore: ObjectStoreGCS},
				Storage: Storage{
					Mongo: Mongo{URI: "mongodb://m"}, DB: DB{DSN: "postgres://p"}, Redis: Redis{URI: "redis://r"},
				},
			},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "selfhosted cloudinary without credentials",
			cfg: ClientConfig{
				App:     App{TokenSignKey: "k"},
				Adapter: Adapter{Kind: KindSelfHosted, ObjectStore: ObjectStoreCloudinary},
				Storage: Storage{
					Mongo: Mongo{URI: "mongodb://m"}, DB: DB{DSN: "postgres://p"}, Redis: Redis{URI: "redis://r"},
					Cloudinary: Cloudinary{CloudName: "c"},
				},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "selfhosted gcs",
			cfg: ClientConfig{
				App:     App{TokenSignKey: "k"},
				Adapter: Adapter{Kind: KindSelfHosted, ObjectStore: ObjectStoreGCS},
				Storage: Storage{
					Mongo: Mongo{URI: "mongodb://m"}, DB: DB{DSN: "postgres://p"}, Redis: Redis{URI: "redis://r"},
				},
			},
		},
		{
			name: "selfhosted unknown object store",
			cfg: ClientConfig{
				App:     App{TokenSignKey: "k"},
				Adapter: Adapter{Kind: KindSelfHosted, ObjectStore: "s3"},
				Storage: Storage{
					Mongo: Mongo{URI: "mongodb://m"}, DB: DB{DSN: "postgres://p"}, Redis: Redis{URI: "redis://r"},
				},
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.applyDefaults()

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
