package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout. Durations accept both
// strings ("30s") and nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenDuration  Duration `json:"token_duration"`
		PictureMaxEdge int      `json:"picture_max_edge"`
		LogLevel       string   `json:"log_level"`
		Version        string   `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		Kind                 string   `json:"kind"`
		Endpoint             string   `json:"endpoint"`
		ProjectID            string   `json:"project_id"`
		DatabaseID           string   `json:"database_id"`
		ProfilesCollectionID string   `json:"profiles_collection_id"`
		JournalsCollectionID string   `json:"journals_collection_id"`
		PicturesBucketID     string   `json:"pictures_bucket_id"`
		ObjectStore          string   `json:"object_store"`
		RequestTimeout       Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		Local struct {
			DSN string `json:"dsn"`
		} `json:"local,omitempty"`
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Mongo struct {
			URI      string `json:"uri"`
			Database string `json:"database"`
		} `json:"mongo,omitempty"`
		Redis struct {
			URI string `json:"uri"`
		} `json:"redis,omitempty"`
		Cloudinary struct {
			CloudName string `json:"cloud_name"`
			APIKey    string `json:"api_key"`
			APISecret string `json:"api_secret"`
		} `json:"cloudinary,omitempty"`
		GCS struct {
			CredentialsFile string `json:"credentials_file"`
			PublicBaseURL   string `json:"public_base_url"`
		} `json:"gcs,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:   jsonCfg.App.TokenSignKey,
			TokenIssuer:    jsonCfg.App.TokenIssuer,
			TokenDuration:  time.Duration(jsonCfg.App.TokenDuration),
			PictureMaxEdge: jsonCfg.App.PictureMaxEdge,
			LogLevel:       jsonCfg.App.LogLevel,
			Version:        jsonCfg.App.Version,
		},
		Adapter: Adapter{
			Kind:                 jsonCfg.Adapter.Kind,
			Endpoint:             jsonCfg.Adapter.Endpoint,
			ProjectID:            jsonCfg.Adapter.ProjectID,
			DatabaseID:           jsonCfg.Adapter.DatabaseID,
			ProfilesCollectionID: jsonCfg.Adapter.ProfilesCollectionID,
			JournalsCollectionID: jsonCfg.Adapter.JournalsCollectionID,
			PicturesBucketID:     jsonCfg.Adapter.PicturesBucketID,
			ObjectStore:          jsonCfg.Adapter.ObjectStore,
			RequestTimeout:       time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			Local: Local{DSN: jsonCfg.Storage.Local.DSN},
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Mongo: Mongo{URI: jsonCfg.Storage.Mongo.URI, Database: jsonCfg.Storage.Mongo.Database},
			Redis: Redis{URI: jsonCfg.Storage.Redis.URI},
			Cloudinary: Cloudinary{
				CloudName: jsonCfg.Storage.Cloudinary.CloudName,
				APIKey:    jsonCfg.Storage.Cloudinary.APIKey,
				APISecret: jsonCfg.Storage.Cloudinary.APISecret,
			},
			GCS: GCS{
				CredentialsFile: jsonCfg.Storage.GCS.CredentialsFile,
				PublicBaseURL:   jsonCfg.Storage.GCS.PublicBaseURL,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
