package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/utils"
	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	headerProject = "X-Appwrite-Project"
	headerSession = "X-Appwrite-Session"

	// uniqueID asks Appwrite to generate the identifier.
	uniqueID = "unique()"
)

// appwriteClient is the REST transport shared by the Appwrite document,
// storage and account facades. It carries the project and the active
// session secret.
type appwriteClient struct {
	client *utils.HTTPClient

	endpoint  string
	projectID string

	mu     sync.RWMutex
	secret string

	logger *logger.Logger
}

// NewAppwriteBackend constructs the Appwrite implementation of all three
// collaborators over one REST client. The endpoint is normalised and
// validated; collection and bucket identifiers are passed per call.
//
// Returns an error if adapterCfg.Endpoint is empty or cannot be parsed as a
// valid URL.
func NewAppwriteBackend(adapterCfg config.Adapter, logger *logger.Logger) (*Backend, error) {
	c, err := newAppwriteClient(adapterCfg, logger)
	if err != nil {
		return nil, err
	}

	return NewBackend(
		&appwriteDocuments{appwriteClient: c, databaseID: adapterCfg.DatabaseID},
		&appwriteStorage{appwriteClient: c},
		&appwriteAccount{appwriteClient: c},
	), nil
}

func newAppwriteClient(adapterCfg config.Adapter, logger *logger.Logger) (*appwriteClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid appwrite endpoint: %w", err)
	}
	if adapterCfg.ProjectID == "" {
		return nil, fmt.Errorf("empty appwrite project id")
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader(headerProject, adapterCfg.ProjectID)

	return &appwriteClient{
		client:    client,
		endpoint:  baseURL,
		projectID: adapterCfg.ProjectID,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetSecret implements [IdentityService].
func (c *appwriteClient) SetSecret(secret string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.secret = strings.TrimSpace(secret)
}

// Secret implements [IdentityService].
func (c *appwriteClient) Secret() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.secret
}

// request starts a request carrying the session secret, when one is set.
func (c *appwriteClient) request(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if secret := c.Secret(); secret != "" {
		req.SetHeader(headerSession, secret)
	}
	return req
}

// decodeDocument turns an Appwrite document body into a [models.Document].
// "$id" becomes the ID; every other "$"-prefixed attribute is metadata and is
// dropped.
func decodeDocument(raw map[string]any) models.Document {
	doc := models.Document{Data: make(map[string]any, len(raw))}
	for k, v := range raw {
		if k == "$id" {
			doc.ID, _ = v.(string)
			continue
		}
		if strings.HasPrefix(k, "$") {
			continue
		}
		doc.Data[k] = v
	}
	return doc
}

func decodeJSON(resp *resty.Response, v any, what string) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", ErrRemote, what, err)
	}
	return nil
}
