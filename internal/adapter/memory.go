package adapter

import (
	"context"
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-journal-keeper/internal/utils"
	"github.com/MKhiriev/go-journal-keeper/models"
)

// NewMemoryBackend returns a backend that keeps documents, files, accounts
// and sessions in process memory. Nothing survives a restart.
func NewMemoryBackend() *Backend {
	return NewBackend(NewMemoryDocumentStore(), NewMemoryObjectStore("memory://files"), NewMemoryIdentity())
}

// ── Documents ───────────────────────────────────────────────────────────────

type memoryDocument struct {
	seq  uint64
	data map[string]any
}

type memoryDocumentStore struct {
	mu          sync.RWMutex
	seq         uint64
	collections map[string]map[string]*memoryDocument
}

// NewMemoryDocumentStore returns an empty in-memory [DocumentStore].
func NewMemoryDocumentStore() DocumentStore {
	return &memoryDocumentStore{collections: make(map[string]map[string]*memoryDocument)}
}

func (m *memoryDocumentStore) Get(_ context.Context, collection, id string) (models.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.collections[collection][id]
	if !ok {
		return models.Document{}, fmt.Errorf("%w: document %s/%s", ErrNotFound, collection, id)
	}
	return models.Document{ID: id, Data: copyData(d.data)}, nil
}

func (m *memoryDocumentStore) Create(_ context.Context, collection, id string, fields models.Fields) (models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs, ok := m.collections[collection]
	if !ok {
		docs = make(map[string]*memoryDocument)
		m.collections[collection] = docs
	}
	if _, exists := docs[id]; exists {
		return models.Document{}, fmt.Errorf("%w: document %s/%s already exists", ErrConflict, collection, id)
	}

	m.seq++
	d := &memoryDocument{seq: m.seq, data: copyData(fields)}
	docs[id] = d

	return models.Document{ID: id, Data: copyData(d.data)}, nil
}

func (m *memoryDocumentStore) Update(_ context.Context, collection, id string, fields models.Fields) (models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.collections[collection][id]
	if !ok {
		return models.Document{}, fmt.Errorf("%w: document %s/%s", ErrNotFound, collection, id)
	}
	for k, v := range copyData(fields) {
		d.data[k] = v
	}

	return models.Document{ID: id, Data: copyData(d.data)}, nil
}

func (m *memoryDocumentStore) Delete(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.collections[collection][id]; !ok {
		return fmt.Errorf("%w: document %s/%s", ErrNotFound, collection, id)
	}
	delete(m.collections[collection], id)
	return nil
}

// List evaluates filters in memory. Documents are visited newest-inserted
// first, so documents that tie on an ordering attribute come out in reverse
// insertion order.
func (m *memoryDocumentStore) List(_ context.Context, collection string, queries ...Query) ([]models.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	type entry struct {
		id string
		d  *memoryDocument
	}

	entries := make([]entry, 0, len(m.collections[collection]))
	for id, d := range m.collections[collection] {
		if matchesAll(d.data, queries) {
			entries = append(entries, entry{id: id, d: d})
		}
	}
	slices.SortFunc(entries, func(a, b entry) int {
		for _, q := range queries {
			if q.Method != QueryMethodOrderDesc {
				continue
			}
			if c := strings.Compare(fmt.Sprint(b.d.data[q.Attribute]), fmt.Sprint(a.d.data[q.Attribute])); c != 0 {
				return c
			}
		}
		switch {
		case a.d.seq > b.d.seq:
			return -1
		case a.d.seq < b.d.seq:
			return 1
		}
		return 0
	})

	docs := make([]models.Document, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, models.Document{ID: e.id, Data: copyData(e.d.data)})
	}
	return docs, nil
}

func matchesAll(data map[string]any, queries []Query) bool {
	for _, q := range queries {
		switch q.Method {
		case QueryMethodEqual:
			if !slices.ContainsFunc(q.Values, func(v any) bool { return reflect.DeepEqual(data[q.Attribute], v) }) {
				return false
			}
		case QueryMethodSearch:
			value, _ := data[q.Attribute].(string)
			term, _ := q.firstValue().(string)
			if !strings.Contains(strings.ToLower(value), strings.ToLower(term)) {
				return false
			}
		}
	}
	return true
}

// copyData returns a copy of data that shares no slices with it.
func copyData[M ~map[string]any](data M) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		switch s := v.(type) {
		case []string:
			out[k] = slices.Clone(s)
		case []any:
			out[k] = slices.Clone(s)
		default:
			out[k] = v
		}
	}
	return out
}

// ── Objects ─────────────────────────────────────────────────────────────────

type memoryObject struct {
	file   models.File
	stored models.StoredFile
}

type memoryObjectStore struct {
	mu      sync.RWMutex
	baseURL string
	buckets map[string]map[string]memoryObject
}

// NewMemoryObjectStore returns an empty in-memory [ObjectStore] whose view
// URLs start with baseURL.
func NewMemoryObjectStore(baseURL string) ObjectStore {
	return &memoryObjectStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		buckets: make(map[string]map[string]memoryObject),
	}
}

func (m *memoryObjectStore) Create(_ context.Context, bucket, fileID string, file models.File) (models.StoredFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	objects, ok := m.buckets[bucket]
	if !ok {
		objects = make(map[string]memoryObject)
		m.buckets[bucket] = objects
	}
	if _, exists := objects[fileID]; exists {
		return models.StoredFile{}, fmt.Errorf("%w: file %s/%s already exists", ErrConflict, bucket, fileID)
	}

	file.Content = slices.Clone(file.Content)
	stored := models.StoredFile{
		ID:       fileID,
		Bucket:   bucket,
		Name:     file.Name,
		MimeType: file.MimeType,
		Size:     int64(file.Size()),
	}
	objects[fileID] = memoryObject{file: file, stored: stored}

	return stored, nil
}

func (m *memoryObjectStore) Delete(_ context.Context, bucket, fileID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.buckets[bucket][fileID]; !ok {
		return fmt.Errorf("%w: file %s/%s", ErrNotFound, bucket, fileID)
	}
	delete(m.buckets[bucket], fileID)
	return nil
}

func (m *memoryObjectStore) ViewURL(bucket, fileID string) string {
	return m.baseURL + "/" + url.PathEscape(bucket) + "/" + url.PathEscape(fileID)
}

// ── Identity ────────────────────────────────────────────────────────────────

const memorySessionTTL = 365 * 24 * time.Hour

type memoryIdentity struct {
	mu       sync.RWMutex
	ids      *utils.UUIDGenerator
	accounts map[string]models.Account // by email
	sessions map[string]string         // secret -> account id
	secret   string
}

// NewMemoryIdentity returns an in-memory [IdentityService]. Passwords are
// kept as keyed hashes.
func NewMemoryIdentity() IdentityService {
	return &memoryIdentity{
		ids:      utils.NewUUIDGenerator(),
		accounts: make(map[string]models.Account),
		sessions: make(map[string]string),
	}
}

func (m *memoryIdentity) Current(_ context.Context) (models.Identity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	accountID, ok := m.sessions[m.secret]
	if m.secret == "" || !ok {
		return models.Identity{}, fmt.Errorf("%w: no active session", ErrUnauthorized)
	}
	for _, acc := range m.accounts {
		if acc.ID == accountID {
			return acc.Identity(), nil
		}
	}
	return models.Identity{}, fmt.Errorf("%w: account %s", ErrUnauthorized, accountID)
}

func (m *memoryIdentity) CreateAccount(_ context.Context, email, password, name string) (models.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(strings.TrimSpace(email))
	if _, exists := m.accounts[key]; exists {
		return models.Identity{}, fmt.Errorf("%w: account %s already exists", ErrConflict, email)
	}

	acc := models.Account{
		ID:           m.ids.Generate(),
		Email:        email,
		Name:         name,
		PasswordHash: utils.HashString(password, key),
		CreatedAt:    time.Now().UTC(),
	}
	m.accounts[key] = acc

	return acc.Identity(), nil
}

func (m *memoryIdentity) CreateSession(_ context.Context, email, password string) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(strings.TrimSpace(email))
	acc, ok := m.accounts[key]
	if !ok || acc.PasswordHash != utils.HashString(password, key) {
		return models.Session{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	session := models.Session{
		ID:     m.ids.Generate(),
		UserID: acc.ID,
		Secret: m.ids.Generate(),
		Expire: time.Now().UTC().Add(memorySessionTTL),
	}
	m.sessions[session.Secret] = acc.ID
	m.secret = session.Secret

	return session, nil
}

func (m *memoryIdentity) DeleteAllSessions(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	accountID, ok := m.sessions[m.secret]
	if m.secret == "" || !ok {
		return fmt.Errorf("%w: no active session", ErrUnauthorized)
	}
	for secret, id := range m.sessions {
		if id == accountID {
			delete(m.sessions, secret)
		}
	}
	m.secret = ""
	return nil
}

func (m *memoryIdentity) SetSecret(secret string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.secret = strings.TrimSpace(secret)
}

func (m *memoryIdentity) Secret() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.secret
}
