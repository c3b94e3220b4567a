package adapter

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-journal-keeper/models"
)

const (
	documentsPath = "/databases/{databaseId}/collections/{collectionId}/documents"
	documentPath  = documentsPath + "/{documentId}"
)

type appwriteDocuments struct {
	*appwriteClient
	databaseID string
}

type documentListResponse struct {
	Total     int              `json:"total"`
	Documents []map[string]any `json:"documents"`
}

func (a *appwriteDocuments) pathParams(collection, id string) map[string]string {
	params := map[string]string{
		"databaseId":   a.databaseID,
		"collectionId": collection,
	}
	if id != "" {
		params["documentId"] = id
	}
	return params
}

// Get implements [DocumentStore] with GET .../documents/{documentId}.
func (a *appwriteDocuments) Get(ctx context.Context, collection, id string) (models.Document, error) {
	resp, err := a.request(ctx).
		SetPathParams(a.pathParams(collection, id)).
		Get(documentPath)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: get document request: %v", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	var raw map[string]any
	if err = decodeJSON(resp, &raw, "get document"); err != nil {
		return models.Document{}, err
	}
	return decodeDocument(raw), nil
}

// Create implements [DocumentStore] with POST .../documents.
func (a *appwriteDocuments) Create(ctx context.Context, collection, id string, fields models.Fields) (models.Document, error) {
	resp, err := a.request(ctx).
		SetPathParams(a.pathParams(collection, "")).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"documentId": id, "data": fields}).
		Post(documentsPath)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: create document request: %v", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	var raw map[string]any
	if err = decodeJSON(resp, &raw, "create document"); err != nil {
		return models.Document{}, err
	}
	return decodeDocument(raw), nil
}

// Update implements [DocumentStore] with PATCH .../documents/{documentId}.
func (a *appwriteDocuments) Update(ctx context.Context, collection, id string, fields models.Fields) (models.Document, error) {
	resp, err := a.request(ctx).
		SetPathParams(a.pathParams(collection, id)).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"data": fields}).
		Patch(documentPath)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: update document request: %v", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	var raw map[string]any
	if err = decodeJSON(resp, &raw, "update document"); err != nil {
		return models.Document{}, err
	}
	return decodeDocument(raw), nil
}

// Delete implements [DocumentStore] with DELETE .../documents/{documentId}.
func (a *appwriteDocuments) Delete(ctx context.Context, collection, id string) error {
	resp, err := a.request(ctx).
		SetPathParams(a.pathParams(collection, id)).
		Delete(documentPath)
	if err != nil {
		return fmt.Errorf("%w: delete document request: %v", ErrRemote, err)
	}

	return mapHTTPError(resp)
}

// List implements [DocumentStore] with GET .../documents. Each query is sent
// as a "queries[]" parameter in its JSON form.
func (a *appwriteDocuments) List(ctx context.Context, collection string, queries ...Query) ([]models.Document, error) {
	params := url.Values{}
	for _, q := range queries {
		params.Add("queries[]", q.String())
	}

	resp, err := a.request(ctx).
		SetPathParams(a.pathParams(collection, "")).
		SetQueryParamsFromValues(params).
		Get(documentsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list documents request: %v", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list documentListResponse
	if err = decodeJSON(resp, &list, "list documents"); err != nil {
		return nil, err
	}

	docs := make([]models.Document, 0, len(list.Documents))
	for _, raw := range list.Documents {
		docs = append(docs, decodeDocument(raw))
	}
	return docs, nil
}
