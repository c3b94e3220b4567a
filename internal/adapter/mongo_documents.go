package adapter

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoIDField = "_id"

type mongoDocumentStore struct {
	db     *mongo.Database
	logger *logger.Logger
}

// NewMongoDocumentStore returns a [DocumentStore] keeping every collection
// in a MongoDB collection of the same name. Document ids are stored in _id.
func NewMongoDocumentStore(db *mongo.Database, logger *logger.Logger) DocumentStore {
	return &mongoDocumentStore{db: db, logger: logger}
}

func (m *mongoDocumentStore) Get(ctx context.Context, collection, id string) (models.Document, error) {
	var raw bson.M
	err := m.db.Collection(collection).FindOne(ctx, bson.M{mongoIDField: id}).Decode(&raw)
	if err != nil {
		return models.Document{}, mongoError(err, "get document %s/%s", collection, id)
	}
	return documentFromBSON(raw), nil
}

func (m *mongoDocumentStore) Create(ctx context.Context, collection, id string, fields models.Fields) (models.Document, error) {
	raw := bson.M{mongoIDField: id}
	for k, v := range fields {
		raw[k] = v
	}

	if _, err := m.db.Collection(collection).InsertOne(ctx, raw); err != nil {
		return models.Document{}, mongoError(err, "create document %s/%s", collection, id)
	}
	return documentFromBSON(raw), nil
}

func (m *mongoDocumentStore) Update(ctx context.Context, collection, id string, fields models.Fields) (models.Document, error) {
	set := bson.M{}
	for k, v := range fields {
		if k == mongoIDField {
			continue
		}
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var raw bson.M
	err := m.db.Collection(collection).
		FindOneAndUpdate(ctx, bson.M{mongoIDField: id}, bson.M{"$set": set}, opts).
		Decode(&raw)
	if err != nil {
		return models.Document{}, mongoError(err, "update document %s/%s", collection, id)
	}
	return documentFromBSON(raw), nil
}

func (m *mongoDocumentStore) Delete(ctx context.Context, collection, id string) error {
	res, err := m.db.Collection(collection).DeleteOne(ctx, bson.M{mongoIDField: id})
	if err != nil {
		return mongoError(err, "delete document %s/%s", collection, id)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: document %s/%s", ErrNotFound, collection, id)
	}
	return nil
}

func (m *mongoDocumentStore) List(ctx context.Context, collection string, queries ...Query) ([]models.Document, error) {
	filter, sort := mongoQuery(queries)

	cursor, err := m.db.Collection(collection).Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, mongoError(err, "list documents %s", collection)
	}
	defer func() {
		if closeErr := cursor.Close(ctx); closeErr != nil {
			m.logger.Err(closeErr).Str("func", "*mongoDocumentStore.List").Msg("error closing cursor")
		}
	}()

	var raws []bson.M
	if err = cursor.All(ctx, &raws); err != nil {
		return nil, mongoError(err, "decode documents %s", collection)
	}

	docs := make([]models.Document, 0, len(raws))
	for _, raw := range raws {
		docs = append(docs, documentFromBSON(raw))
	}
	return docs, nil
}

// mongoQuery translates queries into a filter and a sort. Ties on the sort
// keys fall back to _id descending.
func mongoQuery(queries []Query) (bson.M, bson.D) {
	filter := bson.M{}
	sort := bson.D{}

	for _, q := range queries {
		switch q.Method {
		case QueryMethodEqual:
			if len(q.Values) == 1 {
				filter[q.Attribute] = q.Values[0]
			} else {
				filter[q.Attribute] = bson.M{"$in": q.Values}
			}
		case QueryMethodSearch:
			term, _ := q.firstValue().(string)
			filter[q.Attribute] = primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
		case QueryMethodOrderDesc:
			sort = append(sort, bson.E{Key: q.Attribute, Value: -1})
		}
	}
	sort = append(sort, bson.E{Key: mongoIDField, Value: -1})

	return filter, sort
}

// documentFromBSON converts a decoded MongoDB document. Arrays come back as
// []any and nested documents as map[string]any.
func documentFromBSON(raw bson.M) models.Document {
	doc := models.Document{Data: make(map[string]any, len(raw))}
	for k, v := range raw {
		if k == mongoIDField {
			doc.ID = fmt.Sprint(v)
			continue
		}
		doc.Data[k] = normalizeBSON(v)
	}
	return doc
}

func normalizeBSON(v any) any {
	switch t := v.(type) {
	case primitive.A:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeBSON(item)
		}
		return out
	case bson.M:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = normalizeBSON(item)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = normalizeBSON(e.Value)
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	default:
		return v
	}
}

func mongoError(err error, format string, args ...any) error {
	what := fmt.Sprintf(format, args...)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %s", ErrConflict, what)
	default:
		return fmt.Errorf("%w: %s: %v", ErrRemote, what, err)
	}
}
