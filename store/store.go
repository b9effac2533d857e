package store

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"MouqabRealEstate/config"
)

const connectTimeout = 10 * time.Second

// Store is the document gateway. It is constructed once in main and handed to
// the handlers; there is no package-level connection state. A Store built
// without a DATABASE_URL is valid — Available reports false and every
// operation fails with a StoreError instead of the process crashing at boot.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    *logrus.Logger
}

func New(cfg *config.Config, log *logrus.Logger) (*Store, error) {
	s := &Store{log: log}
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, store starts unavailable")
		return s, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		return nil, &StoreError{Op: "connect", Err: err}
	}
	s.client = client
	s.db = client.Database(cfg.DatabaseName)

	// Reachability is checked but not required: the driver reconnects on its
	// own, so a database that is down at boot only degrades /test.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.WithError(err).Warn("database unreachable at startup")
	} else {
		log.WithField("database", cfg.DatabaseName).Info("connected to database")
	}
	return s, nil
}

func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// Available reports current reachability. It never errors; /test turns the
// answer into diagnostics.
func (s *Store) Available(ctx context.Context) bool {
	if s.client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.client.Ping(ctx, readpref.Primary()) == nil
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, &StoreError{Op: "list collections", Err: errNotConfigured}
	}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, &StoreError{Op: "list collections", Err: err}
	}
	return names, nil
}

// CreateDocument inserts one validated entity into the named collection and
// returns the store-assigned identifier.
func (s *Store) CreateDocument(ctx context.Context, collection string, doc any) (DocumentID, error) {
	if s.db == nil {
		return DocumentID{}, &StoreError{Op: "insert", Collection: collection, Err: errNotConfigured}
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return DocumentID{}, &StoreError{Op: "insert", Collection: collection, Err: err}
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return DocumentID{}, &StoreError{Op: "insert", Collection: collection,
			Err: errors.New("unexpected inserted id type")}
	}
	return DocumentID{oid: oid}, nil
}

// GetDocuments runs filter against the named collection and returns at most
// limit documents in store order. Every returned document has its _id already
// converted to the external string form.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if s.db == nil {
		return nil, &StoreError{Op: "find", Collection: collection, Err: errNotConfigured}
	}
	cursor, err := s.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, &StoreError{Op: "find", Collection: collection, Err: err}
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, &StoreError{Op: "decode", Collection: collection, Err: err}
		}
		docs = append(docs, normalizeID(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, &StoreError{Op: "find", Collection: collection, Err: err}
	}
	return docs, nil
}

// GetDocumentByID fetches a single document, ErrNotFound when absent.
func (s *Store) GetDocumentByID(ctx context.Context, collection string, id DocumentID) (bson.M, error) {
	if s.db == nil {
		return nil, &StoreError{Op: "find", Collection: collection, Err: errNotConfigured}
	}
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id.oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StoreError{Op: "find", Collection: collection, Err: err}
	}
	return normalizeID(doc), nil
}

// SetField partially updates one field of one document, ErrNotFound when the
// identifier matches nothing. No other field is touched.
func (s *Store) SetField(ctx context.Context, collection string, id DocumentID, field string, value any) error {
	if s.db == nil {
		return &StoreError{Op: "update", Collection: collection, Err: errNotConfigured}
	}
	res, err := s.db.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": id.oid},
		bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return &StoreError{Op: "update", Collection: collection, Err: err}
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// normalizeID rewrites the binary _id into its external string form. Applied
// to every document on its way out of the store.
func normalizeID(doc bson.M) bson.M {
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}
	return doc
}
