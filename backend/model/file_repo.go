package model

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"trifile/backend/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const filesCollection = "files"

const connectTimeout = 5 * time.Second

var (
	// ErrNotFound is returned for lookups with a uuid that was never issued.
	ErrNotFound = errors.New("file record not found")
	// ErrDuplicateUUID is returned when an insert collides on the unique uuid index.
	ErrDuplicateUUID = errors.New("duplicate file uuid")
	// ErrUnavailable covers connection and timeout failures; callers may retry.
	ErrUnavailable = errors.New("metadata repository unavailable")
)

// FileRepo persists File records in a MongoDB collection with a unique index
// on uuid. The connection is established lazily on first use.
type FileRepo struct {
	uri    string
	dbName string

	mu     sync.Mutex
	client *mongo.Client
}

func NewFileRepo(uri, dbName string) *FileRepo {
	return &FileRepo{uri: uri, dbName: dbName}
}

// Init eagerly establishes the connection and ensures indexes. Failure is not
// fatal: every operation retries the connection through files().
func (r *FileRepo) Init(ctx context.Context) error {
	_, err := r.files(ctx)
	return err
}

// files returns the files collection, connecting on first use. The mutex keeps
// concurrent first callers from creating duplicate clients; a failed attempt
// leaves the handle nil so a later operation retries.
func (r *FileRepo) files(ctx context.Context) (*mongo.Collection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.client != nil {
		return r.client.Database(r.dbName).Collection(filesCollection), nil
	}

	opts := options.Client().
		ApplyURI(r.uri).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	coll := client.Database(r.dbName).Collection(filesCollection)
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "uuid", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := coll.Indexes().CreateOne(ctx, index); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	r.client = client
	common.SysLog("connected to MongoDB, database: " + r.dbName)
	return coll, nil
}

// Insert stores a new record. The unique index on uuid is the sole guard
// against concurrent inserts with colliding identifiers.
func (r *FileRepo) Insert(ctx context.Context, f *File) error {
	coll, err := r.files(ctx)
	if err != nil {
		return err
	}
	res, err := coll.InsertOne(ctx, f)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateUUID, f.UUID)
		}
		return wrapRepoErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		f.ID = oid
	}
	return nil
}

// FindByUUID looks up one record. The payload field is excluded unless
// requested, so metadata reads never haul blob bytes over the wire.
func (r *FileRepo) FindByUUID(ctx context.Context, fileUUID string, includePayload bool) (*File, error) {
	coll, err := r.files(ctx)
	if err != nil {
		return nil, err
	}
	opts := options.FindOne()
	if !includePayload {
		opts.SetProjection(bson.M{"data": 0})
	}
	var f File
	err = coll.FindOne(ctx, bson.M{"uuid": fileUUID}, opts).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	return &f, nil
}

// ListAll returns every record, newest first, payloads excluded.
func (r *FileRepo) ListAll(ctx context.Context) ([]*File, error) {
	coll, err := r.files(ctx)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"data": 0})
	cur, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	defer cur.Close(ctx)
	files := []*File{}
	if err := cur.All(ctx, &files); err != nil {
		return nil, wrapRepoErr(err)
	}
	return files, nil
}

func (r *FileRepo) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.client == nil {
		return nil
	}
	err := r.client.Disconnect(ctx)
	r.client = nil
	return err
}

func wrapRepoErr(err error) error {
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
