package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"firststeps/internal/db"
)

// counterUserIndex is the _id of the counters document tracking the
// monotonically increasing user_index sequence.
const counterUserIndex = "user_index"

// User represents a document in the users collection. The Mongo _id is
// never decoded or exposed; the short hex ID is the public identifier.
type User struct {
	ID        string    `bson:"id"`
	UserIndex int64     `bson:"user_index"`
	FullName  string    `bson:"full_name"`
	Email     string    `bson:"email"`
	CreatedAt time.Time `bson:"created_at"`
}

// UserStore is the MongoDB-backed implementation of UserStoreIface.
type UserStore struct {
	users    *mongo.Collection
	counters *mongo.Collection
}

func NewUserStore(database *mongo.Database) *UserStore {
	return &UserStore{
		users:    database.Collection(db.CollectionUsers),
		counters: database.Collection(db.CollectionCounters),
	}
}

// EnsureIndexes creates the unique indexes on id and user_index. CreateMany
// is a no-op for indexes that already exist, so this is safe to run on every
// startup.
func (s *UserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_id"),
		},
		{
			Keys:    bson.D{{Key: "user_index", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_user_index"),
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

// NextUserIndex atomically increments and returns the user_index sequence.
// The counter document is created on first use.
func (s *UserStore) NextUserIndex(ctx context.Context) (int64, error) {
	res := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": counterUserIndex},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("next user index: %w", err)
	}
	return doc.Seq, nil
}

// Create inserts a new user with a fresh short hex ID and the next value of
// the user_index sequence. On an ID collision it regenerates the ID and
// retries exactly once.
func (s *UserStore) Create(ctx context.Context, fullName, email string) (*User, error) {
	seq, err := s.NextUserIndex(ctx)
	if err != nil {
		return nil, err
	}

	id, err := NewShortHexID()
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:        id,
		UserIndex: seq,
		FullName:  fullName,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.users.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		if u.ID, err = NewShortHexID(); err != nil {
			return nil, err
		}
		_, err = s.users.InsertOne(ctx, u)
	}
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return s.GetByID(ctx, u.ID)
}

// GetByID returns the user matching id, or ErrNotFound.
func (s *UserStore) GetByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := s.users.FindOne(ctx,
		bson.M{"id": id},
		options.FindOne().SetProjection(bson.M{"_id": 0}),
	).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns up to limit users with user_index greater than afterIndex,
// ordered by user_index ascending.
func (s *UserStore) List(ctx context.Context, afterIndex int64, limit int) ([]*User, error) {
	cur, err := s.users.Find(ctx,
		bson.M{"user_index": bson.M{"$gt": afterIndex}},
		options.Find().
			SetSort(bson.D{{Key: "user_index", Value: 1}}).
			SetLimit(int64(limit)).
			SetProjection(bson.M{"_id": 0}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []*User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the total number of users.
func (s *UserStore) Count(ctx context.Context) (int64, error) {
	return s.users.CountDocuments(ctx, bson.M{})
}
