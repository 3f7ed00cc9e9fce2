package user

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"task-manager-api/internal/domain/user"
	mongodb "task-manager-api/internal/infrastructure/db/mongo"
)

var ErrEmailAlreadyExists = errors.New("email already exists")

type Repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) user.Repository {
	return &Repository{col: db.Collection(mongodb.CollectionUsers)}
}

func (r *Repository) FetchByID(ctx context.Context, id user.ID) (*user.User, error) {
	u := new(User)
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchByEmail(ctx context.Context, email string) (*user.User, error) {
	u := new(User)
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) Create(ctx context.Context, req user.User) (*user.User, error) {
	now := time.Now().UTC()
	m := toDBModel(req)
	m.CreatedAt = now
	m.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}
	m.ID = res.InsertedID.(user.ID)

	return fromDBModel(m), nil
}

func (r *Repository) MarkVerified(ctx context.Context, id user.ID) (*user.User, error) {
	return r.findAndSet(ctx, id, bson.M{"is_verified": true})
}

func (r *Repository) UpdatePassword(ctx context.Context, id user.ID, passwordHash string) (*user.User, error) {
	return r.findAndSet(ctx, id, bson.M{"password": passwordHash})
}

func (r *Repository) ApplyProfile(ctx context.Context, id user.ID, upd user.ProfileUpdate) (*user.User, error) {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Age != nil {
		set["age"] = *upd.Age
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}

	return r.findAndSet(ctx, id, set)
}

func (r *Repository) MarkDeleted(ctx context.Context, id user.ID) (*user.User, error) {
	return r.findAndSet(ctx, id, bson.M{"is_deleted": true})
}

func (r *Repository) Delete(ctx context.Context, id user.ID) (*user.User, error) {
	u := new(User)
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

// findAndSet applies a partial $set and returns the updated record, the
// storage-side equivalent of "patch then read back".
func (r *Repository) findAndSet(ctx context.Context, id user.ID, set bson.M) (*user.User, error) {
	set["updated_at"] = time.Now().UTC()

	u := new(User)
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}
