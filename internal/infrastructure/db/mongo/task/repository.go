package task

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"task-manager-api/internal/domain/task"
	"task-manager-api/internal/domain/user"
	mongodb "task-manager-api/internal/infrastructure/db/mongo"
)

type Repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) task.Repository {
	return &Repository{col: db.Collection(mongodb.CollectionTasks)}
}

func (r *Repository) Create(ctx context.Context, req task.Task) (*task.Task, error) {
	now := time.Now().UTC()
	m := toDBModel(req)
	m.CreatedAt = now
	m.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = res.InsertedID.(task.ID)

	return fromDBModel(m), nil
}

func (r *Repository) FetchByID(ctx context.Context, id task.ID) (*task.Task, error) {
	t := new(Task)
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(t), nil
}

func (r *Repository) Update(ctx context.Context, id task.ID, upd task.Update) (*task.Task, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Status != nil {
		set["status"] = string(*upd.Status)
	}

	t := new(Task)
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(t), nil
}

func (r *Repository) Delete(ctx context.Context, id task.ID) (*task.Task, error) {
	t := new(Task)
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(t), nil
}

func (r *Repository) FetchWithOwners(ctx context.Context) ([]*task.WithOwner, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         mongodb.CollectionUsers,
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		{{Key: "$project", Value: bson.M{
			"title":        1,
			"description":  1,
			"status":       1,
			"user_id":      1,
			"assign_to":    1,
			"deadline":     1,
			"created_at":   1,
			"updated_at":   1,
			"owner._id":    1,
			"owner.name":   1,
			"owner.age":    1,
			"owner.gender": 1,
			"owner.phone":  1,
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*task.WithOwner
	for cur.Next(ctx) {
		t := new(taskWithOwner)
		if err = cur.Decode(t); err != nil {
			return nil, err
		}
		out = append(out, fromDBModelWithOwner(t))
	}
	if err = cur.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *Repository) FetchOverdue(ctx context.Context, now time.Time) (task.Tasks, error) {
	cur, err := r.col.Find(ctx, bson.M{
		"status":   bson.M{"$ne": string(task.StatusDone)},
		"deadline": bson.M{"$lt": now},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ts Tasks
	for cur.Next(ctx) {
		t := new(Task)
		if err = cur.Decode(t); err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	if err = cur.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(ts), nil
}

func (r *Repository) DeleteByOwner(ctx context.Context, ownerID user.ID) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"user_id": ownerID})
	if err != nil {
		return 0, err
	}

	return res.DeletedCount, nil
}
