package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	availabilityerrors "paintly/internal/availability/errors"
	"paintly/pkg/config"
	mongotx "paintly/pkg/db/mongo"
	"paintly/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Slots"
)

type SlotRepository interface {
	Create(ctx context.Context, slot *model.Slot) error
	FindByID(ctx context.Context, id string) (*model.Slot, error)
	FindByPainter(ctx context.Context, painterID string) ([]*model.Slot, error)
	FindFreeContaining(ctx context.Context, start, end time.Time) ([]*model.Slot, error)
	FindFreeNear(ctx context.Context, windowStart, windowEnd time.Time, limit int) ([]*model.Slot, error)
	MarkBooked(ctx context.Context, slotID string) error
	Delete(ctx context.Context, slotID string) error
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoSlotRepository struct {
	cfg        *config.Config
	db         *mongo.Database
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoSlotRepository(cfg *config.Config) SlotRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoSlotRepository{
		cfg:        cfg,
		db:         db,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

// withTimeout wraps the context with a timeout unless we are already inside
// a transaction; a SessionContext cannot be wrapped without breaking
// transaction semantics.
func (r *mongoSlotRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoSlotRepository) Create(ctx context.Context, slot *model.Slot) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	slot.IsBooked = false
	slot.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, slot)
	if err != nil {
		return fmt.Errorf("failed to create slot: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		slot.ID = oid.Hex()
	}
	return nil
}

func (r *mongoSlotRepository) FindByID(ctx context.Context, id string) (*model.Slot, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", availabilityerrors.ErrInvalidID, id)
	}

	var slot model.Slot
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&slot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, availabilityerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find slot: %w", err)
	}

	return &slot, nil
}

func (r *mongoSlotRepository) FindByPainter(ctx context.Context, painterID string) ([]*model.Slot, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"painter_id": painterID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find painter slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []*model.Slot
	if err = cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}

	return slots, nil
}

// FindFreeContaining returns unbooked slots whose interval fully covers
// [start, end]. Ordering is left to the matcher.
func (r *mongoSlotRepository) FindFreeContaining(ctx context.Context, start, end time.Time) ([]*model.Slot, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"is_booked":  false,
		"start_time": bson.M{"$lte": start},
		"end_time":   bson.M{"$gte": end},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find containing slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []*model.Slot
	if err = cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}

	return slots, nil
}

// FindFreeNear returns unbooked slots overlapping [windowStart, windowEnd],
// start ascending, capped at limit.
func (r *mongoSlotRepository) FindFreeNear(ctx context.Context, windowStart, windowEnd time.Time, limit int) ([]*model.Slot, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"is_booked":  false,
		"start_time": bson.M{"$lt": windowEnd},
		"end_time":   bson.M{"$gt": windowStart},
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "start_time", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []*model.Slot
	if err = cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}

	return slots, nil
}

// MarkBooked flips is_booked with a conditional update that only matches a
// still-free document. A concurrent booking that got there first leaves
// nothing to match and the caller observes ErrAlreadyBooked.
func (r *mongoSlotRepository) MarkBooked(ctx context.Context, slotID string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return fmt.Errorf("%w: %s", availabilityerrors.ErrInvalidID, slotID)
	}

	filter := bson.M{"_id": objectID, "is_booked": false}
	update := bson.M{"$set": bson.M{"is_booked": true}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark slot booked: %w", err)
	}

	if result.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": objectID})
		if err != nil {
			return fmt.Errorf("failed to check slot existence: %w", err)
		}
		if count == 0 {
			return availabilityerrors.ErrNotFound
		}
		return availabilityerrors.ErrAlreadyBooked
	}

	return nil
}

func (r *mongoSlotRepository) Delete(ctx context.Context, slotID string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return fmt.Errorf("%w: %s", availabilityerrors.ErrInvalidID, slotID)
	}

	// Booked slots are never deleted; the filter makes the rule hold even
	// if a booking lands between the service's ownership check and here.
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID, "is_booked": false})
	if err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}

	if result.DeletedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": objectID})
		if err != nil {
			return fmt.Errorf("failed to check slot existence: %w", err)
		}
		if count == 0 {
			return availabilityerrors.ErrNotFound
		}
		return availabilityerrors.ErrAlreadyBooked
	}

	return nil
}

func (r *mongoSlotRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
