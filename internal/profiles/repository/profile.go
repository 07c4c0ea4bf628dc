package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	profileserrors "paintly/internal/profiles/errors"
	"paintly/pkg/config"
	"paintly/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	PaintersCollection  = "Painters"
	CustomersCollection = "Customers"
)

type PainterRepository interface {
	Create(ctx context.Context, profile *model.PainterProfile) error
	FindByID(ctx context.Context, id string) (*model.PainterProfile, error)
	FindByUserID(ctx context.Context, userID string) (*model.PainterProfile, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, profile *model.CustomerProfile) error
	FindByUserID(ctx context.Context, userID string) (*model.CustomerProfile, error)
}

type mongoPainterRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoPainterRepository(cfg *config.Config) PainterRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoPainterRepository{
		cfg:        cfg,
		collection: db.Collection(PaintersCollection),
	}
}

func (r *mongoPainterRepository) Create(ctx context.Context, profile *model.PainterProfile) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	profile.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, profile)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return profileserrors.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create painter profile: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		profile.ID = oid.Hex()
	}
	return nil
}

func (r *mongoPainterRepository) FindByID(ctx context.Context, id string) (*model.PainterProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", profileserrors.ErrInvalidID, id)
	}

	var profile model.PainterProfile
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, profileserrors.ErrPainterNotFound
		}
		return nil, fmt.Errorf("failed to find painter profile: %w", err)
	}

	return &profile, nil
}

func (r *mongoPainterRepository) FindByUserID(ctx context.Context, userID string) (*model.PainterProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var profile model.PainterProfile
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, profileserrors.ErrPainterNotFound
		}
		return nil, fmt.Errorf("failed to find painter profile: %w", err)
	}

	return &profile, nil
}

type mongoCustomerRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoCustomerRepository(cfg *config.Config) CustomerRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoCustomerRepository{
		cfg:        cfg,
		collection: db.Collection(CustomersCollection),
	}
}

func (r *mongoCustomerRepository) Create(ctx context.Context, profile *model.CustomerProfile) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	profile.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, profile)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return profileserrors.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create customer profile: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		profile.ID = oid.Hex()
	}
	return nil
}

func (r *mongoCustomerRepository) FindByUserID(ctx context.Context, userID string) (*model.CustomerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var profile model.CustomerProfile
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, profileserrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer profile: %w", err)
	}

	return &profile, nil
}
