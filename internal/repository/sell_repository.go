package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sellapi/internal/cache"
	"sellapi/internal/db"
	"sellapi/internal/errors"
	"sellapi/internal/model"
)

const (
	sellCacheKeyPrefix = "sell:"
	sellCacheTTL       = 5 * time.Minute
)

// SellRepository defines account persistence operations. Reads come in two
// explicit projections: the default one never includes the password hash,
// the WithPassword variants do.
type SellRepository interface {
	Create(ctx context.Context, sell *model.Sell) error
	FindByID(ctx context.Context, id string) (*model.Sell, error)
	FindByIDWithPassword(ctx context.Context, id string) (*model.Sell, error)
	FindByEmail(ctx context.Context, email string) (*model.Sell, error)
	FindByEmailWithPassword(ctx context.Context, email string) (*model.Sell, error)
	FindByResetToken(ctx context.Context, tokenHash string) (*model.Sell, error)
	List(ctx context.Context) ([]model.Sell, error)
	UpdateProfile(ctx context.Context, id string, update model.ProfileUpdate) error
	UpdateRole(ctx context.Context, id string, update model.AdminUpdate) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	SetResetToken(ctx context.Context, id string, tokenHash string, expire time.Time) error
	ClearResetToken(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type sellRepository struct {
	collection *mongo.Collection
	cache      *cache.Client
}

// NewSellRepository creates a Mongo-backed account repository. The cache may
// be nil; lookups then always hit the database.
func NewSellRepository(database *mongo.Database, cacheClient *cache.Client) SellRepository {
	return &sellRepository{
		collection: database.Collection(db.SellCollection),
		cache:      cacheClient,
	}
}

// withoutPassword excludes the credential fields from a read.
var withoutPassword = bson.M{"password": 0}

// Create inserts a new account. A duplicate email surfaces as ErrEmailTaken.
func (r *sellRepository) Create(ctx context.Context, sell *model.Sell) error {
	now := time.Now()
	sell.CreatedAt = now
	sell.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, sell)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.ErrEmailTaken
		}
		return fmt.Errorf("insert sell: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		sell.ID = oid
	}
	return nil
}

// FindByID finds an account by id using the public projection, read-through
// cached.
func (r *sellRepository) FindByID(ctx context.Context, id string) (*model.Sell, error) {
	if data, _ := r.cache.Get(ctx, sellCacheKeyPrefix+id); data != nil {
		var sell model.Sell
		if err := json.Unmarshal(data, &sell); err == nil {
			return &sell, nil
		}
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.ErrSellNotFound
	}

	var sell model.Sell
	err = r.collection.FindOne(ctx, bson.M{"_id": oid},
		options.FindOne().SetProjection(withoutPassword)).Decode(&sell)
	if err == mongo.ErrNoDocuments {
		return nil, errors.ErrSellNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find sell by id: %w", err)
	}

	if data, err := json.Marshal(&sell); err == nil {
		_ = r.cache.Set(ctx, sellCacheKeyPrefix+id, data, sellCacheTTL)
	}
	return &sell, nil
}

// FindByIDWithPassword finds an account by id including the password hash.
// Never cached.
func (r *sellRepository) FindByIDWithPassword(ctx context.Context, id string) (*model.Sell, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.ErrSellNotFound
	}

	var sell model.Sell
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&sell)
	if err == mongo.ErrNoDocuments {
		return nil, errors.ErrSellNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find sell by id: %w", err)
	}
	return &sell, nil
}

// FindByEmail finds an account by email using the public projection.
func (r *sellRepository) FindByEmail(ctx context.Context, email string) (*model.Sell, error) {
	var sell model.Sell
	err := r.collection.FindOne(ctx, bson.M{"email": email},
		options.FindOne().SetProjection(withoutPassword)).Decode(&sell)
	if err == mongo.ErrNoDocuments {
		return nil, errors.ErrSellNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find sell by email: %w", err)
	}
	return &sell, nil
}

// FindByEmailWithPassword finds an account by email including the password hash.
func (r *sellRepository) FindByEmailWithPassword(ctx context.Context, email string) (*model.Sell, error) {
	var sell model.Sell
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&sell)
	if err == mongo.ErrNoDocuments {
		return nil, errors.ErrSellNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find sell by email: %w", err)
	}
	return &sell, nil
}

// FindByResetToken finds the account whose stored reset-token hash matches
// and whose expiry is still in the future.
func (r *sellRepository) FindByResetToken(ctx context.Context, tokenHash string) (*model.Sell, error) {
	filter := bson.M{
		"reset_password_token":  tokenHash,
		"reset_password_expire": bson.M{"$gt": time.Now()},
	}

	var sell model.Sell
	err := r.collection.FindOne(ctx, filter,
		options.FindOne().SetProjection(withoutPassword)).Decode(&sell)
	if err == mongo.ErrNoDocuments {
		return nil, errors.ErrInvalidResetToken
	}
	if err != nil {
		return nil, fmt.Errorf("find sell by reset token: %w", err)
	}
	return &sell, nil
}

// List returns all accounts using the public projection.
func (r *sellRepository) List(ctx context.Context) ([]model.Sell, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetProjection(withoutPassword))
	if err != nil {
		return nil, fmt.Errorf("list sells: %w", err)
	}
	defer cursor.Close(ctx)

	var sells []model.Sell
	if err := cursor.All(ctx, &sells); err != nil {
		return nil, fmt.Errorf("decode sells: %w", err)
	}
	return sells, nil
}

// UpdateProfile applies the self-service update.
func (r *sellRepository) UpdateProfile(ctx context.Context, id string, update model.ProfileUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.ErrSellNotFound
	}

	fields := bson.M{
		"name":       update.Name,
		"email":      update.Email,
		"updated_at": time.Now(),
	}
	if update.Avatar != nil {
		fields["avatar"] = update.Avatar
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.ErrEmailTaken
		}
		return fmt.Errorf("update profile: %w", err)
	}
	return r.cache.Delete(ctx, sellCacheKeyPrefix+id)
}

// UpdateRole applies the admin update. There is deliberately no existence
// check: an unknown id is a silent no-op.
func (r *sellRepository) UpdateRole(ctx context.Context, id string, update model.AdminUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.ErrSellNotFound
	}

	fields := bson.M{
		"name":       update.Name,
		"email":      update.Email,
		"gender":     update.Gender,
		"role":       update.Role,
		"updated_at": time.Now(),
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.ErrEmailTaken
		}
		return fmt.Errorf("update role: %w", err)
	}
	return r.cache.Delete(ctx, sellCacheKeyPrefix+id)
}

// UpdatePassword stores a new password hash and clears any pending reset
// token in the same write.
func (r *sellRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.ErrSellNotFound
	}

	update := bson.M{
		"$set": bson.M{
			"password":   passwordHash,
			"updated_at": time.Now(),
		},
		"$unset": bson.M{
			"reset_password_token":  "",
			"reset_password_expire": "",
		},
	}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return r.cache.Delete(ctx, sellCacheKeyPrefix+id)
}

// SetResetToken stores the hashed reset token and its expiry. Only the reset
// fields are written, so incomplete profiles cannot block the flow.
func (r *sellRepository) SetResetToken(ctx context.Context, id string, tokenHash string, expire time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.ErrSellNotFound
	}

	update := bson.M{"$set": bson.M{
		"reset_password_token":  tokenHash,
		"reset_password_expire": expire,
	}}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update); err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	return r.cache.Delete(ctx, sellCacheKeyPrefix+id)
}

// ClearResetToken removes the reset fields.
func (r *sellRepository) ClearResetToken(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.ErrSellNotFound
	}

	update := bson.M{"$unset": bson.M{
		"reset_password_token":  "",
		"reset_password_expire": "",
	}}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update); err != nil {
		return fmt.Errorf("clear reset token: %w", err)
	}
	return r.cache.Delete(ctx, sellCacheKeyPrefix+id)
}

// Delete removes an account, failing with ErrSellNotFound when absent.
func (r *sellRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.ErrSellNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete sell: %w", err)
	}
	if result.DeletedCount == 0 {
		return errors.ErrSellNotFound
	}
	return r.cache.Delete(ctx, sellCacheKeyPrefix+id)
}
