package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"healthbridge-api/internal/models"
)

// Mongo implements Store on top of a MongoDB database.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

// EnsureIndexes creates the unique email indexes the insert paths rely on.
// Without them two concurrent requests could both pass the find-then-insert
// check with the same address.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	indexes := map[string][]mongo.IndexModel{
		"superadmins": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"businessowners": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "companyEmail", Value: 1}}, Options: unique},
		},
	}
	for coll, idx := range indexes {
		if _, err := m.db.Collection(coll).Indexes().CreateMany(ctx, idx); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mongo) FindAdminByEmail(ctx context.Context, email string) (*models.SuperAdmin, error) {
	var admin models.SuperAdmin
	err := m.db.Collection("superadmins").FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &admin, nil
}

func (m *Mongo) InsertAdmin(ctx context.Context, admin *models.SuperAdmin) error {
	_, err := m.db.Collection("superadmins").InsertOne(ctx, admin)
	return mapInsertErr(err)
}

func (m *Mongo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := m.db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &user, nil
}

func (m *Mongo) InsertUser(ctx context.Context, user *models.User) error {
	_, err := m.db.Collection("users").InsertOne(ctx, user)
	return mapInsertErr(err)
}

func (m *Mongo) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := m.db.Collection("users").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (m *Mongo) FindOwnerByEmail(ctx context.Context, email string) (*models.BusinessOwner, error) {
	var owner models.BusinessOwner
	err := m.db.Collection("businessowners").FindOne(ctx, bson.M{"email": email}).Decode(&owner)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &owner, nil
}

func (m *Mongo) FindOwnerByID(ctx context.Context, id primitive.ObjectID) (*models.BusinessOwner, error) {
	var owner models.BusinessOwner
	err := m.db.Collection("businessowners").FindOne(ctx, bson.M{"_id": id}).Decode(&owner)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &owner, nil
}

func (m *Mongo) InsertOwner(ctx context.Context, owner *models.BusinessOwner) error {
	_, err := m.db.Collection("businessowners").InsertOne(ctx, owner)
	return mapInsertErr(err)
}

func (m *Mongo) UpdatePhlebotomists(ctx context.Context, id primitive.ObjectID, roster []models.Phlebotomist) error {
	result, err := m.db.Collection("businessowners").UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"phlebotomists": roster}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) ListOwners(ctx context.Context) ([]models.BusinessOwner, error) {
	cursor, err := m.db.Collection("businessowners").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	owners := []models.BusinessOwner{}
	if err := cursor.All(ctx, &owners); err != nil {
		return nil, err
	}
	return owners, nil
}

func (m *Mongo) InsertService(ctx context.Context, svc *models.Service) error {
	_, err := m.db.Collection("services").InsertOne(ctx, svc)
	return mapInsertErr(err)
}

func (m *Mongo) ListServices(ctx context.Context) ([]models.Service, error) {
	cursor, err := m.db.Collection("services").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func mapFindErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func mapInsertErr(err error) error {
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}
