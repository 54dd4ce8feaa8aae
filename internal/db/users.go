package db

import (
	"context"
	"errors"
	"strings"
	"time"

	models "github.com/webdev-zad/laundry-system-be/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (d *LaundryDB) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	oid, err := objectID(id, models.ErrUserNotFound)
	if err != nil {
		return user, err
	}
	err = d.db.Collection(collUsers).FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user, models.ErrUserNotFound
	}
	return user, storeErr(err)
}

func (d *LaundryDB) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := d.db.Collection(collUsers).FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user, models.ErrUserNotFound
	}
	return user, storeErr(err)
}

func (d *LaundryDB) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.Email = strings.ToLower(user.Email)
	user.CreatedAt = time.Now().UTC()
	_, err := d.db.Collection(collUsers).InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return models.User{}, models.ErrUserExists
	}
	if err != nil {
		d.logError("Insert user", "CreateUser", err)
		return models.User{}, storeErr(err)
	}
	return user, nil
}

func (d *LaundryDB) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	update := bson.M{"$set": bson.M{
		"name":     user.Name,
		"email":    strings.ToLower(user.Email),
		"password": user.Password,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.User
	err := d.db.Collection(collUsers).FindOneAndUpdate(ctx, bson.M{"_id": user.ID}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return updated, models.ErrUserNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return updated, models.ErrUserExists
	}
	return updated, storeErr(err)
}

func (d *LaundryDB) ListUsers(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := d.db.Collection(collUsers).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	var users []models.User
	err = cur.All(ctx, &users)
	if err != nil {
		return nil, storeErr(err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (d *LaundryDB) DeleteUser(ctx context.Context, id string) error {
	oid, err := objectID(id, models.ErrUserNotFound)
	if err != nil {
		return err
	}
	res, err := d.db.Collection(collUsers).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return storeErr(err)
	}
	if res.DeletedCount == 0 {
		return models.ErrUserNotFound
	}
	return nil
}
