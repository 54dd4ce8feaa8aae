package db

import (
	"context"
	"errors"
	"time"

	models "github.com/webdev-zad/laundry-system-be/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Клиенты с количеством задач
func (d *LaundryDB) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collTasks,
			"localField":   "_id",
			"foreignField": "customerId",
			"as":           "tasks",
		}}},
		{{Key: "$set", Value: bson.M{"taskCount": bson.M{"$size": "$tasks"}}}},
		{{Key: "$project", Value: bson.M{"tasks": 0}}},
	}
	cur, err := d.db.Collection(collCustomers).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	customers := []models.Customer{}
	for cur.Next(ctx) {
		var c models.Customer
		err := cur.Decode(&c)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, storeErr(cur.Err())
}

func (d *LaundryDB) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	var customer models.Customer
	oid, err := objectID(id, models.ErrCustomerNotFound)
	if err != nil {
		return customer, err
	}
	err = d.db.Collection(collCustomers).FindOne(ctx, bson.M{"_id": oid}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return customer, models.ErrCustomerNotFound
	}
	return customer, storeErr(err)
}

func (d *LaundryDB) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	now := time.Now().UTC()
	if customer.ID.IsZero() {
		customer.ID = primitive.NewObjectID()
	}
	customer.CreatedAt = now
	customer.UpdatedAt = now
	customer.TaskCount = 0
	_, err := d.db.Collection(collCustomers).InsertOne(ctx, customer)
	if err != nil {
		d.logError("Insert customer", "CreateCustomer", err)
		return models.Customer{}, storeErr(err)
	}
	return customer, nil
}

func (d *LaundryDB) UpdateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	update := bson.M{"$set": bson.M{
		"name":       customer.Name,
		"email":      customer.Email,
		"phone":      customer.Phone,
		"roomNumber": customer.RoomNumber,
		"updatedAt":  time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Customer
	err := d.db.Collection(collCustomers).FindOneAndUpdate(ctx, bson.M{"_id": customer.ID}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return updated, models.ErrCustomerNotFound
	}
	return updated, storeErr(err)
}

// Удаление клиента без задач. Подсчет и удаление в одной транзакции.
func (d *LaundryDB) DeleteCustomer(ctx context.Context, id string) error {
	oid, err := objectID(id, models.ErrCustomerNotFound)
	if err != nil {
		return err
	}
	err = d.withTx(ctx, func(sc mongo.SessionContext) error {
		count, err := d.db.Collection(collTasks).CountDocuments(sc, bson.M{"customerId": oid})
		if err != nil {
			return err
		}
		if count > 0 {
			return models.ErrCustomerHasTasks
		}
		res, err := d.db.Collection(collCustomers).DeleteOne(sc, bson.M{"_id": oid})
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return models.ErrCustomerNotFound
		}
		return nil
	})
	return storeErr(err)
}
