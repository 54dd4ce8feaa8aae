package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	models "github.com/webdev-zad/laundry-system-be/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	collUsers     = "users"
	collCustomers = "customers"
	collTasks     = "tasks"
	collAccounts  = "loyaltyAccounts"
	collHistory   = "loyaltyPointsHistory"
	collRewards   = "loyaltyRewards"
	collRedeemed  = "redeemedRewards"
)

// Хранилище прачечной в MongoDB.
// Транзакции требуют replica set.
type LaundryDB struct {
	mgo    *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

func NewLaundryDB(ctx context.Context, uri string, database string, logger *zap.Logger) (*LaundryDB, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo uri is empty")
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	d := &LaundryDB{client, client.Database(database), logger}
	err = d.ensureIndexes(ctx)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return d, nil
}

func (d *LaundryDB) Close(ctx context.Context) error {
	return d.mgo.Disconnect(ctx)
}

func (d *LaundryDB) Ping(ctx context.Context) error {
	return d.mgo.Ping(ctx, nil)
}

func (d *LaundryDB) ensureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		collUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collAccounts: {
			{Keys: bson.D{{Key: "customerId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collHistory: {
			{Keys: bson.D{{Key: "loyaltyAccountId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		collRedeemed: {
			{Keys: bson.D{{Key: "loyaltyAccountId", Value: 1}, {Key: "redeemedAt", Value: -1}}},
			// запросы из очереди, у HTTP-списаний поля нет
			{Keys: bson.D{{Key: "redeemId", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
		},
		collRewards: {
			{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "pointsCost", Value: 1}}},
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collTasks: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "dueDate", Value: 1}}},
			{Keys: bson.D{{Key: "customerId", Value: 1}}},
			{Keys: bson.D{{Key: "assignedToId", Value: 1}}},
		},
	}
	for coll, idx := range indexes {
		_, err := d.db.Collection(coll).Indexes().CreateMany(ctx, idx)
		if err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}

// Выполнить fn в транзакции
func (d *LaundryDB) withTx(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	sess, err := d.mgo.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// Ошибки сети и таймауты - хранилище недоступно
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, mongo.ErrClientDisconnected) {
		return fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	return err
}

// Некорректный идентификатор равнозначен отсутствию документа
func objectID(id string, notFound error) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, notFound
	}
	return oid, nil
}

func (d *LaundryDB) logError(msg string, service string, err error) {
	d.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}
