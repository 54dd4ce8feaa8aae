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

// Счет клиента
func (d *LaundryDB) GetAccount(ctx context.Context, customerID string) (models.LoyaltyAccount, error) {
	var account models.LoyaltyAccount
	cid, err := objectID(customerID, models.ErrAccountNotFound)
	if err != nil {
		return account, err
	}
	err = d.db.Collection(collAccounts).FindOne(ctx, bson.M{"customerId": cid}).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return account, models.ErrAccountNotFound
	}
	return account, storeErr(err)
}

// Создание счета. Уникальный индекс по customerId и $setOnInsert
// делают вызов идемпотентным при гонке.
func (d *LaundryDB) CreateAccount(ctx context.Context, customerID string, joinDate time.Time) (models.LoyaltyAccount, error) {
	var account models.LoyaltyAccount
	cid, err := objectID(customerID, models.ErrCustomerNotFound)
	if err != nil {
		return account, err
	}
	update := bson.M{"$setOnInsert": bson.M{
		"customerId":     cid,
		"points":         int64(0),
		"lifetimePoints": int64(0),
		"tier":           models.TierBronze,
		"joinDate":       joinDate,
		"version":        int64(0),
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err = d.db.Collection(collAccounts).FindOneAndUpdate(ctx, bson.M{"customerId": cid}, update, opts).Decode(&account)
	if mongo.IsDuplicateKeyError(err) {
		// параллельный upsert успел вставить документ
		return d.GetAccount(ctx, customerID)
	}
	if err != nil {
		d.logError("Create account", "CreateAccount", err)
		return account, storeErr(err)
	}
	return account, nil
}

// Обновление счета с проверкой версии
func (d *LaundryDB) updateAccount(ctx context.Context, account models.LoyaltyAccount) error {
	filter := bson.M{"_id": account.ID, "version": account.Version}
	update := bson.M{
		"$set": bson.M{
			"points":         account.Points,
			"lifetimePoints": account.LifetimePoints,
			"tier":           account.Tier,
		},
		"$inc": bson.M{"version": 1},
	}
	res, err := d.db.Collection(collAccounts).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrVersionConflict
	}
	return nil
}

// Начисление: счет и запись журнала в одной транзакции
func (d *LaundryDB) CommitEarn(ctx context.Context, account models.LoyaltyAccount, entry models.PointsHistory) (models.LoyaltyAccount, error) {
	entry.AccountID = account.ID
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	err := d.withTx(ctx, func(sc mongo.SessionContext) error {
		err := d.updateAccount(sc, account)
		if err != nil {
			return err
		}
		_, err = d.db.Collection(collHistory).InsertOne(sc, entry)
		return err
	})
	if err != nil {
		if !errors.Is(err, models.ErrVersionConflict) {
			d.logError("Commit earn", "CommitEarn", err)
		}
		return models.LoyaltyAccount{}, storeErr(err)
	}
	account.Version++
	return account, nil
}

// Списание: награда, счет и запись журнала в одной транзакции
func (d *LaundryDB) CommitRedemption(ctx context.Context, account models.LoyaltyAccount, redeemed models.RedeemedReward, entry models.PointsHistory) (models.RedeemedReward, error) {
	entry.AccountID = account.ID
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	redeemed.AccountID = account.ID
	if redeemed.ID.IsZero() {
		redeemed.ID = primitive.NewObjectID()
	}
	// награда хранится ссылкой, не копией
	reward := redeemed.Reward
	redeemed.Reward = nil

	err := d.withTx(ctx, func(sc mongo.SessionContext) error {
		err := d.updateAccount(sc, account)
		if err != nil {
			return err
		}
		_, err = d.db.Collection(collRedeemed).InsertOne(sc, redeemed)
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrRedeemProcessed
		}
		if err != nil {
			return err
		}
		_, err = d.db.Collection(collHistory).InsertOne(sc, entry)
		return err
	})
	if err != nil {
		if !errors.Is(err, models.ErrConflict) {
			d.logError("Commit redemption", "CommitRedemption", err)
		}
		return models.RedeemedReward{}, storeErr(err)
	}
	redeemed.Reward = reward
	return redeemed, nil
}

// Награда, полученная по запросу из очереди
func (d *LaundryDB) FindRedemption(ctx context.Context, redeemID string) (models.RedeemedReward, error) {
	var redeemed models.RedeemedReward
	if redeemID == "" {
		return redeemed, models.ErrRedeemNotFound
	}
	err := d.db.Collection(collRedeemed).FindOne(ctx, bson.M{"redeemId": redeemID}).Decode(&redeemed)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return redeemed, models.ErrRedeemNotFound
	}
	return redeemed, storeErr(err)
}

// Полученные награды, новые первыми
func (d *LaundryDB) RedeemedRewards(ctx context.Context, accountID primitive.ObjectID) ([]models.RedeemedReward, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"loyaltyAccountId": accountID}}},
		{{Key: "$sort", Value: bson.D{{Key: "redeemedAt", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collRewards,
			"localField":   "rewardId",
			"foreignField": "_id",
			"as":           "reward",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$reward", "preserveNullAndEmptyArrays": true}}},
	}
	cur, err := d.db.Collection(collRedeemed).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	rewards := []models.RedeemedReward{}
	for cur.Next(ctx) {
		var r models.RedeemedReward
		err := cur.Decode(&r)
		if err != nil {
			return nil, err
		}
		rewards = append(rewards, r)
	}
	return rewards, storeErr(cur.Err())
}

// Журнал баллов, новые первыми
func (d *LaundryDB) History(ctx context.Context, accountID primitive.ObjectID) ([]models.PointsHistory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := d.db.Collection(collHistory).Find(ctx, bson.M{"loyaltyAccountId": accountID}, opts)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	var history []models.PointsHistory
	err = cur.All(ctx, &history)
	if err != nil {
		return nil, storeErr(err)
	}
	if history == nil {
		history = []models.PointsHistory{}
	}
	return history, nil
}
