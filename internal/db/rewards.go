package db

import (
	"context"
	"errors"
	"time"

	models "github.com/webdev-zad/laundry-system-be/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (d *LaundryDB) GetReward(ctx context.Context, rewardID string) (models.Reward, error) {
	var reward models.Reward
	id, err := objectID(rewardID, models.ErrRewardNotFound)
	if err != nil {
		return reward, err
	}
	err = d.db.Collection(collRewards).FindOne(ctx, bson.M{"_id": id}).Decode(&reward)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return reward, models.ErrRewardNotFound
	}
	return reward, storeErr(err)
}

// Активные награды по возрастанию стоимости; при равной стоимости - в порядке добавления
func (d *LaundryDB) ActiveRewards(ctx context.Context) ([]models.Reward, error) {
	opts := options.Find().SetSort(bson.D{{Key: "pointsCost", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := d.db.Collection(collRewards).Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	var rewards []models.Reward
	for cur.Next(ctx) {
		var reward models.Reward
		err := cur.Decode(&reward)
		if err != nil {
			return nil, err
		}
		rewards = append(rewards, reward)
	}
	return rewards, storeErr(cur.Err())
}

// Создать/обновить награду (по имени)
func (d *LaundryDB) SaveReward(ctx context.Context, reward models.Reward) (models.Reward, error) {
	if reward.CreatedAt.IsZero() {
		reward.CreatedAt = time.Now().UTC()
	}
	update := bson.M{
		"$set": bson.M{
			"description": reward.Description,
			"pointsCost":  reward.PointsCost,
			"type":        reward.Type,
			"expiryDays":  reward.ExpiryDays,
			"isActive":    reward.IsActive,
		},
		"$setOnInsert": bson.M{"createdAt": reward.CreatedAt},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var saved models.Reward
	err := d.db.Collection(collRewards).FindOneAndUpdate(ctx, bson.M{"name": reward.Name}, update, opts).Decode(&saved)
	if err != nil {
		d.logError("Save reward", "SaveReward", err)
		return saved, storeErr(err)
	}
	return saved, nil
}
