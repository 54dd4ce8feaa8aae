package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// Пороги уровней, проверяются по убыванию
var tierThresholds = []struct {
	Min  int64
	Tier Tier
}{
	{1000, TierPlatinum},
	{500, TierGold},
	{200, TierSilver},
}

// Уровень по накопленным за все время баллам
func TierFor(lifetimePoints int64) Tier {
	for _, t := range tierThresholds {
		if lifetimePoints >= t.Min {
			return t.Tier
		}
	}
	return TierBronze
}

type HistoryType string

const (
	HistoryEarned   HistoryType = "earned"
	HistoryRedeemed HistoryType = "redeemed"
)

type RewardType string

const (
	RewardDiscount    RewardType = "discount"
	RewardFreeService RewardType = "freeService"
	RewardGift        RewardType = "gift"
)

func (t RewardType) Valid() bool {
	switch t {
	case RewardDiscount, RewardFreeService, RewardGift:
		return true
	}
	return false
}

// Счет программы лояльности
type LoyaltyAccount struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID     primitive.ObjectID `bson:"customerId" json:"customerId"`
	Points         int64              `bson:"points" json:"points"`                 // доступный баланс
	LifetimePoints int64              `bson:"lifetimePoints" json:"lifetimePoints"` // всего начислено
	Tier           Tier               `bson:"tier" json:"tier"`
	JoinDate       time.Time          `bson:"joinDate" json:"joinDate"`
	Version        int64              `bson:"version" json:"-"`
}

// Сколько еще можно начислить без переполнения.
// lifetimePoints >= points, поэтому проверки по lifetimePoints достаточно.
func (a LoyaltyAccount) EarnLimit() int64 {
	return math.MaxInt64 - a.LifetimePoints
}

// Начисление: новый баланс и уровень, сам счет не меняется
func (a LoyaltyAccount) Earn(amount int64) LoyaltyAccount {
	a.Points += amount
	a.LifetimePoints += amount
	a.Tier = TierFor(a.LifetimePoints)
	return a
}

// Списание: уровень и lifetimePoints не меняются
func (a LoyaltyAccount) Spend(cost int64) (LoyaltyAccount, error) {
	if a.Points < cost {
		return a, ErrInsufficientPoints
	}
	a.Points -= cost
	return a, nil
}

// Запись истории баллов
type PointsHistory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AccountID   primitive.ObjectID `bson:"loyaltyAccountId" json:"loyaltyAccountId"`
	Points      int64              `bson:"points" json:"points"`
	Type        HistoryType        `bson:"type" json:"type"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Награда из каталога
type Reward struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	PointsCost  int64              `bson:"pointsCost" json:"pointsCost"`
	Type        RewardType         `bson:"type" json:"type"`
	ExpiryDays  int                `bson:"expiryDays" json:"expiryDays"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Полученная награда
type RedeemedReward struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AccountID  primitive.ObjectID `bson:"loyaltyAccountId" json:"loyaltyAccountId"`
	RewardID   primitive.ObjectID `bson:"rewardId" json:"rewardId"`
	RedeemID   string             `bson:"redeemId,omitempty" json:"redeemId,omitempty"` // id внешнего запроса
	PointsCost int64              `bson:"pointsCost" json:"pointsCost"`
	RedeemedAt time.Time          `bson:"redeemedAt" json:"redeemedAt"`
	ExpiresAt  time.Time          `bson:"expiresAt" json:"expiresAt"`
	Reward     *Reward            `bson:"reward,omitempty" json:"reward,omitempty"`
}

// Срок действия награды от момента получения
func ExpiresAt(redeemedAt time.Time, expiryDays int) time.Time {
	return redeemedAt.Add(time.Duration(expiryDays) * 24 * time.Hour)
}

type LoyaltySummary struct {
	Points          int64            `json:"points"`
	LifetimePoints  int64            `json:"lifetimePoints"`
	Tier            Tier             `json:"tier"`
	JoinDate        time.Time        `json:"joinDate"`
	RedeemedRewards []RedeemedReward `json:"redeemedRewards"`
}
