package services

import (
	"cmp"
	"context"
	"iter"
	"slices"

	interf "github.com/webdev-zad/laundry-system-be/internal/interfaces"
	models "github.com/webdev-zad/laundry-system-be/internal/models"
	"go.uber.org/zap"
)

// Каталог наград
type RewardCatalog struct {
	logger *zap.Logger
	db     interf.RewardStorage
	cache  interf.CacheStorage // может быть nil
}

func NewRewardCatalog(logger *zap.Logger, db interf.RewardStorage, cache interf.CacheStorage) *RewardCatalog {
	return &RewardCatalog{logger, db, cache}
}

// Активные награды по возрастанию стоимости, при равной стоимости
// в порядке добавления. Последовательность можно обходить повторно.
func (c *RewardCatalog) ListActive(ctx context.Context) (iter.Seq[models.Reward], error) {
	rewards, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]models.Reward, 0, len(rewards))
	for _, r := range rewards {
		if r.IsActive {
			active = append(active, r)
		}
	}
	slices.SortStableFunc(active, func(a, b models.Reward) int {
		return cmp.Compare(a.PointsCost, b.PointsCost)
	})
	return slices.Values(active), nil
}

func (c *RewardCatalog) load(ctx context.Context) ([]models.Reward, error) {
	if c.cache != nil {
		rewards, err := c.cache.GetRewards(ctx)
		if err == nil {
			return rewards, nil
		}
	}
	rewards, err := c.db.ActiveRewards(ctx)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		err = c.cache.SetRewards(ctx, rewards)
		if err != nil {
			c.logger.Error("Cache rewards",
				zap.String("service", "ListActive"),
				zap.Error(err),
			)
		}
	}
	return rewards, nil
}
