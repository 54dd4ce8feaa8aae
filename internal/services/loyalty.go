package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	interf "github.com/webdev-zad/laundry-system-be/internal/interfaces"
	models "github.com/webdev-zad/laundry-system-be/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	earnDescription   = "Points added manually"
	redeemDescription = "Redeemed for "
)

var tracer = otel.Tracer("laundry/services")

type LoyaltyService struct {
	logger    *zap.Logger
	db        interf.LoyaltyStorage
	rewards   interf.RewardStorage
	customers interf.CustomerStorage
	cache     interf.CacheStorage // может быть nil
	retries   int
	now       func() time.Time
}

func NewLoyaltyService(logger *zap.Logger, db interf.LoyaltyStorage, rewards interf.RewardStorage, customers interf.CustomerStorage, cache interf.CacheStorage, retries int) *LoyaltyService {
	if retries < 1 {
		retries = 1
	}
	return &LoyaltyService{
		logger:    logger,
		db:        db,
		rewards:   rewards,
		customers: customers,
		cache:     cache,
		retries:   retries,
		now:       utcNow,
	}
}

// Mongo хранит время с точностью до миллисекунд
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (s *LoyaltyService) Log(msg string, service string, err error) {
	s.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Счет клиента
func (s *LoyaltyService) Get(ctx context.Context, customerID string) (models.LoyaltyAccount, error) {
	return s.db.GetAccount(ctx, customerID)
}

// Счет клиента, при отсутствии создается пустой
func (s *LoyaltyService) GetOrCreate(ctx context.Context, customerID string) (models.LoyaltyAccount, error) {
	account, err := s.db.GetAccount(ctx, customerID)
	if err == nil || !errors.Is(err, models.ErrAccountNotFound) {
		return account, err
	}
	_, err = s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return models.LoyaltyAccount{}, err
	}
	account, err = s.db.CreateAccount(ctx, customerID, s.now())
	if err != nil {
		return models.LoyaltyAccount{}, err
	}
	s.logger.Info("loyalty account created",
		zap.String("customer", customerID),
	)
	return account, nil
}

// Начисление баллов
func (s *LoyaltyService) AddPoints(ctx context.Context, customerID string, amount int64) (account models.LoyaltyAccount, err error) {
	if amount <= 0 {
		return account, models.ErrInvalidAmount
	}
	ctx, span := tracer.Start(ctx, "LoyaltyService.AddPoints",
		trace.WithAttributes(
			attribute.String("customer.id", customerID),
			attribute.Int64("points", amount),
		))
	defer func() { endSpan(span, err) }()

	for attempt := 1; ; attempt++ {
		current, err := s.GetOrCreate(ctx, customerID)
		if err != nil {
			return account, err
		}
		if amount > current.EarnLimit() {
			return models.LoyaltyAccount{}, models.ErrInvalidAmount
		}
		entry := models.PointsHistory{
			Points:      amount,
			Type:        models.HistoryEarned,
			Description: earnDescription,
			CreatedAt:   s.now(),
		}
		account, err = s.db.CommitEarn(ctx, current.Earn(amount), entry)
		if errors.Is(err, models.ErrVersionConflict) && attempt < s.retries {
			versionConflictsTotal.Inc()
			continue
		}
		if err != nil {
			return models.LoyaltyAccount{}, err
		}
		break
	}

	pointsEarnedTotal.Add(float64(amount))
	return account, nil
}

// Получение награды за баллы
func (s *LoyaltyService) Redeem(ctx context.Context, customerID string, rewardID string) (models.RedeemedReward, error) {
	return s.redeem(ctx, customerID, rewardID, "")
}

// Получение награды по запросу из очереди. Повторная доставка того же
// redeemId возвращает ранее созданную награду без второго списания.
func (s *LoyaltyService) RedeemOnce(ctx context.Context, redeemID string, customerID string, rewardID string) (models.RedeemedReward, error) {
	if redeemID == "" {
		return models.RedeemedReward{}, fmt.Errorf("%w: redeemId is required", models.ErrInvalidInput)
	}
	existing, err := s.db.FindRedemption(ctx, redeemID)
	if err == nil {
		return s.replay(ctx, existing, customerID, rewardID)
	}
	if !errors.Is(err, models.ErrRedeemNotFound) {
		return models.RedeemedReward{}, err
	}

	redeemed, err := s.redeem(ctx, customerID, rewardID, redeemID)
	if errors.Is(err, models.ErrRedeemProcessed) {
		// параллельная доставка успела записать награду
		existing, err = s.db.FindRedemption(ctx, redeemID)
		if err != nil {
			return models.RedeemedReward{}, err
		}
		return s.replay(ctx, existing, customerID, rewardID)
	}
	return redeemed, err
}

// Запрос уже обработан: тот же клиент и та же награда
func (s *LoyaltyService) replay(ctx context.Context, existing models.RedeemedReward, customerID string, rewardID string) (models.RedeemedReward, error) {
	account, err := s.db.GetAccount(ctx, customerID)
	if err != nil {
		return models.RedeemedReward{}, err
	}
	if existing.AccountID != account.ID || existing.RewardID.Hex() != rewardID {
		return models.RedeemedReward{}, models.ErrRedeemProcessed
	}
	s.logger.Info("redemption already processed",
		zap.String("redeemId", existing.RedeemID),
		zap.String("customer", customerID),
	)
	return existing, nil
}

func (s *LoyaltyService) redeem(ctx context.Context, customerID string, rewardID string, redeemID string) (redeemed models.RedeemedReward, err error) {
	ctx, span := tracer.Start(ctx, "LoyaltyService.Redeem",
		trace.WithAttributes(
			attribute.String("customer.id", customerID),
			attribute.String("reward.id", rewardID),
		))
	defer func() {
		endSpan(span, err)
		switch {
		case err == nil:
			redemptionsTotal.WithLabelValues("success").Inc()
		case errors.Is(err, models.ErrInsufficientPoints):
			redemptionsTotal.WithLabelValues("insufficient").Inc()
		case errors.Is(err, models.ErrRedeemProcessed):
			redemptionsTotal.WithLabelValues("duplicate").Inc()
		default:
			redemptionsTotal.WithLabelValues("error").Inc()
		}
	}()

	for attempt := 1; ; attempt++ {
		account, err := s.db.GetAccount(ctx, customerID)
		if err != nil {
			return redeemed, err
		}
		reward, err := s.rewards.GetReward(ctx, rewardID)
		if err != nil {
			return redeemed, err
		}
		spent, err := account.Spend(reward.PointsCost)
		if err != nil {
			return redeemed, err
		}

		now := s.now()
		record := models.RedeemedReward{
			RewardID:   reward.ID,
			RedeemID:   redeemID,
			PointsCost: reward.PointsCost,
			RedeemedAt: now,
			ExpiresAt:  models.ExpiresAt(now, reward.ExpiryDays),
			Reward:     &reward,
		}
		entry := models.PointsHistory{
			Points:      -reward.PointsCost,
			Type:        models.HistoryRedeemed,
			Description: redeemDescription + reward.Name,
			CreatedAt:   now,
		}
		redeemed, err = s.db.CommitRedemption(ctx, spent, record, entry)
		if errors.Is(err, models.ErrVersionConflict) && attempt < s.retries {
			versionConflictsTotal.Inc()
			continue
		}
		if err != nil {
			return models.RedeemedReward{}, err
		}
		return redeemed, nil
	}
}

// Сводка по существующему счету
func (s *LoyaltyService) Summary(ctx context.Context, customerID string) (models.LoyaltySummary, error) {
	account, err := s.db.GetAccount(ctx, customerID)
	if err != nil {
		return models.LoyaltySummary{}, err
	}
	return s.summary(ctx, customerID, account)
}

// Сводка, счет создается при первом обращении
func (s *LoyaltyService) SummaryOrCreate(ctx context.Context, customerID string) (models.LoyaltySummary, error) {
	account, err := s.GetOrCreate(ctx, customerID)
	if err != nil {
		return models.LoyaltySummary{}, err
	}
	return s.summary(ctx, customerID, account)
}

// Кэш по версии счета: запись, начатая до изменения счета,
// попадает под старую версию и больше не читается
func (s *LoyaltyService) summary(ctx context.Context, customerID string, account models.LoyaltyAccount) (models.LoyaltySummary, error) {
	if s.cache != nil {
		summary, err := s.cache.GetSummary(ctx, customerID, account.Version)
		if err == nil {
			return summary, nil
		}
	}
	redeemed, err := s.db.RedeemedRewards(ctx, account.ID)
	if err != nil {
		return models.LoyaltySummary{}, err
	}
	summary := models.LoyaltySummary{
		Points:          account.Points,
		LifetimePoints:  account.LifetimePoints,
		Tier:            account.Tier,
		JoinDate:        account.JoinDate,
		RedeemedRewards: redeemed,
	}
	if s.cache != nil {
		err = s.cache.SetSummary(ctx, customerID, account.Version, summary)
		if err != nil {
			s.Log("Cache summary", "Summary", err)
		}
	}
	return summary, nil
}

// Журнал баллов, новые первыми
func (s *LoyaltyService) History(ctx context.Context, customerID string) ([]models.PointsHistory, error) {
	account, err := s.db.GetAccount(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.db.History(ctx, account.ID)
}
