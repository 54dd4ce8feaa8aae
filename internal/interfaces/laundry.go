package interfaces

import (
	"context"
	"time"

	models "github.com/webdev-zad/laundry-system-be/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=./../services/mock_storage_test.go -package=services . LoyaltyStorage,RewardStorage,CustomerStorage,TaskStorage,UserStorage,CacheStorage,EventSink,Notifier
//go:generate mockgen -destination=./../api/mock_storage_test.go -package=api . TaskStorage,RewardStorage,Notifier
//go:generate mockgen -destination=./../../cmd/seed/mock_storage_test.go -package=main . UserStorage,CustomerStorage,RewardStorage,TaskStorage,CacheStorage

// Счета лояльности и журнал баллов
type LoyaltyStorage interface {
	GetAccount(ctx context.Context, customerID string) (models.LoyaltyAccount, error)
	// создает счет, если его нет; существующий возвращает без изменений
	CreateAccount(ctx context.Context, customerID string, joinDate time.Time) (models.LoyaltyAccount, error)
	// account.Version - версия, прочитанная до изменения
	CommitEarn(ctx context.Context, account models.LoyaltyAccount, entry models.PointsHistory) (models.LoyaltyAccount, error)
	// повторный redeemId отклоняется с ErrRedeemProcessed, транзакция откатывается
	CommitRedemption(ctx context.Context, account models.LoyaltyAccount, redeemed models.RedeemedReward, entry models.PointsHistory) (models.RedeemedReward, error)
	FindRedemption(ctx context.Context, redeemID string) (models.RedeemedReward, error)
	RedeemedRewards(ctx context.Context, accountID primitive.ObjectID) ([]models.RedeemedReward, error)
	History(ctx context.Context, accountID primitive.ObjectID) ([]models.PointsHistory, error)
}

type RewardStorage interface {
	GetReward(ctx context.Context, rewardID string) (models.Reward, error)
	ActiveRewards(ctx context.Context) ([]models.Reward, error)
	SaveReward(ctx context.Context, reward models.Reward) (models.Reward, error)
}

type CustomerStorage interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id string) (models.Customer, error)
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)
	UpdateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type TaskStorage interface {
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	GetTask(ctx context.Context, id string) (models.Task, error)
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, id string, fields models.TaskUpdate) (models.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status models.Status) (models.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

type UserStorage interface {
	GetUser(ctx context.Context, id string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type CacheStorage interface {
	GetRewards(ctx context.Context) ([]models.Reward, error)
	SetRewards(ctx context.Context, rewards []models.Reward) error
	InvalidateRewards(ctx context.Context) error
	// сводка хранится под версией счета, после записи старая версия не читается
	GetSummary(ctx context.Context, customerID string, version int64) (models.LoyaltySummary, error)
	SetSummary(ctx context.Context, customerID string, version int64, summary models.LoyaltySummary) error
}

// Получатель событий (сокеты, брокер)
type EventSink interface {
	Name() string
	Publish(ctx context.Context, event models.Event) error
}

// Отправка событий без ожидания результата
type Notifier interface {
	Emit(event string, payload any)
}
