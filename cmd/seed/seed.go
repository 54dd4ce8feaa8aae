package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	interf "github.com/webdev-zad/laundry-system-be/internal/interfaces"
	models "github.com/webdev-zad/laundry-system-be/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type seedCustomer struct {
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Phone      string `yaml:"phone"`
	RoomNumber string `yaml:"roomNumber"`
}

func (c seedCustomer) customer() models.Customer {
	return models.Customer{Name: c.Name, Email: c.Email, Phone: c.Phone, RoomNumber: c.RoomNumber}
}

type seedReward struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	PointsCost  int64             `yaml:"pointsCost"`
	Type        models.RewardType `yaml:"type"`
	ExpiryDays  int               `yaml:"expiryDays"`
	Inactive    bool              `yaml:"inactive"`
}

type seedTask struct {
	Title        string          `yaml:"title"`
	Description  string          `yaml:"description"`
	Customer     string          `yaml:"customer"`
	Assignee     string          `yaml:"assignee"`
	Status       models.Status   `yaml:"status"`
	Priority     models.Priority `yaml:"priority"`
	DueInDays    int             `yaml:"dueInDays"`
	Items        int             `yaml:"items"`
	Weight       *float64        `yaml:"weight"`
	HasBlankets  bool            `yaml:"hasBlankets"`
	BlanketCount int             `yaml:"blanketCount"`
	IsPaid       bool            `yaml:"isPaid"`
	TotalPrice   *float64        `yaml:"totalPrice"`
	ServiceType  string          `yaml:"serviceType"`
}

// Начальные данные
type Seed struct {
	Users     []seedUser     `yaml:"users"`
	Customers []seedCustomer `yaml:"customers"`
	Rewards   []seedReward   `yaml:"rewards"`
	Tasks     []seedTask     `yaml:"tasks"`
}

func parseSeed(data []byte) (*Seed, error) {
	var s Seed
	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}

	customers := make(map[string]bool, len(s.Customers))
	for _, c := range s.Customers {
		err := c.customer().Validate()
		if err != nil {
			return nil, fmt.Errorf("customer %q: %w", c.Name, err)
		}
		customers[c.Name] = true
	}
	for i, u := range s.Users {
		if u.Email == "" || u.Password == "" {
			return nil, fmt.Errorf("user %q: email and password are required", u.Name)
		}
		if u.Role == "" {
			s.Users[i].Role = models.RoleStaff
		}
	}
	for _, r := range s.Rewards {
		if r.Name == "" || r.PointsCost <= 0 || r.ExpiryDays <= 0 {
			return nil, fmt.Errorf("reward %q: name, pointsCost and expiryDays are required", r.Name)
		}
		if !r.Type.Valid() {
			return nil, fmt.Errorf("reward %q: unknown type %q", r.Name, r.Type)
		}
	}
	for i, t := range s.Tasks {
		if !customers[t.Customer] {
			return nil, fmt.Errorf("task %q: unknown customer %q", t.Title, t.Customer)
		}
		if t.Status == "" {
			s.Tasks[i].Status = models.StatusTodo
		}
		if t.Priority == "" {
			s.Tasks[i].Priority = models.PriorityMedium
		}
		if t.Items == 0 {
			s.Tasks[i].Items = 1
		}
		if !s.Tasks[i].Status.Valid() || !s.Tasks[i].Priority.Valid() {
			return nil, fmt.Errorf("task %q: invalid status or priority", t.Title)
		}
	}
	return &s, nil
}

type Storage interface {
	interf.UserStorage
	interf.CustomerStorage
	interf.RewardStorage
	interf.TaskStorage
}

type Loader struct {
	logger *zap.Logger
	db     Storage
	cache  interf.CacheStorage // может быть nil
	now    func() time.Time
}

func NewLoader(logger *zap.Logger, db Storage, cache interf.CacheStorage) *Loader {
	return &Loader{logger: logger, db: db, cache: cache, now: time.Now}
}

// Повторный запуск ничего не дублирует: задачи создаются только для новых клиентов
func (l *Loader) Load(ctx context.Context, s *Seed) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return l.users(gctx, s.Users)
	})
	g.Go(func() error {
		return l.rewards(gctx, s.Rewards)
	})
	err := g.Wait()
	if err != nil {
		return err
	}

	created, err := l.customers(ctx, s.Customers)
	if err != nil {
		return err
	}
	return l.tasks(ctx, s.Tasks, created)
}

func (l *Loader) users(ctx context.Context, users []seedUser) error {
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		_, err = l.db.CreateUser(ctx, models.User{
			Name:     u.Name,
			Email:    strings.ToLower(u.Email),
			Password: string(hash),
			Role:     u.Role,
		})
		if errors.Is(err, models.ErrUserExists) {
			l.logger.Info("User exists", zap.String("email", u.Email))
			continue
		}
		if err != nil {
			return fmt.Errorf("user %s: %w", u.Email, err)
		}
		l.logger.Info("User created", zap.String("email", u.Email), zap.String("role", u.Role))
	}
	return nil
}

func (l *Loader) rewards(ctx context.Context, rewards []seedReward) error {
	for _, r := range rewards {
		saved, err := l.db.SaveReward(ctx, models.Reward{
			Name:        r.Name,
			Description: r.Description,
			PointsCost:  r.PointsCost,
			Type:        r.Type,
			ExpiryDays:  r.ExpiryDays,
			IsActive:    !r.Inactive,
		})
		if err != nil {
			return fmt.Errorf("reward %s: %w", r.Name, err)
		}
		l.logger.Info("Reward saved", zap.String("name", saved.Name), zap.Int64("pointsCost", saved.PointsCost))
	}
	// каталог в кэше устарел
	if l.cache != nil {
		err := l.cache.InvalidateRewards(ctx)
		if err != nil {
			l.logger.Error("Invalidate rewards cache", zap.Error(err))
		}
	}
	return nil
}

// Возвращает новых клиентов по имени
func (l *Loader) customers(ctx context.Context, customers []seedCustomer) (map[string]primitive.ObjectID, error) {
	existing, err := l.db.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool, len(existing))
	for _, c := range existing {
		names[c.Name] = true
	}

	created := map[string]primitive.ObjectID{}
	for _, c := range customers {
		if names[c.Name] {
			continue
		}
		saved, err := l.db.CreateCustomer(ctx, c.customer())
		if err != nil {
			return nil, fmt.Errorf("customer %s: %w", c.Name, err)
		}
		created[c.Name] = saved.ID
		l.logger.Info("Customer created", zap.String("name", c.Name))
	}
	return created, nil
}

func (l *Loader) tasks(ctx context.Context, tasks []seedTask, customers map[string]primitive.ObjectID) error {
	today := l.now().UTC().Truncate(24 * time.Hour)
	for _, t := range tasks {
		cid, ok := customers[t.Customer]
		if !ok {
			continue
		}
		task := models.Task{
			Title:        t.Title,
			Description:  t.Description,
			Status:       t.Status,
			Priority:     t.Priority,
			DueDate:      today.AddDate(0, 0, t.DueInDays),
			Items:        t.Items,
			Weight:       t.Weight,
			HasBlankets:  t.HasBlankets,
			BlanketCount: t.BlanketCount,
			IsPaid:       t.IsPaid,
			TotalPrice:   t.TotalPrice,
			ServiceType:  t.ServiceType,
			CustomerID:   cid,
		}
		if t.Assignee != "" {
			user, err := l.db.GetUserByEmail(ctx, t.Assignee)
			if err != nil {
				return fmt.Errorf("task %s: assignee %s: %w", t.Title, t.Assignee, err)
			}
			task.AssignedToID = &user.ID
		}
		_, err := l.db.CreateTask(ctx, task)
		if err != nil {
			return fmt.Errorf("task %s: %w", t.Title, err)
		}
		l.logger.Info("Task created", zap.String("title", t.Title), zap.String("customer", t.Customer))
	}
	return nil
}
