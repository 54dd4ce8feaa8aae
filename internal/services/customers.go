package services

import (
	"context"
	"slices"
	"strings"

	interf "github.com/webdev-zad/laundry-system-be/internal/interfaces"
	models "github.com/webdev-zad/laundry-system-be/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type CustomerService struct {
	logger *zap.Logger
	db     interf.CustomerStorage
	tasks  interf.TaskStorage
}

func NewCustomerService(logger *zap.Logger, db interf.CustomerStorage, tasks interf.TaskStorage) *CustomerService {
	return &CustomerService{logger, db, tasks}
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.db.ListCustomers(ctx)
}

// Клиент и его задачи, новые первыми
func (s *CustomerService) Get(ctx context.Context, id string) (models.CustomerDetails, error) {
	var details models.CustomerDetails
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		customer, err := s.db.GetCustomer(gctx, id)
		details.Customer = customer
		return err
	})
	g.Go(func() error {
		tasks, err := s.tasks.ListTasks(gctx, models.TaskFilter{CustomerID: id})
		details.Tasks = tasks
		return err
	})
	if err := g.Wait(); err != nil {
		return models.CustomerDetails{}, err
	}
	slices.SortStableFunc(details.Tasks, func(a, b models.Task) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return details, nil
}

func (s *CustomerService) Create(ctx context.Context, customer models.Customer) (models.Customer, error) {
	customer.Name = strings.TrimSpace(customer.Name)
	err := customer.Validate()
	if err != nil {
		return models.Customer{}, err
	}
	return s.db.CreateCustomer(ctx, customer)
}

// Частичное изменение, пустые поля сохраняют прежние значения
func (s *CustomerService) Update(ctx context.Context, id string, in models.Customer) (models.Customer, error) {
	customer, err := s.db.GetCustomer(ctx, id)
	if err != nil {
		return models.Customer{}, err
	}
	if in.Name != "" {
		customer.Name = strings.TrimSpace(in.Name)
	}
	if in.Email != "" {
		customer.Email = in.Email
	}
	if in.Phone != "" {
		customer.Phone = in.Phone
	}
	if in.RoomNumber != "" {
		customer.RoomNumber = in.RoomNumber
	}
	err = customer.Validate()
	if err != nil {
		return models.Customer{}, err
	}
	return s.db.UpdateCustomer(ctx, customer)
}

// Клиента с задачами удалить нельзя
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.db.DeleteCustomer(ctx, id)
}
