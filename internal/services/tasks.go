package services

import (
	"context"

	interf "github.com/webdev-zad/laundry-system-be/internal/interfaces"
	models "github.com/webdev-zad/laundry-system-be/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type TaskService struct {
	logger    *zap.Logger
	db        interf.TaskStorage
	customers interf.CustomerStorage
	notifier  interf.Notifier
}

func NewTaskService(logger *zap.Logger, db interf.TaskStorage, customers interf.CustomerStorage, notifier interf.Notifier) *TaskService {
	return &TaskService{logger, db, customers, notifier}
}

func (s *TaskService) List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	return s.db.ListTasks(ctx, filter)
}

func (s *TaskService) Get(ctx context.Context, id string) (models.Task, error) {
	return s.db.GetTask(ctx, id)
}

func (s *TaskService) Create(ctx context.Context, in models.TaskUpdate) (models.Task, error) {
	err := in.Validate(true)
	if err != nil {
		return models.Task{}, err
	}
	customer, err := s.customers.GetCustomer(ctx, *in.CustomerID)
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		Title:      *in.Title,
		Status:     models.StatusTodo,
		Priority:   models.PriorityMedium,
		DueDate:    in.DueDate.UTC(),
		Items:      1,
		Weight:     in.Weight,
		TotalPrice: in.TotalPrice,
		CustomerID: customer.ID,
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Status != nil {
		task.Status = *in.Status
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.Items != nil {
		task.Items = *in.Items
	}
	if in.HasBlankets != nil {
		task.HasBlankets = *in.HasBlankets
	}
	if in.BlanketCount != nil {
		task.BlanketCount = *in.BlanketCount
	}
	if in.IsPaid != nil {
		task.IsPaid = *in.IsPaid
	}
	if in.ServiceType != nil {
		task.ServiceType = *in.ServiceType
	}
	if in.AssignedToID != nil && *in.AssignedToID != "" {
		uid, err := primitive.ObjectIDFromHex(*in.AssignedToID)
		if err != nil {
			return models.Task{}, models.ErrUserNotFound
		}
		task.AssignedToID = &uid
	}

	task, err = s.db.CreateTask(ctx, task)
	if err != nil {
		return models.Task{}, err
	}
	s.notifier.Emit(models.EventTaskCreated, task)
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id string, in models.TaskUpdate) (models.Task, error) {
	err := in.Validate(false)
	if err != nil {
		return models.Task{}, err
	}
	if in.CustomerID != nil {
		_, err = s.customers.GetCustomer(ctx, *in.CustomerID)
		if err != nil {
			return models.Task{}, err
		}
	}
	task, err := s.db.UpdateTask(ctx, id, in)
	if err != nil {
		return models.Task{}, err
	}
	s.notifier.Emit(models.EventTaskUpdated, task)
	return task, nil
}

// Смена статуса вне доски
func (s *TaskService) UpdateStatus(ctx context.Context, id string, status string) (models.Task, error) {
	st, err := models.ParseStatus(status)
	if err != nil {
		return models.Task{}, err
	}
	task, err := s.db.UpdateTaskStatus(ctx, id, st)
	if err != nil {
		return models.Task{}, err
	}
	s.notifier.Emit(models.EventTaskUpdated, task)
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	err := s.db.DeleteTask(ctx, id)
	if err != nil {
		return err
	}
	s.notifier.Emit(models.EventTaskDeleted, models.TaskDeletedEvent{TaskID: id})
	return nil
}
