package services

import (
	"context"
	"fmt"

	interf "github.com/webdev-zad/laundry-system-be/internal/interfaces"
	models "github.com/webdev-zad/laundry-system-be/internal/models"
	"go.uber.org/zap"
)

// Канбан-доска задач
type BoardService struct {
	logger   *zap.Logger
	db       interf.TaskStorage
	notifier interf.Notifier
}

func NewBoardService(logger *zap.Logger, db interf.TaskStorage, notifier interf.Notifier) *BoardService {
	return &BoardService{logger, db, notifier}
}

// Разбивка задач по колонкам с сохранением порядка.
// Задача с неизвестным статусом - ошибка целостности данных.
func GroupByStatus(tasks []models.Task) (models.Board, error) {
	board := make(models.Board, len(models.Statuses))
	for _, st := range models.Statuses {
		board[st] = []models.Task{}
	}
	for _, task := range tasks {
		column, ok := board[task.Status]
		if !ok {
			return nil, fmt.Errorf("task %s has unknown status %q", task.ID.Hex(), task.Status)
		}
		board[task.Status] = append(column, task)
	}
	return board, nil
}

func (b *BoardService) Board(ctx context.Context) (models.Board, error) {
	tasks, err := b.db.ListTasks(ctx, models.TaskFilter{})
	if err != nil {
		return nil, err
	}
	board, err := GroupByStatus(tasks)
	if err != nil {
		b.logger.Error("Group tasks",
			zap.String("service", "Board"),
			zap.Error(err),
		)
		return nil, err
	}
	return board, nil
}

// Перенос задачи в другую колонку. Допустим любой переход.
func (b *BoardService) MoveTask(ctx context.Context, taskID string, newStatus string) (models.Task, error) {
	status, err := models.ParseStatus(newStatus)
	if err != nil {
		return models.Task{}, err
	}
	task, err := b.db.UpdateTaskStatus(ctx, taskID, status)
	if err != nil {
		return models.Task{}, err
	}
	b.notifier.Emit(models.EventTaskMoved, models.TaskMovedEvent{
		TaskID:    task.ID.Hex(),
		NewStatus: status,
		Task:      task,
	})
	return task, nil
}
