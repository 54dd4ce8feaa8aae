package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTaskCreated = "task-created"
	EventTaskUpdated = "task-updated"
	EventTaskMoved   = "task-moved"
	EventTaskDeleted = "task-deleted"
)

// Конверт события для сокетов и брокера
type Event struct {
	ID   string    `json:"id"`
	Name string    `json:"event"`
	Time time.Time `json:"time"`
	Data any       `json:"data"`
}

func NewEvent(name string, payload any) Event {
	return Event{
		ID:   uuid.NewString(),
		Name: name,
		Time: time.Now().UTC(),
		Data: payload,
	}
}

// Ключ партиционирования, если событие его задает
func (e Event) Key() string {
	if k, ok := e.Data.(interface{ EventKey() string }); ok {
		return k.EventKey()
	}
	return e.Name
}
