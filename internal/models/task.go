package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
	StatusDelivery   Status = "delivery"
)

// Колонки доски в порядке отображения
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone, StatusDelivery}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone, StatusDelivery:
		return true
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Краткие данные клиента и исполнителя в задаче
type CustomerRef struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Name       string             `bson:"name" json:"name"`
	RoomNumber string             `bson:"roomNumber,omitempty" json:"roomNumber,omitempty"`
}

type UserRef struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// Заказ на стирку
type Task struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title        string              `bson:"title" json:"title"`
	Description  string              `bson:"description,omitempty" json:"description,omitempty"`
	Status       Status              `bson:"status" json:"status"`
	Priority     Priority            `bson:"priority" json:"priority"`
	DueDate      time.Time           `bson:"dueDate" json:"dueDate"`
	Items        int                 `bson:"items" json:"items"`
	Weight       *float64            `bson:"weight,omitempty" json:"weight"`
	HasBlankets  bool                `bson:"hasBlankets" json:"hasBlankets"`
	BlanketCount int                 `bson:"blanketCount" json:"blanketCount"`
	IsPaid       bool                `bson:"isPaid" json:"isPaid"`
	TotalPrice   *float64            `bson:"totalPrice,omitempty" json:"totalPrice"`
	ServiceType  string              `bson:"serviceType,omitempty" json:"serviceType,omitempty"`
	CustomerID   primitive.ObjectID  `bson:"customerId" json:"customerId"`
	AssignedToID *primitive.ObjectID `bson:"assignedToId,omitempty" json:"assignedToId,omitempty"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`

	// заполняются при чтении через $lookup
	Customer   *CustomerRef `bson:"customer,omitempty" json:"customer,omitempty"`
	AssignedTo *UserRef     `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
}

// Ключ события для брокера
func (t Task) EventKey() string {
	return t.ID.Hex()
}

// Фильтр списка задач, пустые поля не учитываются
type TaskFilter struct {
	Status       Status
	Priority     Priority
	CustomerID   string
	AssignedToID string
}

// Частичное обновление задачи
type TaskUpdate struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Status       *Status    `json:"status"`
	Priority     *Priority  `json:"priority"`
	DueDate      *time.Time `json:"dueDate"`
	Items        *int       `json:"items"`
	Weight       *float64   `json:"weight"`
	HasBlankets  *bool      `json:"hasBlankets"`
	BlanketCount *int       `json:"blanketCount"`
	IsPaid       *bool      `json:"isPaid"`
	TotalPrice   *float64   `json:"totalPrice"`
	ServiceType  *string    `json:"serviceType"`
	CustomerID   *string    `json:"customerId"`
	AssignedToID *string    `json:"assignedToId"`
}

// Доска: задачи по колонкам
type Board map[Status][]Task

type TaskMovedEvent struct {
	TaskID    string `json:"taskId"`
	NewStatus Status `json:"newStatus"`
	Task      Task   `json:"task"`
}

func (e TaskMovedEvent) EventKey() string {
	return e.TaskID
}

type TaskDeletedEvent struct {
	TaskID string `json:"taskId"`
}

func (e TaskDeletedEvent) EventKey() string {
	return e.TaskID
}

// Проверка входных данных задачи. При создании обязательны
// название, клиент и срок.
func (u TaskUpdate) Validate(create bool) error {
	verr := &ValidationError{}
	if (create && u.Title == nil) || (u.Title != nil && strings.TrimSpace(*u.Title) == "") {
		verr.Add("Title is required")
	}
	if (create && u.CustomerID == nil) || (u.CustomerID != nil && *u.CustomerID == "") {
		verr.Add("Customer is required")
	}
	if (create && u.DueDate == nil) || (u.DueDate != nil && u.DueDate.IsZero()) {
		verr.Add("Due date is required")
	}
	if u.Items != nil && *u.Items < 1 {
		verr.Add("Items must be a positive number")
	}
	if u.Priority != nil && !u.Priority.Valid() {
		verr.Add("Priority must be low, medium, or high")
	}
	if u.Status != nil && !u.Status.Valid() {
		verr.Add("Status must be todo, in-progress, done, or delivery")
	}
	return verr.OrNil()
}
