package models

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Customer struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	RoomNumber string             `bson:"roomNumber,omitempty" json:"roomNumber,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`

	// только в списке клиентов
	TaskCount int `bson:"taskCount,omitempty" json:"taskCount"`
}

// Клиент вместе с задачами
type CustomerDetails struct {
	Customer
	Tasks []Task `json:"tasks"`
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func (c Customer) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(c.Name) == "" {
		verr.Add("Name is required")
	}
	if c.Email != "" && !ValidEmail(c.Email) {
		verr.Add("Email is invalid")
	}
	return verr.OrNil()
}
