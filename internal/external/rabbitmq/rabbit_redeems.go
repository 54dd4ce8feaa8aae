package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitConsumer struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	Msg   <-chan amqp.Delivery
	chout *amqp.Channel
}

const queue = "redeems"
const queueout = "confirms"

// Запрос на получение награды
type RedeemRequest struct {
	RedeemID   string `json:"redeemId"`
	CustomerID string `json:"customerId"`
	RewardID   string `json:"rewardId"`
}

// Подтверждение обработки запроса
type RedeemConfirm struct {
	RedeemID         string `json:"redeemId"`
	Success          bool   `json:"success"`
	RedeemedRewardID string `json:"redeemedRewardId,omitempty"`
	Message          string `json:"message,omitempty"`
}

func ParseRequest(body []byte) (req RedeemRequest, err error) {
	err = json.Unmarshal(body, &req)
	if err != nil {
		return req, fmt.Errorf("invalid redeem request: %w", err)
	}
	if req.RedeemID == "" {
		return req, fmt.Errorf("invalid redeem request: redeemId field is required")
	}
	if req.CustomerID == "" || req.RewardID == "" {
		return req, fmt.Errorf("invalid redeem request: customerId and rewardId fields are required")
	}
	return req, nil
}

func NewRabbitConsumer(url string) (rabbit *RabbitConsumer, err error) {
	if url == "" {
		return nil, fmt.Errorf("env RABBIT_URL is not set")
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	// канал для входящих
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	// канал для исходящих
	chout, err := conn.Channel()
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	_, err = chout.QueueDeclare(
		queueout, // name
		true,     // durable
		false,    // delete when unused
		false,    // exclusive
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		chout.Close()
		ch.Close()
		conn.Close()
		return nil, err
	}

	// подтверждение вручную после обработки
	msg, err := ch.Consume(
		queue, // queue
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		chout.Close()
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &RabbitConsumer{conn, ch, msg, chout}, nil
}

func (r *RabbitConsumer) Close() {
	r.chout.Close()
	r.ch.Close()
	r.conn.Close()
}

// подтверждение списания
func (r *RabbitConsumer) Processed(ctx context.Context, confirm RedeemConfirm) error {
	msg, err := json.Marshal(confirm)
	if err != nil {
		return err
	}

	return r.chout.PublishWithContext(ctx,
		"",       // exchange
		queueout, // routing key
		false,    // mandatory
		false,    // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         msg,
		})
}
