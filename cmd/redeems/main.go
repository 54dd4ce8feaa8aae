// Job - обработка запросов на получение наград
package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	amqp "github.com/rabbitmq/amqp091-go"
	config "github.com/webdev-zad/laundry-system-be/internal/config"
	db "github.com/webdev-zad/laundry-system-be/internal/db"
	rabbit "github.com/webdev-zad/laundry-system-be/internal/external/rabbitmq"
	interf "github.com/webdev-zad/laundry-system-be/internal/interfaces"
	services "github.com/webdev-zad/laundry-system-be/internal/services"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Config", zap.Error(err))
	}

	// rabbitmq
	reader, err := rabbit.NewRabbitConsumer(cfg.RabbitURL)
	if err != nil {
		logger.Fatal("RabbitMQ connect", zap.Error(err))
	}
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// database
	storage, err := db.NewLaundryDB(ctx, cfg.MongoURI, cfg.MongoDB, logger)
	if err != nil {
		logger.Fatal("Database connect", zap.Error(err))
	}
	defer storage.Close(context.Background())

	// cache
	var cache interf.CacheStorage
	if cfg.CacheURL != "" {
		redis, err := db.NewCacheService(cfg.CacheURL, cfg.CacheUser, cfg.CachePwd)
		if err != nil {
			logger.Error("Cache is disabled", zap.Error(err))
		} else {
			cache = redis
			defer redis.Close()
		}
	}

	// services
	serv := services.NewLoyaltyService(logger, storage, storage, storage, cache, cfg.LoyaltyRetries)

	// os signals
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		cancel()
	}()

	// workers
	logger.Info("Redeem workers started", zap.Int("count", cfg.RedeemCount))
	wg := &sync.WaitGroup{}
	wg.Add(cfg.RedeemCount)
	for i := 0; i < cfg.RedeemCount; i++ {
		go worker(ctx, serv, wg, logger, reader)
	}
	wg.Wait()
}

// worker for rabbitmq messages
func worker(ctx context.Context, serv *services.LoyaltyService, wg *sync.WaitGroup, logger *zap.Logger, reader *rabbit.RabbitConsumer) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-reader.Msg:
			if !ok {
				return
			}
			confirm := process(ctx, serv, msg)
			if confirm.RedeemID == "" {
				logger.Error("Redeem request without id", zap.String("message", confirm.Message))
				_ = msg.Reject(false)
				continue
			}
			if !confirm.Success {
				logger.Warn("Redeem rejected",
					zap.String("redeemId", confirm.RedeemID),
					zap.String("reason", confirm.Message),
				)
			}
			err := reader.Processed(ctx, confirm)
			if err != nil {
				logger.Error("Confirm publish", zap.Error(err))
				// повтор по тому же redeemId вернет уже созданную награду
				_ = msg.Nack(false, true)
				continue
			}
			_ = msg.Ack(false)
		}
	}
}

func process(ctx context.Context, serv *services.LoyaltyService, msg amqp.Delivery) rabbit.RedeemConfirm {
	req, err := rabbit.ParseRequest(msg.Body)
	if err != nil {
		return rabbit.RedeemConfirm{RedeemID: req.RedeemID, Message: err.Error()}
	}
	redeemed, err := serv.RedeemOnce(ctx, req.RedeemID, req.CustomerID, req.RewardID)
	if err != nil {
		return rabbit.RedeemConfirm{RedeemID: req.RedeemID, Message: err.Error()}
	}
	return rabbit.RedeemConfirm{
		RedeemID:         req.RedeemID,
		Success:          true,
		RedeemedRewardID: redeemed.ID.Hex(),
	}
}
