// Загрузка начальных данных
package main

import (
	"context"
	"flag"
	"os"

	config "github.com/webdev-zad/laundry-system-be/internal/config"
	db "github.com/webdev-zad/laundry-system-be/internal/db"
	interf "github.com/webdev-zad/laundry-system-be/internal/interfaces"
	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "", "seed yaml, embedded data by default")
	flag.Parse()

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

	data := defaultSeed
	if *file != "" {
		data, err = os.ReadFile(*file)
		if err != nil {
			logger.Fatal("Seed file", zap.Error(err))
		}
	}
	seed, err := parseSeed(data)
	if err != nil {
		logger.Fatal("Seed", zap.Error(err))
	}

	ctx := context.Background()
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
			logger.Error("Cache is not reachable, catalog expires by ttl", zap.Error(err))
		} else {
			cache = redis
			defer redis.Close()
		}
	}

	err = NewLoader(logger, storage, cache).Load(ctx, seed)
	if err != nil {
		logger.Fatal("Seed load", zap.Error(err))
	}
	logger.Info("Seed completed")
}
