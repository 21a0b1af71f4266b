package app

import (
	"log"

	"raeya/familyboard/internal/config"
	"raeya/familyboard/internal/handler"
	"raeya/familyboard/internal/repository"
	"raeya/familyboard/internal/service"

	"github.com/redis/go-redis/v9"
)

func Run(cfg *config.Config) {
	db, err := repository.NewDB(cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	store, err := service.NewS3AttachmentStore(cfg)
	if err != nil {
		log.Fatal(err)
	}

	messageRepo := repository.NewMessageRepository(db)
	feedCache := repository.NewFeedCacheRepository(rdb)
	messageService := service.NewMessageService(messageRepo, store, feedCache)
	messageHandler := handler.NewMessageHandler(messageService)
	familyHandler := handler.NewFamilyHandler()

	server := NewServer(messageHandler, familyHandler)
	server.Run(cfg.ServerPort)
}
