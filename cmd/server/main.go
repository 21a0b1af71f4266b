// @title Family Message Board
// @version 0.1
// @description Message board with photo, video and audio attachments.

// @host localhost:8080
// @BasePath /api
// @query.collection.format multi
// @schemes http

package main

import (
	"log"

	"raeya/familyboard/internal/app"
	"raeya/familyboard/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	app.Run(cfg)
}
