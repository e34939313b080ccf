package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"scholarconnect/bus"
	"scholarconnect/chat"
	"scholarconnect/middleware"
	"scholarconnect/models"
	"scholarconnect/pkg/config"
	"scholarconnect/routes"
	"scholarconnect/store"
	"scholarconnect/ws"
)

func main() {
	// config init via package init()

	db, err := gorm.Open(mysql.Open(config.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Thread{},
		&models.ThreadMessage{},
		&models.DirectMessage{},
	); err != nil {
		log.Fatalf("failed migrate: %v", err)
	}

	middleware.SetRateLimitConfig(
		time.Duration(config.RateLimitWindowSeconds)*time.Second,
		config.RateLimitCapacity,
	)

	// fan-out backplane: Redis across instances, in-process otherwise
	var b bus.Bus
	if config.RedisAddr != "" {
		b = bus.NewRedis(config.RedisAddr)
	} else {
		b = bus.NewMemory()
	}

	st := store.New(db)
	hub := ws.NewHub(b, chat.EventChatMessage, chat.EventThreadChatMessage)
	controller := chat.NewController(st, b)

	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, st, hub, controller)
	if err := r.Run(":" + config.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
