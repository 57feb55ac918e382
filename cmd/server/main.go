package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	httpctrl "pos-service/internal/controllers/http"
	mmysql "pos-service/internal/infra/mysql"
	"pos-service/internal/infra/rabbitmq"
	mysqlrepo "pos-service/internal/repository/mysql"
	"pos-service/internal/services"
)

func main() {
	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	orders := mysqlrepo.NewOrderRepository(db)
	tables := mysqlrepo.NewTableRepository(db)
	menu := mysqlrepo.NewMenuRepository(db)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "order.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	s := services.NewOrderService(orders, tables, menu, publisher)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     50,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	s.SetRedisClient(redisClient)

	go warmupMenuCaches(s)

	handler := httpctrl.NewHandler(s, redisClient)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting pos service on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}

// warmupMenuCaches preloads the menu cache for the units named in
// WARMUP_BUSINESS_UNITS (comma-separated ids).
func warmupMenuCaches(s *services.OrderService) {
	raw := os.Getenv("WARMUP_BUSINESS_UNITS")
	if raw == "" {
		return
	}
	time.Sleep(5 * time.Second)
	ctx := context.Background()
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			log.Printf("Skipping invalid warmup business unit %q", part)
			continue
		}
		if err := s.WarmupMenuCache(ctx, id); err != nil {
			log.Printf("Failed to warm up menu cache for unit %d: %v", id, err)
		} else {
			log.Printf("Menu cache warmed up for unit %d", id)
		}
	}
}
