package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"tienda/internal/config"
	"tienda/internal/db"
	"tienda/internal/events"
	"tienda/internal/httpserver"
	buyerrepo "tienda/internal/repository/buyer"
	orderrepo "tienda/internal/repository/order"
	productrepo "tienda/internal/repository/product"
	"tienda/internal/session"
	buyersvc "tienda/internal/service/buyer"
	cartsvc "tienda/internal/service/cart"
	catalogsvc "tienda/internal/service/catalog"
	ordersvc "tienda/internal/service/order"
	recommendsvc "tienda/internal/service/recommend"
)

func main() {
	cfg := config.Load()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	buyerRepo := buyerrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	catalogService := catalogsvc.New(productRepo)
	cartService := cartsvc.New(productRepo)
	buyerService := buyersvc.New(buyerRepo)
	recommendService := recommendsvc.New(orderRepo, logger)

	var cartStore session.Store = session.NewMemory()
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		cartStore = session.NewRedis(client, cfg.CartTTL, logger)
		logger.Printf("cart sessions backed by redis at %s", cfg.RedisAddr)
	} else {
		logger.Printf("cart sessions held in memory; set REDIS_ADDR to persist them")
	}

	var orderService *ordersvc.Service
	if cfg.AMQPURL != "" {
		pub, err := events.Connect(cfg.AMQPURL)
		if err != nil {
			logger.Fatalf("connect to amqp: %v", err)
		}
		defer pub.Close()
		orderService = ordersvc.New(orderRepo, buyerRepo, productRepo, pub, logger)
		logger.Printf("order events published to amqp")
	} else {
		orderService = ordersvc.New(orderRepo, buyerRepo, productRepo, nil, logger)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:   catalogService,
		CartSvc:      cartService,
		OrderSvc:     orderService,
		RecommendSvc: recommendService,
		BuyerSvc:     buyerService,
		CartStore:    cartStore,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
