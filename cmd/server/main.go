package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/Shuvro-Biswas/profile-app/internal/app/di"
	"github.com/Shuvro-Biswas/profile-app/internal/app/router"
	authhandler "github.com/Shuvro-Biswas/profile-app/internal/feature/auth/transport/handler"
	"github.com/Shuvro-Biswas/profile-app/internal/feature/auth/transport/middleware"
	authusecase "github.com/Shuvro-Biswas/profile-app/internal/feature/auth/usecase"
	userhandler "github.com/Shuvro-Biswas/profile-app/internal/feature/users/transport/handler"
	userusecase "github.com/Shuvro-Biswas/profile-app/internal/feature/users/usecase"
	"github.com/Shuvro-Biswas/profile-app/internal/platform/config"
	infradb "github.com/Shuvro-Biswas/profile-app/internal/platform/db"
	jwtauth "github.com/Shuvro-Biswas/profile-app/internal/platform/jwt"
	infraredis "github.com/Shuvro-Biswas/profile-app/internal/platform/redis"
)

func main() {
	// Config: a missing SECRET_KEY aborts startup here.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// db
	db := infradb.OpenDB(cfg.DSN(), cfg.RunMigrations)

	// Redis (optional)
	var rdb *redisv9.Client
	if addr := cfg.RedisAddr(); addr != "" {
		if tmp, err := infraredis.NewRedisClient(addr, cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository (cache-decorated)
	userRepo := di.NewUserRepository(rdb, db, cfg.CacheTTL)

	// Tokens
	tokens := jwtauth.NewTokenService(cfg.SecretKey, cfg.TokenTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	userUC := userusecase.NewUserUsecase(userRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	userH := userhandler.NewUserHandler(userUC)

	// Middleware
	authRequired := middleware.AuthRequired(tokens, userRepo)
	authOptional := middleware.AuthOptional(tokens, userRepo)

	r := router.NewRouter(authH, userH, authRequired, authOptional)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
