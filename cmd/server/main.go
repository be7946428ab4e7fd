package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"punchclock_backend/internal/app/router"
	authadapters "punchclock_backend/internal/feature/auth/adapters"
	authhandler "punchclock_backend/internal/feature/auth/transport/handler"
	authusecase "punchclock_backend/internal/feature/auth/usecase"
	punchadapters "punchclock_backend/internal/feature/punch/adapters"
	punchhandler "punchclock_backend/internal/feature/punch/transport/handler"
	punchusecase "punchclock_backend/internal/feature/punch/usecase"
	"punchclock_backend/internal/infrastructure/cache"
	"punchclock_backend/internal/infrastructure/config"
	infradb "punchclock_backend/internal/infrastructure/db"
	jwtmw "punchclock_backend/internal/infrastructure/jwt"
	infraredis "punchclock_backend/internal/infrastructure/redis"
	"punchclock_backend/internal/shared/ratelimiter"
)

func main() {
	// 設定は起動時に一度だけ読み込み、各コンストラクタへ注入する
	cfg := config.Load()

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB(cfg)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	punchRepo := punchadapters.NewPunchMySQL(db)

	// 当日クエリをRedisキャッシュでラップ（打刻時に無効化）
	cachedPunchRepo := cache.NewCachingPunchRepository(rdb, time.Minute, punchRepo, "punch")

	// JWT
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiresIn)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	punchUC := punchusecase.NewPunchUsecase(cachedPunchRepo, cfg.PunchLocation)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	punchH := punchhandler.NewPunchHandler(punchUC)

	// 認証エンドポイントのレートリミット（IPごと・1分間）
	authLimiter := ratelimiter.NewRateLimiter(30, time.Minute)

	// ルータ生成
	router := router.NewRouter(authH, punchH, tokenGen, authLimiter)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
