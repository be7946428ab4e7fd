package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "punchclock_backend/internal/feature/auth/transport/handler"
	punchhandler "punchclock_backend/internal/feature/punch/transport/handler"
	jwtmw "punchclock_backend/internal/infrastructure/jwt"
	"punchclock_backend/internal/interface/handler"
	"punchclock_backend/internal/shared/ratelimiter"
)

func NewRouter(authHandler *authhandler.AuthHandler, punch *punchhandler.PunchHandler,
	gen jwtmw.Generator, authLimiter ratelimiter.RateLimiterInterface) *gin.Engine {
	r := gin.Default()

	// Webクライアント向けにCORSを全ルートで許可
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// サーバー現在時刻（打刻タイムゾーン）
	r.GET("/get-date", punch.GetDate)

	// ユーザー登録・ログイン（レートリミット付き）
	user := r.Group("/api/user")
	user.Use(rateLimit(authLimiter))
	{
		user.POST("/register", authHandler.Register)
		user.POST("/login", authHandler.Login)
	}

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーにトークンが必要になる
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(gen))
	{
		auth.POST("/punch/in", punch.PunchIn)
		auth.POST("/punch/out", punch.PunchOut)
		auth.GET("/get-data/punch-in", punch.PunchInData)
		auth.GET("/get-data/punch-out", punch.PunchOutData)
	}

	return r
}

// rateLimit はクライアントIPごとの固定ウィンドウレートリミットを適用します。
func rateLimit(rl ratelimiter.RateLimiterInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
