// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"punchclock_backend/internal/api"
	"punchclock_backend/internal/feature/auth/domain/entity"
	"punchclock_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は指定されたプロフィールとパスワードで新規ユーザーを登録します。
	Register(ctx context.Context, name, username, email, password string) error
	// Login はユーザーを認証し、成功時にJWTトークンとユーザー情報を返します。
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterRequestにバインド（必須フィールドのみ検証）
// - フィールド欠落時は400を返却
// - メールアドレス重複時は400を返却
// - 成功時は201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req api.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.StatusResponse{Status: "failed", Message: "All fields are required"})
		return
	}
	if err := h.auth.Register(c.Request.Context(), req.Name, req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.StatusResponse{
				Status:  "failed",
				Message: "Records show this email is linked to another account.",
			})
			return
		}
		slog.Error("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.StatusResponse{Status: "failed", Message: "Unable to Register"})
		return
	}
	slog.Info("user registration successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.StatusResponse{Status: "success", Message: "Registration Success"})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginRequestにバインド
// - バリデーションエラー時は400を返却
// - 未登録メールは404、パスワード不一致は401を返却
// - 認証成功時はJWTトークンとユーザーサマリー付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.StatusResponse{Status: "failed", Message: "Email and password are required"})
		return
	}
	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			slog.Warn("login unknown email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, api.StatusResponse{Status: "failed", Message: "User not found"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			slog.Warn("login invalid credentials", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.StatusResponse{Status: "failed", Message: "Invalid email or password"})
		default:
			slog.Error("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.StatusResponse{Status: "failed", Message: "Unable to login"})
		}
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.LoginResponse{
		Status:   "success",
		Message:  "Login success",
		Token:    token,
		UserID:   user.ID,
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
	})
}
