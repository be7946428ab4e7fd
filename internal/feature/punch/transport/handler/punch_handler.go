// Package handler はpunchフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"punchclock_backend/internal/api"
	"punchclock_backend/internal/feature/punch/domain/entity"
	"punchclock_backend/internal/feature/punch/usecase"
	jwtmw "punchclock_backend/internal/infrastructure/jwt"
)

// PunchUsecase は打刻操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PunchUsecase interface {
	Punch(ctx context.Context, userID uint, location, punchType string) error
	TodayRecords(ctx context.Context, userID uint, punchType string) ([]entity.PunchRecord, error)
	ServerDate() time.Time
}

// PunchHandler は打刻操作のHTTPリクエストを処理します。
type PunchHandler struct {
	uc PunchUsecase
}

// NewPunchHandler は指定されたusecaseでPunchHandlerの新しいインスタンスを生成します。
func NewPunchHandler(uc PunchUsecase) *PunchHandler {
	return &PunchHandler{uc: uc}
}

// PunchIn は出勤打刻エンドポイントを処理します。
//
// POST /punch/in
func (h *PunchHandler) PunchIn(c *gin.Context) {
	h.punch(c, usecase.PunchTypeIn, "Punched in successfully")
}

// PunchOut は退勤打刻エンドポイントを処理します。
//
// POST /punch/out
func (h *PunchHandler) PunchOut(c *gin.Context) {
	h.punch(c, usecase.PunchTypeOut, "Punched out successfully")
}

// punch は打刻方向をエンドポイント側で固定した共通処理です。
func (h *PunchHandler) punch(c *gin.Context, punchType, okMessage string) {
	var req api.PunchRequest
	// 位置セレクタは自由入力かつ省略可のため、バインドエラーは握りつぶす
	_ = c.ShouldBindJSON(&req)

	claims, ok := jwtmw.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.PunchResponse{Success: false, Message: "Unauthorized"})
		return
	}

	if err := h.uc.Punch(c.Request.Context(), claims.UserID, req.SelectedOption, punchType); err != nil {
		slog.Error("punch failed", "error", err, "user_id", claims.UserID, "punch_type", punchType)
		c.JSON(http.StatusInternalServerError, api.PunchResponse{Success: false, Message: "Failed to punch " + punchType})
		return
	}

	slog.Info("punch recorded", "user_id", claims.UserID, "punch_type", punchType, "location", req.SelectedOption)
	c.JSON(http.StatusOK, api.PunchResponse{Success: true, Message: okMessage})
}

// PunchInData は当日の出勤打刻データエンドポイントを処理します。
//
// GET /get-data/punch-in
func (h *PunchHandler) PunchInData(c *gin.Context) {
	h.todayData(c, usecase.PunchTypeIn,
		"Data for punching in",
		"Additional info for punching in",
		"Failed to fetch punch in data")
}

// PunchOutData は当日の退勤打刻データエンドポイントを処理します。
//
// GET /get-data/punch-out
func (h *PunchHandler) PunchOutData(c *gin.Context) {
	h.todayData(c, usecase.PunchTypeOut,
		"Data for punching out",
		"Additional info for punching out",
		"Failed to fetch punch out data")
}

// todayData は当日の打刻レコードをJSONで返す共通処理です。
func (h *PunchHandler) todayData(c *gin.Context, punchType, message, extraInfo, failMessage string) {
	claims, ok := jwtmw.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.PunchResponse{Success: false, Message: "Unauthorized"})
		return
	}

	recs, err := h.uc.TodayRecords(c.Request.Context(), claims.UserID, punchType)
	if err != nil {
		slog.Error("fetch punch data failed", "error", err, "user_id", claims.UserID, "punch_type", punchType)
		c.JSON(http.StatusInternalServerError, api.PunchResponse{Success: false, Message: failMessage})
		return
	}

	// データをフォーマット
	out := make([]api.PunchRecordData, 0, len(recs))
	for _, r := range recs {
		out = append(out, api.PunchRecordData{
			ID:        r.ID,
			UserID:    r.UserID,
			Location:  r.Location,
			PunchType: r.PunchType,
			Time:      r.Time,
			CreatedAt: r.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, api.PunchDataResponse{
		Success:   true,
		Data:      out,
		Message:   message,
		ExtraInfo: extraInfo,
	})
}

// GetDate はサーバーの現在時刻（打刻タイムゾーン）を返します。認証不要です。
//
// GET /get-date
func (h *PunchHandler) GetDate(c *gin.Context) {
	c.JSON(http.StatusOK, api.DateResponse{Date: h.uc.ServerDate()})
}
