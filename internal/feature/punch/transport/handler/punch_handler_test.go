package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"punchclock_backend/internal/api"
	"punchclock_backend/internal/feature/punch/domain/entity"
	jwtmw "punchclock_backend/internal/infrastructure/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockPunchUsecase is a mock implementation of the PunchUsecase interface.
type mockPunchUsecase struct {
	PunchFunc        func(ctx context.Context, userID uint, location, punchType string) error
	TodayRecordsFunc func(ctx context.Context, userID uint, punchType string) ([]entity.PunchRecord, error)
	ServerDateFunc   func() time.Time
}

func (m *mockPunchUsecase) Punch(ctx context.Context, userID uint, location, punchType string) error {
	if m.PunchFunc != nil {
		return m.PunchFunc(ctx, userID, location, punchType)
	}
	return nil
}

func (m *mockPunchUsecase) TodayRecords(ctx context.Context, userID uint, punchType string) ([]entity.PunchRecord, error) {
	if m.TodayRecordsFunc != nil {
		return m.TodayRecordsFunc(ctx, userID, punchType)
	}
	return nil, nil
}

func (m *mockPunchUsecase) ServerDate() time.Time {
	if m.ServerDateFunc != nil {
		return m.ServerDateFunc()
	}
	return time.Now()
}

// setupRouter wires the handler behind a stub middleware that injects claims,
// mirroring what jwtmw.AuthRequired does after token verification.
func setupRouter(h *PunchHandler, claims *jwtmw.Claims) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set(jwtmw.ContextClaims, claims)
		}
		c.Next()
	})
	r.POST("/punch/in", h.PunchIn)
	r.POST("/punch/out", h.PunchOut)
	r.GET("/get-data/punch-in", h.PunchInData)
	r.GET("/get-data/punch-out", h.PunchOutData)
	r.GET("/get-date", h.GetDate)
	return r
}

func TestPunchHandler_PunchIn(t *testing.T) {
	claims := &jwtmw.Claims{UserID: 42, Email: "ann@x.com", Username: "ann1", Name: "Ann"}

	t.Run("successful punch in", func(t *testing.T) {
		mock := &mockPunchUsecase{
			PunchFunc: func(ctx context.Context, userID uint, location, punchType string) error {
				assert.Equal(t, uint(42), userID)
				assert.Equal(t, "HQ", location)
				assert.Equal(t, "in", punchType)
				return nil
			},
		}
		router := setupRouter(NewPunchHandler(mock), claims)

		body, _ := json.Marshal(gin.H{"selectedOption": "HQ"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/punch/in", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got api.PunchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.True(t, got.Success)
		assert.Equal(t, "Punched in successfully", got.Message)
	})

	t.Run("missing body is tolerated", func(t *testing.T) {
		mock := &mockPunchUsecase{
			PunchFunc: func(ctx context.Context, userID uint, location, punchType string) error {
				assert.Empty(t, location, "location should default to empty")
				return nil
			},
		}
		router := setupRouter(NewPunchHandler(mock), claims)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/punch/in", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		mock := &mockPunchUsecase{
			PunchFunc: func(ctx context.Context, userID uint, location, punchType string) error {
				return errors.New("write failed")
			},
		}
		router := setupRouter(NewPunchHandler(mock), claims)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/punch/in", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var got api.PunchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.False(t, got.Success)
		assert.Equal(t, "Failed to punch in", got.Message)
	})

	t.Run("missing claims", func(t *testing.T) {
		router := setupRouter(NewPunchHandler(&mockPunchUsecase{}), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/punch/in", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPunchHandler_PunchOut(t *testing.T) {
	claims := &jwtmw.Claims{UserID: 42}

	mock := &mockPunchUsecase{
		PunchFunc: func(ctx context.Context, userID uint, location, punchType string) error {
			assert.Equal(t, "out", punchType)
			return nil
		},
	}
	router := setupRouter(NewPunchHandler(mock), claims)

	body, _ := json.Marshal(gin.H{"selectedOption": "HQ"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/punch/out", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got api.PunchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, "Punched out successfully", got.Message)
}

func TestPunchHandler_PunchInData(t *testing.T) {
	claims := &jwtmw.Claims{UserID: 42}
	at := time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)

	t.Run("returns today's records with static metadata", func(t *testing.T) {
		mock := &mockPunchUsecase{
			TodayRecordsFunc: func(ctx context.Context, userID uint, punchType string) ([]entity.PunchRecord, error) {
				assert.Equal(t, uint(42), userID)
				assert.Equal(t, "in", punchType)
				return []entity.PunchRecord{
					{ID: 1, UserID: 42, Location: "HQ", PunchType: "in", Time: at},
				}, nil
			},
		}
		router := setupRouter(NewPunchHandler(mock), claims)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/get-data/punch-in", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got api.PunchDataResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.True(t, got.Success)
		assert.Equal(t, "Data for punching in", got.Message)
		assert.Equal(t, "Additional info for punching in", got.ExtraInfo)
		require.Len(t, got.Data, 1)
		assert.Equal(t, "HQ", got.Data[0].Location)
		assert.Equal(t, "in", got.Data[0].PunchType)
	})

	t.Run("empty day yields empty data array", func(t *testing.T) {
		mock := &mockPunchUsecase{
			TodayRecordsFunc: func(ctx context.Context, userID uint, punchType string) ([]entity.PunchRecord, error) {
				return nil, nil
			},
		}
		router := setupRouter(NewPunchHandler(mock), claims)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/get-data/punch-in", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		// Data marshals as [] rather than null
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})

	t.Run("query failure", func(t *testing.T) {
		mock := &mockPunchUsecase{
			TodayRecordsFunc: func(ctx context.Context, userID uint, punchType string) ([]entity.PunchRecord, error) {
				return nil, errors.New("query failed")
			},
		}
		router := setupRouter(NewPunchHandler(mock), claims)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/get-data/punch-in", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var got api.PunchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Failed to fetch punch in data", got.Message)
	})
}

func TestPunchHandler_PunchOutData(t *testing.T) {
	claims := &jwtmw.Claims{UserID: 42}

	mock := &mockPunchUsecase{
		TodayRecordsFunc: func(ctx context.Context, userID uint, punchType string) ([]entity.PunchRecord, error) {
			assert.Equal(t, "out", punchType)
			return nil, nil
		},
	}
	router := setupRouter(NewPunchHandler(mock), claims)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get-data/punch-out", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got api.PunchDataResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Data for punching out", got.Message)
	assert.Equal(t, "Additional info for punching out", got.ExtraInfo)
}

func TestPunchHandler_GetDate(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)
	at := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC).In(ist)

	mock := &mockPunchUsecase{
		ServerDateFunc: func() time.Time { return at },
	}
	// No claims middleware needed; /get-date is unauthenticated
	router := setupRouter(NewPunchHandler(mock), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get-date", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got api.DateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.Date.Equal(at), "expected %v, got %v", at, got.Date)
}
