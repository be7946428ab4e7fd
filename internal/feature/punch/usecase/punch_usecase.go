// Package usecase は打刻操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"time"

	"punchclock_backend/internal/feature/punch/domain/entity"
)

const (
	// PunchTypeIn は出勤打刻を表します。
	PunchTypeIn = "in"
	// PunchTypeOut は退勤打刻を表します。
	PunchTypeOut = "out"

	// MaxTodayRecords は当日クエリの最大返却件数です。
	MaxTodayRecords = 10
)

// ErrInvalidPunchType is returned when the punch direction is not "in" or "out".
var ErrInvalidPunchType = errors.New("punch type must be \"in\" or \"out\"")

// PunchRepository は打刻レコードの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type PunchRepository interface {
	// Create は新しい打刻レコードをストレージに永続化します。
	Create(ctx context.Context, rec *entity.PunchRecord) error

	// FindInRange は指定ユーザー・打刻種別・時刻範囲のレコードを時刻降順で検索します。
	FindInRange(ctx context.Context, userID uint, punchType string, from, to time.Time, limit int) ([]entity.PunchRecord, error)
}

// punchUsecase は打刻操作のユースケースを実装します。
// 打刻時刻と当日範囲の計算は、注入された単一のタイムゾーンで行います。
type punchUsecase struct {
	punches PunchRepository
	loc     *time.Location
	now     func() time.Time // テストで差し替え可能なクロック
}

// NewPunchUsecase はpunchUsecaseの新しいインスタンスを生成します。
// locがnilの場合、固定IST（UTC+5:30）を使用します。
func NewPunchUsecase(punches PunchRepository, loc *time.Location) *punchUsecase {
	if loc == nil {
		loc = time.FixedZone("IST", 5*3600+30*60)
	}
	return &punchUsecase{
		punches: punches,
		loc:     loc,
		now:     time.Now,
	}
}

// Punch は指定ユーザーの打刻イベントを1件追記します。
// 打刻の重複排除や入退勤の交互チェックは行いません。
func (pu *punchUsecase) Punch(ctx context.Context, userID uint, location, punchType string) error {
	if punchType != PunchTypeIn && punchType != PunchTypeOut {
		return ErrInvalidPunchType
	}
	rec := &entity.PunchRecord{
		UserID:    userID,
		Location:  location,
		PunchType: punchType,
		Time:      pu.now().In(pu.loc),
	}
	return pu.punches.Create(ctx, rec)
}

// TodayRecords は当日の打刻レコードを時刻降順・最大10件で取得します。
// 当日の範囲は打刻時刻と同じタイムゾーンで計算します。
func (pu *punchUsecase) TodayRecords(ctx context.Context, userID uint, punchType string) ([]entity.PunchRecord, error) {
	if punchType != PunchTypeIn && punchType != PunchTypeOut {
		return nil, ErrInvalidPunchType
	}
	now := pu.now().In(pu.loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, pu.loc)
	end := start.Add(24*time.Hour - time.Nanosecond)
	return pu.punches.FindInRange(ctx, userID, punchType, start, end, MaxTodayRecords)
}

// ServerDate は打刻タイムゾーンでの現在時刻を返します。
func (pu *punchUsecase) ServerDate() time.Time {
	return pu.now().In(pu.loc)
}
