// Package adapters はpunchフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"punchclock_backend/internal/feature/punch/domain/entity"
	"punchclock_backend/internal/feature/punch/usecase"
)

// punchMySQL はPunchRepositoryインターフェースのMySQL実装です。
type punchMySQL struct {
	db *gorm.DB
}

// punchMySQLがPunchRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.PunchRepository = (*punchMySQL)(nil)

// NewPunchMySQL は指定されたgorm.DB接続でpunchMySQLの新しいインスタンスを生成します。
func NewPunchMySQL(db *gorm.DB) *punchMySQL {
	return &punchMySQL{db: db}
}

// Create は打刻レコードをデータベースに追加します。
func (r *punchMySQL) Create(ctx context.Context, rec *entity.PunchRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// FindInRange は指定ユーザー・打刻種別・時刻範囲（両端含む）のレコードを時刻降順で検索します。
func (r *punchMySQL) FindInRange(ctx context.Context, userID uint, punchType string, from, to time.Time, limit int) ([]entity.PunchRecord, error) {
	var rows []entity.PunchRecord
	q := r.db.WithContext(ctx).
		Where("user_id = ? AND punch_type = ? AND `time` BETWEEN ? AND ?", userID, punchType, from, to).
		Order("`time` DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
