package query

import (
	"context"
	"daypulse/internal/dao"
	"daypulse/internal/model/entity"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type signalDao struct {
	db *gorm.DB
}

func NewSignalDao(db *gorm.DB) dao.SignalDao {
	return &signalDao{
		db: db,
	}
}

func (r *signalDao) SaveSignal(ctx context.Context, signal *entity.Signal) error {
	// 确保 GORM 插入新记录，而非更新旧 ID
	signal.ID = 0
	if result := r.db.WithContext(ctx).Create(signal); result.Error != nil {
		return fmt.Errorf("failed to create signal: %w", result.Error)
	}
	return nil
}

// GetRecentSignals 获取指定股票的最近信号，按触发时间倒序
func (r *signalDao) GetRecentSignals(ctx context.Context, code string, limit int) ([]entity.Signal, error) {
	var signals []entity.Signal
	result := r.db.WithContext(ctx).Where("code = ?", code).
		Order("signal_time DESC").
		Limit(limit).
		Find(&signals)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get recent signals: %w", result.Error)
	}
	return signals, nil
}

func (r *signalDao) GetSignalsByTimeRange(ctx context.Context, code string, start, end time.Time) ([]entity.Signal, error) {
	var signals []entity.Signal
	result := r.db.WithContext(ctx).
		Where("code = ?", code).
		Where("signal_time >= ?", start).
		Where("signal_time <= ?", end).
		Find(&signals)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to retrieve signals for %s in time range %s to %s: %w",
			code, start.Format(time.RFC3339), end.Format(time.RFC3339), result.Error)
	}
	return signals, nil
}
