package query

import (
	"context"
	"daypulse/internal/dao"
	"daypulse/internal/model/entity"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type tradeDao struct {
	db *gorm.DB
}

func NewTradeDao(db *gorm.DB) dao.TradeDao {
	return &tradeDao{
		db: db,
	}
}

func (r *tradeDao) SaveTrade(ctx context.Context, trade *entity.Trade) error {
	trade.ID = 0
	if result := r.db.WithContext(ctx).Create(trade); result.Error != nil {
		return fmt.Errorf("failed to create trade: %w", result.Error)
	}
	return nil
}

func (r *tradeDao) GetTradesByCode(ctx context.Context, code string, limit int) ([]entity.Trade, error) {
	var trades []entity.Trade
	result := r.db.WithContext(ctx).Where("code = ?", code).
		Order("trade_time DESC").
		Limit(limit).
		Find(&trades)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get trades: %w", result.Error)
	}
	return trades, nil
}
