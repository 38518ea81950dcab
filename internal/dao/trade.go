package dao

import (
	"context"
	"daypulse/internal/model/entity"
)

type TradeDao interface {
	// 保存一笔模拟交易流水
	SaveTrade(ctx context.Context, trade *entity.Trade) error
	// 获取指定股票的交易流水，按时间倒序
	GetTradesByCode(ctx context.Context, code string, limit int) ([]entity.Trade, error)
}
