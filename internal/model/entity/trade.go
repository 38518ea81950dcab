package entity

import (
	"gorm.io/plugin/soft_delete"
	"time"
)

// Trade 模拟交易流水落库记录
type Trade struct {
	ID uint64 `gorm:"primaryKey"`

	TradeID int64   `gorm:"column:trade_id;not null;uniqueIndex"` // snowflake id
	Code    string  `gorm:"type:varchar(16);not null;index:idx_trade_code"`
	Action  string  `gorm:"type:varchar(8);not null"` // buy / sell
	Price   float64 `gorm:"type:decimal(12,3);not null"`
	Ratio   string  `gorm:"type:varchar(8)"`
	Profit  string  `gorm:"type:varchar(16)"` // 卖出时的已实现盈亏

	TradeTime time.Time `gorm:"column:trade_time;type:timestamp;not null"`

	CreatedAt time.Time             `gorm:"column:created_at"`
	DeletedAt soft_delete.DeletedAt `gorm:"column:deleted_at"`
}

func (Trade) TableName() string {
	return "trades"
}
