package entity

import (
	"gorm.io/datatypes"
	"gorm.io/plugin/soft_delete"
	"time"
)

// Signal 信号落库记录，内存日志之外的完整历史
type Signal struct {
	ID uint64 `gorm:"primaryKey"`

	Code   string  `gorm:"type:varchar(16);not null;index:idx_code_time"`
	Action string  `gorm:"type:varchar(16);not null"` // strong_buy等
	Price  float64 `gorm:"type:decimal(12,3);not null"`
	Score  int     `gorm:"not null"`

	// 触发时刻的指标快照，排查信号质量用
	Indicators datatypes.JSON `gorm:"column:indicators_json"`

	SignalTime time.Time `gorm:"column:signal_time;type:timestamp;not null;index:idx_code_time"`

	CreatedAt time.Time             `gorm:"column:created_at"`
	DeletedAt soft_delete.DeletedAt `gorm:"column:deleted_at"`
}

func (Signal) TableName() string {
	return "signals"
}
