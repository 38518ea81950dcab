package dao

import (
	"context"
	"daypulse/internal/model/entity"
	"time"
)

type SignalDao interface {
	// 保存一条触发的信号记录
	SaveSignal(ctx context.Context, signal *entity.Signal) error
	// 获取指定股票的最近信号列表 (用于信号列表页)
	GetRecentSignals(ctx context.Context, code string, limit int) ([]entity.Signal, error)
	// 根据给定的时间范围（包含开始和结束时间）查找特定股票的所有信号
	GetSignalsByTimeRange(ctx context.Context, code string, start, end time.Time) ([]entity.Signal, error)
}
