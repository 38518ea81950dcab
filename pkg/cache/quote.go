package cache

import (
	"context"
	"daypulse/internal/model"
	"time"

	"github.com/go-redis/redis/v8"
	json "github.com/goccy/go-json"
)

const quoteKeyPrefix = "daypulse:quote:"

// 行情快照的redis缓存，重启后自选股页可以立刻有数据可显示

// Quotes 实现service侧的行情缓存接口
type Quotes struct{}

func (Quotes) SetQuote(ctx context.Context, quote *model.Quote, ttl time.Duration) error {
	return SetQuote(ctx, quote, ttl)
}

func (Quotes) GetQuote(ctx context.Context, code string) (*model.Quote, error) {
	return GetQuote(ctx, code)
}

// SetQuote 写入一只股票的最新行情，短TTL防止陈旧数据
func SetQuote(ctx context.Context, quote *model.Quote, ttl time.Duration) error {
	if quote == nil {
		return nil
	}
	data, err := json.Marshal(quote)
	if err != nil {
		return err
	}
	return GetRedisClient().Set(ctx, quoteKeyPrefix+quote.Code, data, ttl).Err()
}

// GetQuote 读取缓存的行情，不存在时返回 (nil, nil)
func GetQuote(ctx context.Context, code string) (*model.Quote, error) {
	data, err := GetRedisClient().Get(ctx, quoteKeyPrefix+code).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var quote model.Quote
	if err := json.Unmarshal(data, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}
