package model

// AlertConfig 单只股票的价格预警阈值，两个阈值都可选。
// 重新设置时整体覆盖，不做合并
type AlertConfig struct {
	High *float64 `json:"high,omitempty" yaml:"high,omitempty"` // 上限
	Low  *float64 `json:"low,omitempty" yaml:"low,omitempty"`   // 下限
}

// 预警检查结果
type AlertState string

const (
	AlertNone         AlertState = "none"
	AlertBreachedHigh AlertState = "breached-high"
	AlertBreachedLow  AlertState = "breached-low"
)

// AlertSetRequest 设置预警的请求体
type AlertSetRequest struct {
	Code string   `json:"code" binding:"required"`
	High *float64 `json:"high,omitempty"`
	Low  *float64 `json:"low,omitempty"`
}
