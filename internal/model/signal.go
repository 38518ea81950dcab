package model

// SignalRecord 一条已触发的买入信号
type SignalRecord struct {
	Date   string  `json:"date"`   // 01-02
	Time   string  `json:"time"`   // 15:04 分钟精度
	Code   string  `json:"code"`   // 股票代码
	Action string  `json:"action"` // 信号类型
	Price  float64 `json:"price"`
	Score  int     `json:"score"`
}

// SignalEvent 发给通知/事件总线的信号消息
type SignalEvent struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Action    string  `json:"action"`
	Price     float64 `json:"price"`
	Score     int     `json:"score"`
	Timestamp int64   `json:"timestamp"`
}
