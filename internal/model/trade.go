package model

// PositionState 模拟仓位：持仓比例 [0,1]，成本价，累计已实现盈亏百分比。
// 持仓只通过买入增加（上限1.0），全部卖出后归零
type PositionState struct {
	Hold   float64 `json:"hold"`   // 持仓比例
	Cost   float64 `json:"cost"`   // 最近一次买入的成本价
	Profit float64 `json:"profit"` // 累计已实现盈亏 %
}

// TradeRecord 一条模拟交易流水
type TradeRecord struct {
	ID     int64   `json:"id"`     // snowflake id
	Time   string  `json:"time"`   // 01-02 15:04
	Code   string  `json:"code"`   // 股票代码
	Action string  `json:"action"` // buy / sell
	Price  float64 `json:"price"`
	Ratio  string  `json:"ratio"`  // 买入步长或卖出时的持仓比例
	Profit string  `json:"profit"` // 卖出时的已实现盈亏，买入为空
}

const (
	TradeBuy  = "buy"
	TradeSell = "sell"
)
