package consts

const (
	// RequestId 请求id名称
	RequestId = "request_id"

	DateLayout   = "01-02"
	MinuteLayout = "15:04"
	TimeLayout   = "2006-01-02 15:04:05"

	// SignalLogCap 信号日志最大长度，超出后从头部淘汰
	SignalLogCap = 100
	// TradeLogCap 交易日志最大长度
	TradeLogCap = 500

	// BuyStep 每次模拟买入增加的仓位
	BuyStep = 0.2
)

// 评分对应的操作标签
const (
	ActionStrongBuy = "strong_buy" // 买入信号
	ActionWeakBuy   = "weak_buy"   // 弱买入
	ActionNeutral   = "neutral"    // 暂无信号
	ActionSellWatch = "sell_watch" // 观望/卖出
)
