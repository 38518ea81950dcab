package model

// Quote 一只股票的实时行情快照，由行情采集方构造后不再修改，
// 下一次抓取整体替换而不是就地更新
type Quote struct {
	Code      string  `json:"code"`   // 股票代码
	Name      string  `json:"name"`   // 股票名称
	Price     float64 `json:"price"`  // 最新价
	ChangePct float64 `json:"change"` // 涨跌幅 %
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Volume    float64 `json:"volume"`
}

// PriceSeries 当日分时价格与成交量序列，时间升序。
// 核心只读取采集方提供的完整副本，从不就地修改
type PriceSeries struct {
	Prices  []float64 `json:"prices"`
	Volumes []float64 `json:"volumes"`
}

// Len 返回价格样本数
func (s PriceSeries) Len() int { return len(s.Prices) }

// Last 最新价格，空序列返回0
func (s PriceSeries) Last() float64 {
	if len(s.Prices) == 0 {
		return 0
	}
	return s.Prices[len(s.Prices)-1]
}

// MarketData 一次抓取产生的 (行情, 分时) 数据对。
// 两者必须来自同一次抓取，评分只消费成对数据，避免新行情配旧分时
type MarketData struct {
	Code   string
	Quote  *Quote // 抓取失败时为nil
	Series PriceSeries
}

// IndicatorSet 一次计算得到的全部技术指标，每次序列变化后整体重算
type IndicatorSet struct {
	RSI         float64 `json:"rsi"`
	MACD        float64 `json:"macd"`
	MACDSignal  float64 `json:"macd_signal"`
	MACDHist    float64 `json:"macd_hist"`
	K           float64 `json:"k"`
	D           float64 `json:"d"`
	J           float64 `json:"j"`
	MA5         float64 `json:"ma5"`
	MA10        float64 `json:"ma10"`
	Support     float64 `json:"support"`
	Resistance  float64 `json:"resistance"`
	BollUpper   float64 `json:"boll_upper"`
	BollMid     float64 `json:"boll_mid"`
	BollLower   float64 `json:"boll_lower"`
	VolumeRatio float64 `json:"volume_ratio"`
}

// Snapshot 一次刷新产生的完整一致状态：行情、指标、形态、趋势、评分。
// 同一个Snapshot内的字段保证来自同一对 (Quote, PriceSeries)
type Snapshot struct {
	Quote      *Quote       `json:"quote"`
	Indicators IndicatorSet `json:"indicators"`
	Pattern    string       `json:"pattern"`
	Trend      string       `json:"trend"`
	TrendDir   int          `json:"trend_dir"`
	Score      int          `json:"score"`
	Action     string       `json:"action"`
	AlertState string       `json:"alert_state"` // none / breached-high / breached-low
}
