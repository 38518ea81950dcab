package indicator

// 形态识别与简单趋势判断

const (
	PatternVReversal    = "V-reversal"        // V型反转
	PatternInvertedV    = "inverted-V"        // 倒V型
	PatternRangeBound   = "range-bound"       // 箱体震荡
	PatternTrending     = "trending"          // 趋势运行
	PatternInsufficient = "insufficient-data" // 数据不足
)

const (
	TrendUp           = "up"
	TrendDown         = "down"
	TrendSideways     = "sideways"
	TrendInsufficient = "insufficient-data"
)

// patternWindow 形态识别检查的样本窗口
const patternWindow = 15

// DetectPattern 对最近15个样本做粗粒度形态分类。
// 规则按 V型 -> 倒V -> 箱体 -> 趋势 的顺序匹配，先命中者生效
func DetectPattern(prices []float64) string {
	if len(prices) < patternWindow {
		return PatternInsufficient
	}
	w := prices[len(prices)-patternWindow:]

	mi, ma := 0, 0
	for i, p := range w {
		if p < w[mi] {
			mi = i
		}
		if p > w[ma] {
			ma = i
		}
	}
	first, last := w[0], w[len(w)-1]
	low, high := w[mi], w[ma]

	// 最低点在窗口内部且两侧都有足够回落/回升幅度
	if 2 < mi && mi < 12 && (first-low)/first > 0.01 && (last-low)/low > 0.008 {
		return PatternVReversal
	}
	if 2 < ma && ma < 12 && (high-first)/first > 0.01 && (high-last)/high > 0.008 {
		return PatternInvertedV
	}
	if (high-low)/low < 0.015 {
		return PatternRangeBound
	}
	return PatternTrending
}

// PredictTrend 均线+现价的方向判断，样本不足10时返回 (insufficient-data, 0)
func PredictTrend(prices []float64, ma5, ma10 float64) (string, int) {
	if len(prices) < 10 {
		return TrendInsufficient, 0
	}
	current := prices[len(prices)-1]
	if ma5 > ma10 && current > ma5 {
		return TrendUp, 1
	}
	if ma5 < ma10 && current < ma5 {
		return TrendDown, -1
	}
	return TrendSideways, 0
}
