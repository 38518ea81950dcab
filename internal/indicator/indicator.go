package indicator

import (
	"daypulse/internal/model"
	"daypulse/utils"
	"math"
)

// 技术指标计算，全部为纯函数。
// 样本不足时返回中性值而不是错误，调用方需要区分时自行检查样本数

// 除零保护
const eps = 1e-9

// RSI 相对强弱指标，样本不足 period+1 时返回中性值50
func RSI(prices []float64, period int) float64 {
	if len(prices) < period+1 {
		return 50
	}
	window := prices[len(prices)-period-1:]
	var gain, loss float64
	for i := 1; i < len(window); i++ {
		d := window[i] - window[i-1]
		if d > 0 {
			gain += d
		} else {
			loss += -d
		}
	}
	avgGain := gain / float64(period)
	avgLoss := loss / float64(period)
	return utils.Round1(100 - 100/(1+avgGain/(avgLoss+eps)))
}

// ema 指数移动平均，以首样本为种子，alpha=2/(n+1)
func ema(data []float64, n int) []float64 {
	a := 2.0 / float64(n+1)
	out := make([]float64, len(data))
	out[0] = data[0]
	for i := 1; i < len(data); i++ {
		out[i] = a*data[i] + (1-a)*out[i-1]
	}
	return out
}

// MACD 返回 (macd线, 信号线, 柱)，样本不足26时返回 (0,0,0)
func MACD(prices []float64) (float64, float64, float64) {
	if len(prices) < 26 {
		return 0, 0, 0
	}
	fast := ema(prices, 12)
	slow := ema(prices, 26)
	macd := make([]float64, len(prices))
	for i := range prices {
		macd[i] = fast[i] - slow[i]
	}
	sig := ema(macd, 9)
	last := len(prices) - 1
	return utils.Round4(macd[last]), utils.Round4(sig[last]),
		utils.Round4(macd[last] - sig[last])
}

// KDJ 简化版随机指标：K=RSV，D=K，J=3K-2D，不做跨周期平滑。
// 样本不足 period 时返回 (50,50,50)
func KDJ(prices []float64, period int) (float64, float64, float64) {
	if len(prices) < period {
		return 50, 50, 50
	}
	window := prices[len(prices)-period:]
	low, high := window[0], window[0]
	for _, p := range window {
		if p < low {
			low = p
		}
		if p > high {
			high = p
		}
	}
	rsv := 50.0
	if high != low {
		rsv = (prices[len(prices)-1] - low) / (high - low) * 100
	}
	k := rsv
	d := k
	j := 3*k - 2*d
	return utils.Round1(k), utils.Round1(d), utils.Round1(j)
}

// MA n日均价；样本不足n时退化为最新价，空序列返回0
func MA(prices []float64, n int) float64 {
	if len(prices) >= n {
		return utils.Round2(mean(prices[len(prices)-n:]))
	}
	if len(prices) > 0 {
		return utils.Round2(prices[len(prices)-1])
	}
	return 0
}

// Bollinger 布林带 (上轨, 中轨, 下轨) = 均值±2倍总体标准差，样本不足n时 (0,0,0)
func Bollinger(prices []float64, n int) (float64, float64, float64) {
	if len(prices) < n {
		return 0, 0, 0
	}
	window := prices[len(prices)-n:]
	mid := mean(window)
	var variance float64
	for _, p := range window {
		variance += (p - mid) * (p - mid)
	}
	std := math.Sqrt(variance / float64(len(window)))
	return utils.Round2(mid + 2*std), utils.Round2(mid), utils.Round2(mid - 2*std)
}

// SupportResistance 近n个样本的 (最低, 最高)，样本不足时用全部样本，空序列 (0,0)
func SupportResistance(prices []float64, n int) (float64, float64) {
	if len(prices) == 0 {
		return 0, 0
	}
	window := prices
	if len(prices) >= n {
		window = prices[len(prices)-n:]
	}
	low, high := window[0], window[0]
	for _, p := range window {
		if p < low {
			low = p
		}
		if p > high {
			high = p
		}
	}
	return utils.Round2(low), utils.Round2(high)
}

// VolumeRatio 量比：最新成交量 / 前n个成交量均值，样本不足 n+1 时返回1.0
func VolumeRatio(volumes []float64, n int) float64 {
	if len(volumes) < n+1 {
		return 1.0
	}
	prev := volumes[len(volumes)-n-1 : len(volumes)-1]
	return utils.Round2(volumes[len(volumes)-1] / (mean(prev) + eps))
}

// Compute 从一份分时序列整体计算指标集
func Compute(series model.PriceSeries) model.IndicatorSet {
	p, v := series.Prices, series.Volumes
	var set model.IndicatorSet
	set.RSI = RSI(p, 14)
	set.MACD, set.MACDSignal, set.MACDHist = MACD(p)
	set.K, set.D, set.J = KDJ(p, 9)
	set.MA5 = MA(p, 5)
	set.MA10 = MA(p, 10)
	set.Support, set.Resistance = SupportResistance(p, 15)
	set.BollUpper, set.BollMid, set.BollLower = Bollinger(p, 20)
	if len(v) > 0 {
		set.VolumeRatio = VolumeRatio(v, 10)
	} else {
		set.VolumeRatio = 1.0
	}
	return set
}

func mean(data []float64) float64 {
	var sum float64
	for _, d := range data {
		sum += d
	}
	return sum / float64(len(data))
}
