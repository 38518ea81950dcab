package score

import (
	"daypulse/internal/consts"
	"daypulse/internal/model"
	"strings"
	"time"
)

// 综合评分：各项规则独立判定后加分，结果限制在 [0,100]

// Inputs 评分依赖的当前状态，全部来自同一次刷新
type Inputs struct {
	Price       float64
	Support     float64
	Resistance  float64
	RSI         float64
	Pattern     string
	K           float64
	VolumeRatio float64
}

// Calc 计算综合评分。now用于盘中时段加分，测试时可注入固定时刻
func Calc(in Inputs, now time.Time) int {
	s := 0

	// RSI超卖程度
	switch {
	case in.RSI < 30:
		s += 25
	case in.RSI < 40:
		s += 18
	case in.RSI < 50:
		s += 8
	}

	// 价格在支撑压力区间内的位置，越靠近支撑分越高
	if in.Resistance > in.Support {
		pos := (in.Price - in.Support) / (in.Resistance - in.Support)
		switch {
		case pos <= 0.2:
			s += 20
		case pos <= 0.4:
			s += 12
		default:
			s += 4
		}
	}

	// 形态：V型反转/倒V共用V系加分，箱体次之
	if strings.Contains(in.Pattern, "V") {
		s += 20
	} else if strings.Contains(in.Pattern, "range-bound") {
		s += 8
	}

	// KDJ超卖
	switch {
	case in.K < 20:
		s += 15
	case in.K < 30:
		s += 10
	}

	// 缩量
	switch {
	case in.VolumeRatio < 0.7:
		s += 10
	case in.VolumeRatio < 1.0:
		s += 5
	}

	// 开盘后与尾盘前的活跃时段
	h := float64(now.Hour()) + float64(now.Minute())/60
	if (h >= 9.75 && h <= 10.5) || (h >= 13.5 && h <= 14.5) {
		s += 10
	}

	if s > 100 {
		s = 100
	}
	return s
}

// Action 评分对应的操作标签
func Action(score int) string {
	switch {
	case score >= 70:
		return consts.ActionStrongBuy
	case score >= 55:
		return consts.ActionWeakBuy
	case score <= 30:
		return consts.ActionSellWatch
	default:
		return consts.ActionNeutral
	}
}

// FromSnapshot 从指标集和行情构造评分输入
func FromSnapshot(price float64, set model.IndicatorSet, pattern string) Inputs {
	return Inputs{
		Price:       price,
		Support:     set.Support,
		Resistance:  set.Resistance,
		RSI:         set.RSI,
		Pattern:     pattern,
		K:           set.K,
		VolumeRatio: set.VolumeRatio,
	}
}
