package score

import (
	"daypulse/internal/consts"
	"testing"
	"time"
)

// 盘中时段外的固定时刻
var offHours = time.Date(2024, 3, 11, 11, 30, 0, 0, time.Local)

// 开盘后加分时段内
var openWindow = time.Date(2024, 3, 11, 10, 0, 0, 0, time.Local)

func TestCalcExample(t *testing.T) {
	// RSI=25(+25) pos=0.1(+20) V型(+20) K=15(+15) 量比0.5(+10) 时段外(+0) = 90
	in := Inputs{
		Price:       10.1,
		Support:     10.0,
		Resistance:  11.0,
		RSI:         25,
		Pattern:     "V-reversal",
		K:           15,
		VolumeRatio: 0.5,
	}
	if got := Calc(in, offHours); got != 90 {
		t.Fatalf("score = %d, want 90", got)
	}
}

func TestCalcClampAt100(t *testing.T) {
	// 所有档位全中并叠加时段分，仍应被限制在100
	in := Inputs{
		Price:       10.0,
		Support:     10.0,
		Resistance:  11.0,
		RSI:         10,
		Pattern:     "V-reversal",
		K:           5,
		VolumeRatio: 0.3,
	}
	if got := Calc(in, openWindow); got != 100 {
		t.Fatalf("score = %d, want 100", got)
	}
}

func TestCalcTimeWindowBonus(t *testing.T) {
	in := Inputs{Price: 10.5, Support: 10, Resistance: 11, RSI: 60, Pattern: "trending", K: 50, VolumeRatio: 1.5}
	base := Calc(in, offHours)
	boosted := Calc(in, openWindow)
	if boosted-base != 10 {
		t.Fatalf("time window bonus = %d, want 10", boosted-base)
	}
	// 午后时段同样加分
	afternoon := time.Date(2024, 3, 11, 14, 0, 0, 0, time.Local)
	if got := Calc(in, afternoon); got != boosted {
		t.Fatalf("afternoon score = %d, want %d", got, boosted)
	}
}

func TestCalcFlatBandNoPositionScore(t *testing.T) {
	// 支撑==压力时不加区间位置分
	in := Inputs{Price: 10, Support: 10, Resistance: 10, RSI: 60, Pattern: "trending", K: 50, VolumeRatio: 1.5}
	if got := Calc(in, offHours); got != 0 {
		t.Fatalf("score = %d, want 0", got)
	}
}

func TestCalcInvertedVAlsoScores(t *testing.T) {
	in := Inputs{Price: 10.9, Support: 10, Resistance: 11, RSI: 60, Pattern: "inverted-V", K: 50, VolumeRatio: 1.5}
	// 只有区间位置(+4)和倒V的V系形态分(+20)
	if got := Calc(in, offHours); got != 24 {
		t.Fatalf("score = %d, want 24", got)
	}
}

func TestCalcBounds(t *testing.T) {
	cases := []Inputs{
		{},
		{Price: -1, Support: 5, Resistance: 3, RSI: -10, Pattern: "x", K: -5, VolumeRatio: -1},
		{Price: 1e9, Support: 0, Resistance: 1, RSI: 200, Pattern: "", K: 200, VolumeRatio: 100},
	}
	for i, in := range cases {
		got := Calc(in, openWindow)
		if got < 0 || got > 100 {
			t.Fatalf("case %d: score = %d, out of [0,100]", i, got)
		}
	}
}

func TestAction(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, consts.ActionStrongBuy},
		{70, consts.ActionStrongBuy},
		{69, consts.ActionWeakBuy},
		{55, consts.ActionWeakBuy},
		{54, consts.ActionNeutral},
		{31, consts.ActionNeutral},
		{30, consts.ActionSellWatch},
		{0, consts.ActionSellWatch},
	}
	for _, c := range cases {
		if got := Action(c.score); got != c.want {
			t.Fatalf("Action(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}
