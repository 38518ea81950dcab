package utils

import (
	"daypulse/internal/consts"
	"math"
	"time"
)

// Round 保留n位小数，四舍五入
func Round(v float64, n int) float64 {
	p := math.Pow10(n)
	return math.Round(v*p) / p
}

func Round1(v float64) float64 { return Round(v, 1) }
func Round2(v float64) float64 { return Round(v, 2) }
func Round4(v float64) float64 { return Round(v, 4) }

// Stamp2str 时间戳转字符串
func Stamp2str(timestamp int64) string {
	if timestamp == 0 {
		return ""
	}
	return time.Unix(timestamp, 0).Format(consts.TimeLayout)
}

// Str2stamp 字符串转时间戳
func Str2stamp(str string) int64 {
	t, err := time.Parse(consts.TimeLayout, str)
	if err != nil {
		return 0
	}
	return t.Unix()
}

func ContainsStr(slice []string, item string) bool {
	for _, e := range slice {
		if e == item {
			return true
		}
	}
	return false
}
