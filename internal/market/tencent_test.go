package market

import (
	"strings"
	"testing"
)

// 按实际接口字段顺序构造的样例payload
func sampleQuotePayload() string {
	fields := make([]string, 50)
	for i := range fields {
		fields[i] = "0"
	}
	fields[0] = `v_sh600586="1`
	fields[1] = "金晶科技"
	fields[2] = "600586"
	fields[3] = "10.50"
	fields[5] = "10.30"
	fields[6] = "125000"
	fields[32] = "2.44"
	fields[33] = "10.60"
	fields[34] = "10.25"
	return strings.Join(fields, "~")
}

func TestParseQuote(t *testing.T) {
	q, err := ParseQuote("600586", sampleQuotePayload())
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if q.Code != "600586" || q.Name != "金晶科技" {
		t.Fatalf("identity = (%s,%s)", q.Code, q.Name)
	}
	if q.Price != 10.50 || q.ChangePct != 2.44 {
		t.Fatalf("price/change = (%v,%v)", q.Price, q.ChangePct)
	}
	if q.Open != 10.30 || q.High != 10.60 || q.Low != 10.25 || q.Volume != 125000 {
		t.Fatalf("ohlv = (%v,%v,%v,%v)", q.Open, q.High, q.Low, q.Volume)
	}
}

func TestParseQuoteBadPayload(t *testing.T) {
	if _, err := ParseQuote("600586", "pv_none"); err == nil {
		t.Fatal("expected error for payload without v_ marker")
	}
	if _, err := ParseQuote("600586", `v_sh600586="1~too~short"`); err == nil {
		t.Fatal("expected error for short payload")
	}
}

func TestParseMinuteSeries(t *testing.T) {
	body := `min_data="\n\0930 10.50 1200\n\0931 10.52 800\n\0932 10.48 950`
	series := ParseMinuteSeries(body)
	if series.Len() != 3 {
		t.Fatalf("len = %d, want 3", series.Len())
	}
	if series.Prices[0] != 10.50 || series.Prices[2] != 10.48 {
		t.Fatalf("prices = %v", series.Prices)
	}
	if series.Volumes[1] != 800 {
		t.Fatalf("volumes = %v", series.Volumes)
	}
}

func TestParseMinuteSeriesBadLines(t *testing.T) {
	body := `min_data="\n\0930 10.50 1200\n\garbage\n\0931 abc 800\n\0932 10.48 950`
	series := ParseMinuteSeries(body)
	// 坏行跳过，好行保留
	if series.Len() != 2 {
		t.Fatalf("len = %d, want 2", series.Len())
	}
}

func TestParseMinuteSeriesEmpty(t *testing.T) {
	if got := ParseMinuteSeries(""); got.Len() != 0 {
		t.Fatalf("len = %d, want 0", got.Len())
	}
}

func TestNormalizeSymbol(t *testing.T) {
	cases := map[string]string{
		"600586":   "sh600586",
		"000001":   "sz000001",
		"300750":   "sz300750",
		"sh600519": "sh600519",
	}
	for in, want := range cases {
		if got := normalizeSymbol(in); got != want {
			t.Fatalf("normalizeSymbol(%s) = %s, want %s", in, got, want)
		}
	}
}
