package position

import (
	"daypulse/internal/model"
	"math"
	"testing"
	"time"
)

var now = time.Date(2024, 3, 11, 10, 0, 0, 0, time.Local)

func quote(price float64) *model.Quote {
	return &model.Quote{Code: "600586", Name: "金晶科技", Price: price}
}

func TestBuyAccumulatesAndClamps(t *testing.T) {
	s := NewSimulator()
	for i := 0; i < 5; i++ {
		if _, ok := s.Buy(quote(10+float64(i)*0.1), now); !ok {
			t.Fatalf("buy %d rejected", i)
		}
	}
	if got := s.State().Hold; got != 1.0 {
		t.Fatalf("hold after 5 buys = %v, want exactly 1.0", got)
	}
	// 已满仓继续买入，仓位不超过1.0，成本价仍更新
	s.Buy(quote(11), now)
	st := s.State()
	if st.Hold != 1.0 {
		t.Fatalf("hold = %v, want 1.0", st.Hold)
	}
	if st.Cost != 11 {
		t.Fatalf("cost = %v, want 11", st.Cost)
	}
}

func TestBuyNoQuoteIsNoop(t *testing.T) {
	s := NewSimulator()
	if _, ok := s.Buy(nil, now); ok {
		t.Fatal("buy without quote should be rejected")
	}
	if st := s.State(); st.Hold != 0 || st.Cost != 0 {
		t.Fatalf("state mutated on failed buy: %+v", st)
	}
	if len(s.Trades()) != 0 {
		t.Fatal("trade recorded on failed buy")
	}
}

func TestSellRealizesProfit(t *testing.T) {
	s := NewSimulator()
	s.Buy(quote(10), now)
	rec, ok := s.Sell(quote(10.5), now.Add(time.Hour))
	if !ok {
		t.Fatal("sell rejected")
	}

	st := s.State()
	if st.Hold != 0 {
		t.Fatalf("hold after sell = %v, want 0", st.Hold)
	}
	want := (10.5 - 10.0) / 10.0 * 100
	if math.Abs(st.Profit-want) > 1e-9 {
		t.Fatalf("profit = %v, want %v", st.Profit, want)
	}
	if rec.Profit != "+5.00%" {
		t.Fatalf("trade profit = %q, want +5.00%%", rec.Profit)
	}
	if rec.Ratio != "20%" {
		t.Fatalf("trade ratio = %q, want 20%%", rec.Ratio)
	}
}

func TestSellAccumulatesAcrossRounds(t *testing.T) {
	s := NewSimulator()
	s.Buy(quote(10), now)
	s.Sell(quote(11), now) // +10%
	s.Buy(quote(10), now)
	s.Sell(quote(9), now) // -10%
	if got := s.State().Profit; math.Abs(got) > 1e-9 {
		t.Fatalf("cumulative profit = %v, want 0", got)
	}
}

func TestSellWithoutPositionIsNoop(t *testing.T) {
	s := NewSimulator()
	if _, ok := s.Sell(quote(10), now); ok {
		t.Fatal("sell with no position should be rejected")
	}
	if _, ok := s.Sell(nil, now); ok {
		t.Fatal("sell without quote should be rejected")
	}
}

func TestTradeLedger(t *testing.T) {
	s := NewSimulator()
	s.Buy(quote(10), now)
	s.Buy(quote(10.2), now.Add(time.Minute))
	s.Sell(quote(10.4), now.Add(2*time.Minute))

	trades := s.Trades()
	if len(trades) != 3 {
		t.Fatalf("trades = %d, want 3", len(trades))
	}
	if trades[0].Action != model.TradeBuy || trades[2].Action != model.TradeSell {
		t.Fatalf("trade order wrong: %+v", trades)
	}
	// 卖出时持仓40%
	if trades[2].Ratio != "40%" {
		t.Fatalf("sell ratio = %q, want 40%%", trades[2].Ratio)
	}
	for _, tr := range trades {
		if tr.ID == 0 {
			t.Fatal("trade id not assigned")
		}
	}
}
