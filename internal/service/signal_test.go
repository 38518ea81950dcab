package service

import (
	"context"
	"daypulse/internal/alert"
	"daypulse/internal/consts"
	"daypulse/internal/model"
	"daypulse/internal/notify"
	"daypulse/internal/position"
	"daypulse/internal/session"
	sigrec "daypulse/internal/signal"
	"strings"
	"testing"
	"time"
)

type fakeNotifier struct {
	signals []model.SignalEvent
	alerts  []model.AlertState
}

func (f *fakeNotifier) NotifySignal(_ context.Context, event model.SignalEvent) {
	f.signals = append(f.signals, event)
}

func (f *fakeNotifier) NotifyAlert(_ context.Context, _ *model.Quote, state model.AlertState) {
	f.alerts = append(f.alerts, state)
}

var _ notify.Notifier = (*fakeNotifier)(nil)

type fakeQuoteCache struct {
	store map[string]*model.Quote
	sets  []string
}

func newFakeQuoteCache() *fakeQuoteCache {
	return &fakeQuoteCache{store: make(map[string]*model.Quote)}
}

func (f *fakeQuoteCache) SetQuote(_ context.Context, quote *model.Quote, _ time.Duration) error {
	f.store[quote.Code] = quote
	f.sets = append(f.sets, quote.Code)
	return nil
}

func (f *fakeQuoteCache) GetQuote(_ context.Context, code string) (*model.Quote, error) {
	return f.store[code], nil
}

var _ QuoteCache = (*fakeQuoteCache)(nil)

// 持续下跌后小幅反弹的分时序列：RSI超卖、V型反转、价格贴近支撑、
// 末根缩量，不含时段加分也能到75分，稳定触发强买入
func strongBuySeries() model.PriceSeries {
	var prices []float64
	for i := 0; i <= 22; i++ {
		prices = append(prices, 10.0-0.03*float64(i))
	}
	for i := 1; i <= 6; i++ {
		prices = append(prices, 9.34+0.01*float64(i))
	}
	prices = append(prices, 9.42)

	volumes := make([]float64, len(prices))
	for i := range volumes {
		volumes[i] = 1000
	}
	volumes[len(volumes)-1] = 500
	return model.PriceSeries{Prices: prices, Volumes: volumes}
}

func newTestService(fn *fakeNotifier, alerts *alert.Store) *SignalService {
	if alerts == nil {
		alerts = alert.NewStore("")
	}
	return NewSignalService(
		session.New("600586", []string{"600586"}),
		nil,
		alerts,
		sigrec.NewRecorder(),
		position.NewSimulator(),
		fn,
		Options{},
	)
}

func TestProcessStrongBuy(t *testing.T) {
	fn := &fakeNotifier{}
	svc := newTestService(fn, nil)

	svc.process(context.Background(), model.MarketData{
		Code:   "600586",
		Quote:  &model.Quote{Code: "600586", Name: "金晶科技", Price: 9.36},
		Series: strongBuySeries(),
	})

	snap, ok := svc.Latest("600586")
	if !ok {
		t.Fatal("no snapshot after process")
	}
	if !strings.Contains(snap.Pattern, "V") {
		t.Fatalf("pattern = %s, want V-reversal", snap.Pattern)
	}
	if snap.Score < 70 {
		t.Fatalf("score = %d, want >= 70", snap.Score)
	}
	if snap.Action != consts.ActionStrongBuy {
		t.Fatalf("action = %s, want strong_buy", snap.Action)
	}
	if len(fn.signals) != 1 {
		t.Fatalf("signal events = %d, want 1", len(fn.signals))
	}
	if fn.signals[0].Code != "600586" || fn.signals[0].Action != consts.ActionStrongBuy {
		t.Fatalf("unexpected event: %+v", fn.signals[0])
	}
	if got := svc.Signals(10); len(got) != 1 {
		t.Fatalf("signal log = %d records, want 1", len(got))
	}
}

func TestProcessDuplicateSignalNotified(t *testing.T) {
	fn := &fakeNotifier{}
	svc := newTestService(fn, nil)

	data := model.MarketData{
		Code:   "600586",
		Quote:  &model.Quote{Code: "600586", Price: 9.36},
		Series: strongBuySeries(),
	}
	svc.process(context.Background(), data)
	svc.process(context.Background(), data)

	// 同一分钟的重复信号被日志去重，只通知一次
	if len(fn.signals) != 1 {
		t.Fatalf("signal events = %d, want 1 after duplicate refresh", len(fn.signals))
	}
}

func TestProcessAlertBreach(t *testing.T) {
	fn := &fakeNotifier{}
	store := alert.NewStore("")
	high := 9.0
	store.Set("600586", model.AlertConfig{High: &high})
	svc := newTestService(fn, store)

	svc.process(context.Background(), model.MarketData{
		Code:  "600586",
		Quote: &model.Quote{Code: "600586", Price: 9.36},
	})

	snap, _ := svc.Latest("600586")
	if snap.AlertState != string(model.AlertBreachedHigh) {
		t.Fatalf("alert state = %s, want breached-high", snap.AlertState)
	}
	if len(fn.alerts) != 1 || fn.alerts[0] != model.AlertBreachedHigh {
		t.Fatalf("alert notifications = %+v", fn.alerts)
	}
}

func TestProcessQuoteMissingUsesSeriesPrice(t *testing.T) {
	fn := &fakeNotifier{}
	svc := newTestService(fn, nil)

	// 只有分时没有行情：仍产出快照，但不触发信号记录
	svc.process(context.Background(), model.MarketData{
		Code:   "600586",
		Series: strongBuySeries(),
	})

	snap, ok := svc.Latest("600586")
	if !ok {
		t.Fatal("no snapshot when quote missing")
	}
	if snap.Quote != nil {
		t.Fatalf("quote = %+v, want nil", snap.Quote)
	}
	if len(fn.signals) != 0 {
		t.Fatal("signal recorded without a quote")
	}
}

func TestBuySellThroughService(t *testing.T) {
	fn := &fakeNotifier{}
	svc := newTestService(fn, nil)
	ctx := context.Background()

	if _, ok := svc.Buy(ctx, "600586"); ok {
		t.Fatal("buy succeeded without cached quote")
	}

	svc.process(ctx, model.MarketData{
		Code:  "600586",
		Quote: &model.Quote{Code: "600586", Price: 10.0},
	})
	if _, ok := svc.Buy(ctx, "600586"); !ok {
		t.Fatal("buy failed with cached quote")
	}
	if got := svc.Position().Hold; got != consts.BuyStep {
		t.Fatalf("hold = %v, want %v", got, consts.BuyStep)
	}

	svc.process(ctx, model.MarketData{
		Code:  "600586",
		Quote: &model.Quote{Code: "600586", Price: 11.0},
	})
	rec, ok := svc.Sell(ctx, "600586")
	if !ok {
		t.Fatal("sell failed with open position")
	}
	if rec.Profit != "+10.00%" {
		t.Fatalf("profit = %s, want +10.00%%", rec.Profit)
	}
	if svc.Position().Hold != 0 {
		t.Fatal("hold not cleared after sell")
	}
	if len(svc.Trades()) != 2 {
		t.Fatalf("trades = %d, want 2", len(svc.Trades()))
	}
}

func TestProcessWritesQuoteCache(t *testing.T) {
	fn := &fakeNotifier{}
	fc := newFakeQuoteCache()
	svc := NewSignalService(
		session.New("600586", []string{"600586"}),
		nil, alert.NewStore(""), sigrec.NewRecorder(), position.NewSimulator(), fn,
		Options{QuoteCache: fc},
	)

	svc.process(context.Background(), model.MarketData{
		Code:  "600586",
		Quote: &model.Quote{Code: "600586", Price: 10.0},
	})

	if len(fc.sets) != 1 || fc.store["600586"] == nil {
		t.Fatalf("quote cache writes = %v", fc.sets)
	}
	if fc.store["600586"].Price != 10.0 {
		t.Fatalf("cached price = %v, want 10.0", fc.store["600586"].Price)
	}
}

func TestWarmWatchlistFillsSession(t *testing.T) {
	fn := &fakeNotifier{}
	fc := newFakeQuoteCache()
	fc.store["000001"] = &model.Quote{Code: "000001", Price: 12.5}
	fc.store["600586"] = &model.Quote{Code: "600586", Price: 9.0} // 陈旧值

	sess := session.New("600586", []string{"600586", "000001"})
	svc := NewSignalService(sess, nil, alert.NewStore(""), sigrec.NewRecorder(),
		position.NewSimulator(), fn, Options{QuoteCache: fc})

	// 会话里已有的行情不被缓存回填覆盖
	sess.Apply(model.MarketData{Code: "600586", Quote: &model.Quote{Code: "600586", Price: 10.0}})
	svc.WarmWatchlist(context.Background())

	q, ok := sess.Quote("000001")
	if !ok || q.Price != 12.5 {
		t.Fatalf("warmed quote = %+v, want cached 12.5", q)
	}
	q, _ = sess.Quote("600586")
	if q.Price != 10.0 {
		t.Fatalf("session quote = %v, overwritten by stale cache value", q.Price)
	}

	// 回填后的行情立刻可用于交易
	if _, ok := svc.Buy(context.Background(), "000001"); !ok {
		t.Fatal("buy failed on warmed quote")
	}
}

func TestWarmWatchlistWithoutCache(t *testing.T) {
	fn := &fakeNotifier{}
	svc := newTestService(fn, nil)
	// 未配置缓存时直接返回
	svc.WarmWatchlist(context.Background())
	if _, ok := svc.Buy(context.Background(), "600586"); ok {
		t.Fatal("buy succeeded without any quote source")
	}
}

func TestExportCSV(t *testing.T) {
	fn := &fakeNotifier{}
	svc := newTestService(fn, nil)
	ctx := context.Background()

	svc.process(ctx, model.MarketData{
		Code:   "600586",
		Quote:  &model.Quote{Code: "600586", Price: 9.36},
		Series: strongBuySeries(),
	})
	svc.Buy(ctx, "600586")

	sig, err := svc.ExportSignalsCSV()
	if err != nil {
		t.Fatalf("export signals: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(sig)), "\n")
	if len(lines) != 2 {
		t.Fatalf("signal csv lines = %d, want header+1", len(lines))
	}
	if lines[0] != "date,time,code,type,price,score" {
		t.Fatalf("signal csv header = %s", lines[0])
	}
	if !strings.Contains(lines[1], "600586") || !strings.Contains(lines[1], "strong_buy") {
		t.Fatalf("signal csv row = %s", lines[1])
	}

	trades, err := svc.ExportTradesCSV()
	if err != nil {
		t.Fatalf("export trades: %v", err)
	}
	lines = strings.Split(strings.TrimSpace(string(trades)), "\n")
	if len(lines) != 2 {
		t.Fatalf("trade csv lines = %d, want header+1", len(lines))
	}
	if !strings.Contains(lines[1], "buy") || !strings.Contains(lines[1], "20%") {
		t.Fatalf("trade csv row = %s", lines[1])
	}
}
