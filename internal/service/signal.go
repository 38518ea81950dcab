package service

import (
	"context"
	"daypulse/internal/alert"
	"daypulse/internal/consts"
	"daypulse/internal/dao"
	"daypulse/internal/indicator"
	"daypulse/internal/market"
	"daypulse/internal/model"
	"daypulse/internal/model/entity"
	"daypulse/internal/notify"
	"daypulse/internal/position"
	"daypulse/internal/score"
	"daypulse/internal/session"
	sigrec "daypulse/internal/signal"
	"daypulse/pkg/logger"
	"daypulse/pkg/recorder"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"gorm.io/datatypes"
)

// SignalService 信号流水线：消费信箱里的 (行情,分时) 数据对，
// 应用到会话缓存后重算指标、形态、趋势与评分，必要时记录信号并外发通知。
// 整个流水线单协程消费，快照内的所有字段保证来自同一对数据
type SignalService struct {
	sess     *session.Session
	client   *market.Client
	alerts   *alert.Store
	recorder *sigrec.Recorder
	sim      *position.Simulator
	notifier notify.Notifier

	signalDao dao.SignalDao // nil表示不落库
	tradeDao  dao.TradeDao
	jsonRec   *recorder.JSONFileRecorder // nil表示不写文件

	quoteCache QuoteCache // nil表示不启用进程外缓存

	mu     sync.RWMutex
	latest map[string]*model.Snapshot // code -> 最近一次快照
}

// QuoteCache 行情快照的进程外缓存。每次刷新写入，
// 启动时回填会话缓存，重启后自选股页立刻有数据可显示
type QuoteCache interface {
	SetQuote(ctx context.Context, quote *model.Quote, ttl time.Duration) error
	GetQuote(ctx context.Context, code string) (*model.Quote, error)
}

type Options struct {
	SignalDao    dao.SignalDao
	TradeDao     dao.TradeDao
	JSONRecorder *recorder.JSONFileRecorder
	QuoteCache   QuoteCache
}

func NewSignalService(
	sess *session.Session,
	client *market.Client,
	alerts *alert.Store,
	rec *sigrec.Recorder,
	sim *position.Simulator,
	notifier notify.Notifier,
	opts Options,
) *SignalService {
	return &SignalService{
		sess:       sess,
		client:     client,
		alerts:     alerts,
		recorder:   rec,
		sim:        sim,
		notifier:   notifier,
		signalDao:  opts.SignalDao,
		tradeDao:   opts.TradeDao,
		jsonRec:    opts.JSONRecorder,
		quoteCache: opts.QuoteCache,
		latest:     make(map[string]*model.Snapshot),
	}
}

// WarmWatchlist 用进程外缓存回填会话里还没有行情的自选股，
// 启动时调用一次，抓取成功后的新行情会整体覆盖回填值
func (s *SignalService) WarmWatchlist(ctx context.Context) {
	if s.quoteCache == nil {
		return
	}
	for _, code := range s.sess.Watchlist() {
		if _, ok := s.sess.Quote(code); ok {
			continue
		}
		quote, err := s.quoteCache.GetQuote(ctx, code)
		if err != nil {
			logger.Debugf("warm quote failed for %s: %v", code, err)
			continue
		}
		if quote != nil {
			s.sess.Apply(model.MarketData{Code: code, Quote: quote})
		}
	}
}

// Run 阻塞消费信箱直到ctx取消，由调用方放到单独协程里跑
func (s *SignalService) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.sess.Inbox().Wait():
			data, ok := s.sess.Inbox().Take()
			if !ok {
				continue
			}
			s.process(ctx, data)
		}
	}
}

// RefreshNow 手动触发一次当前股票的抓取与计算，下拉刷新用
func (s *SignalService) RefreshNow(ctx context.Context) (*model.Snapshot, bool) {
	code := s.sess.Active()
	s.process(ctx, s.client.FetchPair(ctx, code))
	return s.Latest(code)
}

// process 应用一次抓取结果并重算快照
func (s *SignalService) process(ctx context.Context, data model.MarketData) {
	s.sess.Apply(data)

	quote, okQ := s.sess.Quote(data.Code)
	series, okS := s.sess.Series(data.Code)
	if !okQ && !okS {
		return // 两路都从未成功过，无事可做
	}

	set := indicator.Compute(series)
	pattern := indicator.DetectPattern(series.Prices)
	trend, trendDir := indicator.PredictTrend(series.Prices, set.MA5, set.MA10)

	// 评分用行情最新价，行情缺失时退回分时最新价
	price := series.Last()
	if okQ {
		price = quote.Price
	}

	now := time.Now()
	sc := score.Calc(score.FromSnapshot(price, set, pattern), now)
	action := score.Action(sc)

	alertState := model.AlertNone
	if okQ {
		alertState = s.alerts.Check(data.Code, quote.Price)
	}

	snap := &model.Snapshot{
		Quote:      quote,
		Indicators: set,
		Pattern:    pattern,
		Trend:      trend,
		TrendDir:   trendDir,
		Score:      sc,
		Action:     action,
		AlertState: string(alertState),
	}

	s.mu.Lock()
	s.latest[data.Code] = snap
	s.mu.Unlock()

	if s.quoteCache != nil && okQ {
		if err := s.quoteCache.SetQuote(ctx, quote, 5*time.Minute); err != nil {
			logger.Debugf("cache quote failed: %v", err)
		}
	}

	if action == consts.ActionStrongBuy && okQ {
		s.recordSignal(ctx, quote, sc, set, now)
	}
	if alertState != model.AlertNone && okQ {
		s.notifier.NotifyAlert(ctx, quote, alertState)
	}
}

// recordSignal 强买入信号入内存日志，新记录再外发通知并落库。
// 相邻重复（同一分钟同一代码）被日志去重，不会重复通知
func (s *SignalService) recordSignal(ctx context.Context, quote *model.Quote, sc int, set model.IndicatorSet, at time.Time) {
	if !s.recorder.Append(quote.Code, consts.ActionStrongBuy, quote.Price, sc, at) {
		return
	}

	event := model.SignalEvent{
		Code:      quote.Code,
		Name:      quote.Name,
		Action:    consts.ActionStrongBuy,
		Price:     quote.Price,
		Score:     sc,
		Timestamp: at.Unix(),
	}
	s.notifier.NotifySignal(ctx, event)

	if s.jsonRec != nil {
		if err := s.jsonRec.Record(event); err != nil {
			logger.Warnf("record signal to file failed: %v", err)
		}
	}

	if s.signalDao != nil {
		indicators, _ := json.Marshal(set)
		sig := &entity.Signal{
			Code:       quote.Code,
			Action:     consts.ActionStrongBuy,
			Price:      quote.Price,
			Score:      sc,
			Indicators: datatypes.JSON(indicators),
			SignalTime: at,
		}
		if err := s.signalDao.SaveSignal(ctx, sig); err != nil {
			logger.Warnf("persist signal failed: %v", err)
		}
	}
}

// Latest 某只股票最近一次计算出的快照
func (s *SignalService) Latest(code string) (*model.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.latest[code]
	return snap, ok
}

// Signals 内存信号日志，最新在前
func (s *SignalService) Signals(n int) []model.SignalRecord {
	return s.recorder.Latest(n)
}

// Buy 按缓存行情买入一档仓位
func (s *SignalService) Buy(ctx context.Context, code string) (model.TradeRecord, bool) {
	quote, _ := s.sess.Quote(code)
	rec, ok := s.sim.Buy(quote, time.Now())
	if ok {
		s.persistTrade(ctx, rec)
	}
	return rec, ok
}

// Sell 清仓卖出
func (s *SignalService) Sell(ctx context.Context, code string) (model.TradeRecord, bool) {
	quote, _ := s.sess.Quote(code)
	rec, ok := s.sim.Sell(quote, time.Now())
	if ok {
		s.persistTrade(ctx, rec)
	}
	return rec, ok
}

// Position 当前仓位快照
func (s *SignalService) Position() model.PositionState {
	return s.sim.State()
}

// Trades 内存交易流水，最旧在前
func (s *SignalService) Trades() []model.TradeRecord {
	return s.sim.Trades()
}

func (s *SignalService) persistTrade(ctx context.Context, rec model.TradeRecord) {
	if s.tradeDao == nil {
		return
	}
	trade := &entity.Trade{
		TradeID:   rec.ID,
		Code:      rec.Code,
		Action:    rec.Action,
		Price:     rec.Price,
		Ratio:     rec.Ratio,
		Profit:    rec.Profit,
		TradeTime: time.Now(),
	}
	if err := s.tradeDao.SaveTrade(ctx, trade); err != nil {
		logger.Warnf("persist trade failed: %v", err)
	}
}
