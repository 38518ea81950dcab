package session

import (
	"daypulse/internal/model"
	"daypulse/utils"
	"sync"
)

// Session 会话上下文：当前股票、按代码缓存的行情与分时序列。
// 所有核心计算通过它读取状态，不依赖包级全局变量。
// 切换当前股票不清理其他股票的缓存，自选股列表直接读缓存
type Session struct {
	mu        sync.RWMutex
	active    string
	watchlist []string
	quotes    map[string]*model.Quote
	series    map[string]model.PriceSeries

	inbox *Mailbox[model.MarketData]
}

func New(active string, watchlist []string) *Session {
	wl := make([]string, len(watchlist))
	copy(wl, watchlist)
	return &Session{
		active:    active,
		watchlist: wl,
		quotes:    make(map[string]*model.Quote),
		series:    make(map[string]model.PriceSeries),
		inbox:     NewMailbox[model.MarketData](),
	}
}

// Inbox 后台抓取与应用步骤之间的单槽信箱
func (s *Session) Inbox() *Mailbox[model.MarketData] {
	return s.inbox
}

// Active 当前股票代码
func (s *Session) Active() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// SetActive 切换当前股票，不在自选股里的顺带加入
func (s *Session) SetActive(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = code
	if !utils.ContainsStr(s.watchlist, code) {
		s.watchlist = append(s.watchlist, code)
	}
}

// Watchlist 自选股代码列表副本
func (s *Session) Watchlist() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.watchlist))
	copy(out, s.watchlist)
	return out
}

// AddWatch 添加自选股
func (s *Session) AddWatch(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !utils.ContainsStr(s.watchlist, code) {
		s.watchlist = append(s.watchlist, code)
	}
}

// Apply 应用一次抓取结果：非空部分整体替换对应缓存，从不按字段修补。
// 行情或分时抓取失败时保留旧值，本周期相关计算跳过
func (s *Session) Apply(data model.MarketData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if data.Quote != nil {
		s.quotes[data.Code] = data.Quote
	}
	if data.Series.Len() > 0 {
		s.series[data.Code] = data.Series
	}
}

// Quote 某只股票的缓存行情
func (s *Session) Quote(code string) (*model.Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[code]
	return q, ok
}

// Series 某只股票的缓存分时序列
func (s *Session) Series(code string) (model.PriceSeries, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ser, ok := s.series[code]
	return ser, ok
}
