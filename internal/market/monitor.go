package market

import (
	"context"
	"daypulse/internal/model"
	"daypulse/internal/session"
	"daypulse/pkg/logger"
	"sync"
	"time"
)

// Monitor 后台监控：按固定周期抓取当前股票的 (行情,分时) 数据对
// 投递到会话信箱，并顺带刷新自选股的行情缓存。
// 可随时开关，对应原应用里的"监控"按钮

type Monitor struct {
	client   *Client
	sess     *session.Session
	interval time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
}

func NewMonitor(client *Client, sess *session.Session, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Monitor{client: client, sess: sess, interval: interval}
}

// Start 开启监控，重复调用无效果
func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.running = true

	go m.loop(ctx)
	logger.Infof("monitor started, interval=%s", m.interval)
}

// Stop 停止监控
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return
	}
	m.cancel()
	m.running = false
	logger.Info("monitor stopped")
}

func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Monitor) loop(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	// 启动后立即抓一轮，不等第一个周期
	m.fetchOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.fetchOnce(ctx)
		}
	}
}

// fetchOnce 当前股票走信箱（由应用步骤消费并计算），
// 其他自选股只刷新行情缓存供列表页展示
func (m *Monitor) fetchOnce(ctx context.Context) {
	active := m.sess.Active()
	m.sess.Inbox().Put(m.client.FetchPair(ctx, active))

	for _, code := range m.sess.Watchlist() {
		if code == active {
			continue
		}
		quote, err := m.client.QuoteGet(ctx, code)
		if err != nil {
			logger.Debugf("watchlist quote fetch failed for %s: %v", code, err)
			continue
		}
		m.sess.Apply(model.MarketData{Code: code, Quote: quote})
	}
}
