package position

import (
	"daypulse/internal/consts"
	"daypulse/internal/model"
	"fmt"
	"github.com/bwmarrin/snowflake"
	"sync"
	"time"
)

// 模拟交易：每次买入加0.2仓（上限1.0），卖出清空全部持仓并结算盈亏。
// 不观察评分输出，只响应显式的买卖指令

type Simulator struct {
	mu     sync.RWMutex
	state  model.PositionState
	trades []model.TradeRecord
	node   *snowflake.Node
}

func NewSimulator() *Simulator {
	// 单进程模拟盘，节点号固定即可
	node, _ := snowflake.NewNode(1)
	return &Simulator{node: node}
}

// Buy 按最新行情买入一档仓位并更新成本价。quote为nil时静默忽略，不改变状态
func (s *Simulator) Buy(quote *model.Quote, at time.Time) (model.TradeRecord, bool) {
	if quote == nil {
		return model.TradeRecord{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hold := s.state.Hold + consts.BuyStep
	if hold > 1.0 {
		hold = 1.0
	}
	s.state.Hold = hold
	s.state.Cost = quote.Price

	rec := model.TradeRecord{
		ID:     s.node.Generate().Int64(),
		Time:   at.Format("01-02 15:04"),
		Code:   quote.Code,
		Action: model.TradeBuy,
		Price:  quote.Price,
		Ratio:  fmt.Sprintf("%.0f%%", consts.BuyStep*100),
	}
	s.appendTrade(rec)
	return rec, true
}

// Sell 清仓卖出并累加已实现盈亏。无持仓或无行情时静默忽略
func (s *Simulator) Sell(quote *model.Quote, at time.Time) (model.TradeRecord, bool) {
	if quote == nil {
		return model.TradeRecord{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Hold <= 0 {
		return model.TradeRecord{}, false
	}

	// 有持仓则必有买入，Cost不会为0
	profit := (quote.Price - s.state.Cost) / s.state.Cost * 100
	s.state.Profit += profit

	rec := model.TradeRecord{
		ID:     s.node.Generate().Int64(),
		Time:   at.Format("01-02 15:04"),
		Code:   quote.Code,
		Action: model.TradeSell,
		Price:  quote.Price,
		Ratio:  fmt.Sprintf("%.0f%%", s.state.Hold*100),
		Profit: fmt.Sprintf("%+.2f%%", profit),
	}
	s.state.Hold = 0
	s.appendTrade(rec)
	return rec, true
}

// State 当前仓位快照
func (s *Simulator) State() model.PositionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Trades 交易流水副本，最旧在前
func (s *Simulator) Trades() []model.TradeRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.TradeRecord, len(s.trades))
	copy(out, s.trades)
	return out
}

// 流水有界，超出后淘汰最旧的，完整历史由数据库保存
func (s *Simulator) appendTrade(rec model.TradeRecord) {
	s.trades = append(s.trades, rec)
	if len(s.trades) > consts.TradeLogCap {
		s.trades = s.trades[len(s.trades)-consts.TradeLogCap:]
	}
}
