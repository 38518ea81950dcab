package market

import (
	"daypulse/internal/market"
	"daypulse/internal/service"
	"daypulse/internal/session"
	"daypulse/pkg/errors"
	"daypulse/pkg/errors/ecode"
	"daypulse/pkg/response"
	"daypulse/pkg/validator"

	"github.com/gin-gonic/gin"
)

type MarketHandler struct {
	svc     *service.SignalService
	sess    *session.Session
	monitor *market.Monitor
}

func NewMarketHandler(svc *service.SignalService, sess *session.Session, monitor *market.Monitor) *MarketHandler {
	return &MarketHandler{svc: svc, sess: sess, monitor: monitor}
}

// SnapshotGet 当前股票（或指定代码）的最新快照：行情+指标+形态+评分
func (mh *MarketHandler) SnapshotGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		code := ctx.DefaultQuery("code", mh.sess.Active())
		snap, ok := mh.svc.Latest(code)
		if !ok {
			response.JSON(ctx, errors.New(ecode.QuoteUnavailable, ""), nil)
			return
		}
		response.JSON(ctx, nil, snap)
	}
}

// Refresh 立即抓取并重算当前股票，不等下一个监控周期
func (mh *MarketHandler) Refresh() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		snap, ok := mh.svc.RefreshNow(ctx)
		if !ok {
			response.JSON(ctx, errors.New(ecode.QuoteUnavailable, ""), nil)
			return
		}
		response.JSON(ctx, nil, snap)
	}
}

type watchItem struct {
	Code  string      `json:"code"`
	Quote interface{} `json:"quote,omitempty"`
}

// WatchlistGet 自选股列表及各自的缓存行情
func (mh *MarketHandler) WatchlistGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		codes := mh.sess.Watchlist()
		items := make([]watchItem, 0, len(codes))
		for _, code := range codes {
			item := watchItem{Code: code}
			if q, ok := mh.sess.Quote(code); ok {
				item.Quote = q
			}
			items = append(items, item)
		}
		response.JSON(ctx, nil, items)
	}
}

type codeRequest struct {
	Code string `json:"code" binding:"required"`
}

// WatchlistAdd 添加自选股
func (mh *MarketHandler) WatchlistAdd() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req codeRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.New(ecode.InvalidParams, validator.Translate(err)), nil)
			return
		}
		mh.sess.AddWatch(req.Code)
		response.JSON(ctx, nil, mh.sess.Watchlist())
	}
}

// ActiveSet 切换当前监控的股票
func (mh *MarketHandler) ActiveSet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req codeRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.New(ecode.InvalidParams, validator.Translate(err)), nil)
			return
		}
		mh.sess.SetActive(req.Code)
		response.JSON(ctx, nil, gin.H{"active": mh.sess.Active()})
	}
}

// MonitorStart 开启后台监控
func (mh *MarketHandler) MonitorStart() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		mh.monitor.Start()
		response.JSON(ctx, nil, gin.H{"running": mh.monitor.Running()})
	}
}

// MonitorStop 停止后台监控
func (mh *MarketHandler) MonitorStop() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		mh.monitor.Stop()
		response.JSON(ctx, nil, gin.H{"running": mh.monitor.Running()})
	}
}

// MonitorStatus 监控开关状态
func (mh *MarketHandler) MonitorStatus() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		response.JSON(ctx, nil, gin.H{"running": mh.monitor.Running()})
	}
}
