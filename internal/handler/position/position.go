package position

import (
	"daypulse/internal/dao"
	"daypulse/internal/service"
	"daypulse/internal/session"
	"daypulse/pkg/errors"
	"daypulse/pkg/errors/ecode"
	"daypulse/pkg/response"
	"daypulse/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

type PositionHandler struct {
	svc      *service.SignalService
	sess     *session.Session
	tradeDao dao.TradeDao // nil表示未启用落库
}

func NewPositionHandler(svc *service.SignalService, sess *session.Session, tradeDao dao.TradeDao) *PositionHandler {
	return &PositionHandler{svc: svc, sess: sess, tradeDao: tradeDao}
}

type tradeRequest struct {
	Code string `json:"code"` // 空则用当前股票
}

func (ph *PositionHandler) code(ctx *gin.Context) (string, error) {
	var req tradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return "", errors.New(ecode.InvalidParams, validator.Translate(err))
	}
	if req.Code == "" {
		return ph.sess.Active(), nil
	}
	return req.Code, nil
}

// Buy 按缓存行情买入一档仓位
func (ph *PositionHandler) Buy() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		code, err := ph.code(ctx)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		rec, ok := ph.svc.Buy(ctx, code)
		if !ok {
			response.JSON(ctx, errors.New(ecode.NoQuoteCached, ""), nil)
			return
		}
		response.JSON(ctx, nil, gin.H{"trade": rec, "position": ph.svc.Position()})
	}
}

// Sell 清仓卖出并结算盈亏
func (ph *PositionHandler) Sell() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		code, err := ph.code(ctx)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		rec, ok := ph.svc.Sell(ctx, code)
		if !ok {
			// 无持仓与无行情对客户端是同一种不可操作状态
			response.JSON(ctx, errors.New(ecode.NoPosition, ""), nil)
			return
		}
		response.JSON(ctx, nil, gin.H{"trade": rec, "position": ph.svc.Position()})
	}
}

// StateGet 当前仓位与累计盈亏
func (ph *PositionHandler) StateGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		response.JSON(ctx, nil, ph.svc.Position())
	}
}

// TradesGet 交易流水，最旧在前
func (ph *PositionHandler) TradesGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		response.JSON(ctx, nil, ph.svc.Trades())
	}
}

// TradesHistoryGet 数据库中的交易流水，内存日志被淘汰后的完整历史
func (ph *PositionHandler) TradesHistoryGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ph.tradeDao == nil {
			response.JSON(ctx, errors.New(ecode.NotFound, "trade history storage disabled"), nil)
			return
		}
		code := ctx.DefaultQuery("code", ph.sess.Active())
		limit := cast.ToInt(ctx.DefaultQuery("limit", "50"))
		trades, err := ph.tradeDao.GetTradesByCode(ctx, code, limit)
		if err != nil {
			response.JSON(ctx, errors.New(ecode.InternalErr, err.Error()), nil)
			return
		}
		response.JSON(ctx, nil, trades)
	}
}

// TradesExportCSV 导出交易流水为CSV附件
func (ph *PositionHandler) TradesExportCSV() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		data, err := ph.svc.ExportTradesCSV()
		if err != nil {
			response.JSON(ctx, errors.New(ecode.InternalErr, err.Error()), nil)
			return
		}
		ctx.Header("Content-Disposition", `attachment; filename="trades.csv"`)
		ctx.Data(200, "text/csv", data)
	}
}
