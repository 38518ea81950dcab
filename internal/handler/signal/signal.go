package signal

import (
	"daypulse/internal/consts"
	"daypulse/internal/dao"
	"daypulse/internal/service"
	"daypulse/pkg/errors"
	"daypulse/pkg/errors/ecode"
	"daypulse/pkg/response"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

type SignalHandler struct {
	svc       *service.SignalService
	signalDao dao.SignalDao // nil表示未启用落库
}

func NewSignalHandler(svc *service.SignalService, signalDao dao.SignalDao) *SignalHandler {
	return &SignalHandler{svc: svc, signalDao: signalDao}
}

// SignalGetList 内存信号日志，最新在前
func (sh *SignalHandler) SignalGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		limit := cast.ToInt(ctx.DefaultQuery("limit", "0"))
		response.JSON(ctx, nil, sh.svc.Signals(limit))
	}
}

// SignalHistoryGet 数据库中的信号历史。带start/end时按时间范围查，
// 不带时返回最近limit条
func (sh *SignalHandler) SignalHistoryGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if sh.signalDao == nil {
			response.JSON(ctx, errors.New(ecode.NotFound, "signal history storage disabled"), nil)
			return
		}
		code := ctx.Query("code")
		if code == "" {
			response.JSON(ctx, errors.New(ecode.InvalidParams, "code is required"), nil)
			return
		}

		if ctx.Query("start") == "" && ctx.Query("end") == "" {
			limit := cast.ToInt(ctx.DefaultQuery("limit", "20"))
			signals, err := sh.signalDao.GetRecentSignals(ctx, code, limit)
			if err != nil {
				response.JSON(ctx, errors.New(ecode.InternalErr, err.Error()), nil)
				return
			}
			response.JSON(ctx, nil, signals)
			return
		}

		start, err1 := time.ParseInLocation(consts.TimeLayout, ctx.Query("start"), time.Local)
		end, err2 := time.ParseInLocation(consts.TimeLayout, ctx.Query("end"), time.Local)
		if err1 != nil || err2 != nil {
			response.JSON(ctx, errors.New(ecode.InvalidParams, "start/end format: "+consts.TimeLayout), nil)
			return
		}

		signals, err := sh.signalDao.GetSignalsByTimeRange(ctx, code, start, end)
		if err != nil {
			response.JSON(ctx, errors.New(ecode.InternalErr, err.Error()), nil)
			return
		}
		response.JSON(ctx, nil, signals)
	}
}

// SignalExportCSV 导出信号日志为CSV附件
func (sh *SignalHandler) SignalExportCSV() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		data, err := sh.svc.ExportSignalsCSV()
		if err != nil {
			response.JSON(ctx, errors.New(ecode.InternalErr, err.Error()), nil)
			return
		}
		ctx.Header("Content-Disposition", `attachment; filename="signals.csv"`)
		ctx.Data(200, "text/csv", data)
	}
}
