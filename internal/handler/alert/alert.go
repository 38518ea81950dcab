package alert

import (
	"daypulse/internal/alert"
	"daypulse/internal/model"
	"daypulse/pkg/errors"
	"daypulse/pkg/errors/ecode"
	"daypulse/pkg/response"
	"daypulse/pkg/validator"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	store *alert.Store
}

func NewAlertHandler(store *alert.Store) *AlertHandler {
	return &AlertHandler{store: store}
}

// AlertSet 设置某只股票的预警阈值，整体覆盖旧配置
func (ah *AlertHandler) AlertSet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.AlertSetRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.New(ecode.InvalidParams, validator.Translate(err)), nil)
			return
		}
		if req.High == nil && req.Low == nil {
			response.JSON(ctx, errors.New(ecode.InvalidThreshold, "high and low cannot both be empty"), nil)
			return
		}
		if req.High != nil && req.Low != nil && *req.High <= *req.Low {
			response.JSON(ctx, errors.New(ecode.InvalidThreshold, "high must be greater than low"), nil)
			return
		}
		ah.store.Set(req.Code, model.AlertConfig{High: req.High, Low: req.Low})
		response.JSON(ctx, nil, nil)
	}
}

// AlertGet 查询某只股票的预警配置
func (ah *AlertHandler) AlertGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		code := ctx.Query("code")
		if code == "" {
			response.JSON(ctx, errors.New(ecode.InvalidParams, "code is required"), nil)
			return
		}
		cfg, ok := ah.store.Get(code)
		if !ok {
			response.JSON(ctx, errors.New(ecode.NotFound, ""), nil)
			return
		}
		response.JSON(ctx, nil, cfg)
	}
}

// AlertRemove 删除某只股票的预警配置
func (ah *AlertHandler) AlertRemove() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		code := ctx.Query("code")
		if code == "" {
			response.JSON(ctx, errors.New(ecode.InvalidParams, "code is required"), nil)
			return
		}
		ah.store.Remove(code)
		response.JSON(ctx, nil, nil)
	}
}
