package router

import (
	"daypulse/internal/handler/alert"
	"daypulse/internal/handler/market"
	"daypulse/internal/handler/position"
	"daypulse/internal/handler/signal"
	"daypulse/internal/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ApiRouter struct {
	mh  *market.MarketHandler
	wsh *market.WsHandler
	sh  *signal.SignalHandler
	ph  *position.PositionHandler
	ah  *alert.AlertHandler
}

func NewApiRouter(mh *market.MarketHandler, wsh *market.WsHandler, sh *signal.SignalHandler, ph *position.PositionHandler, ah *alert.AlertHandler) *ApiRouter {
	return &ApiRouter{mh: mh, wsh: wsh, sh: sh, ph: ph, ah: ah}
}

func (api *ApiRouter) Load(g *gin.Engine) {
	g.Use(gin.Recovery(), middleware.RequestId(), middleware.Logger, middleware.NoCache(), middleware.Options(), middleware.Secure())

	g.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	base := g.Group("/api/v1")

	m := base.Group("/market")
	{
		m.GET("/snapshot", api.mh.SnapshotGet())
		m.POST("/refresh", api.mh.Refresh())
		m.GET("/watchlist", api.mh.WatchlistGet())
		m.POST("/watchlist", api.mh.WatchlistAdd())
		m.POST("/active", api.mh.ActiveSet())
		m.GET("/ws", api.wsh.ServeWS) // 通过websocket连接获取快照

		m.POST("/monitor/start", api.mh.MonitorStart())
		m.POST("/monitor/stop", api.mh.MonitorStop())
		m.GET("/monitor/status", api.mh.MonitorStatus())
	}

	sg := base.Group("/signal")
	{
		sg.GET("/list", api.sh.SignalGetList())
		sg.GET("/history", api.sh.SignalHistoryGet())
		sg.GET("/export", api.sh.SignalExportCSV())
	}

	p := base.Group("/position")
	{
		p.POST("/buy", api.ph.Buy())
		p.POST("/sell", api.ph.Sell())
		p.GET("/state", api.ph.StateGet())
		p.GET("/trades", api.ph.TradesGet())
		p.GET("/trades/history", api.ph.TradesHistoryGet())
		p.GET("/trades/export", api.ph.TradesExportCSV())
	}

	a := base.Group("/alert")
	{
		a.POST("/set", api.ah.AlertSet())
		a.GET("/get", api.ah.AlertGet())
		a.DELETE("/remove", api.ah.AlertRemove())
	}
}
