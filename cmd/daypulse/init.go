package main

import (
	"context"
	"daypulse/conf"
	alertstore "daypulse/internal/alert"
	"daypulse/internal/dao"
	"daypulse/internal/dao/query"
	alerthandler "daypulse/internal/handler/alert"
	markethandler "daypulse/internal/handler/market"
	positionhandler "daypulse/internal/handler/position"
	signalhandler "daypulse/internal/handler/signal"
	"daypulse/internal/market"
	"daypulse/internal/model/entity"
	"daypulse/internal/notify"
	"daypulse/internal/position"
	"daypulse/internal/router"
	"daypulse/internal/service"
	"daypulse/internal/session"
	sigrec "daypulse/internal/signal"
	"daypulse/pkg/cache"
	"daypulse/pkg/db"
	"daypulse/pkg/logger"
	"daypulse/pkg/recorder"

	"gorm.io/gorm"
)

// InitRouter 组装全部依赖并返回路由与清理函数
func InitRouter(ctx context.Context) (Router, func()) {
	appCfg := &conf.AppConfig

	// 数据库与redis按需启用，本地轻量跑法可以全关
	var gdb *gorm.DB
	if appCfg.Db.Host != "" {
		gdb = db.Init(db.NewConfig(appCfg.Db.Username, appCfg.Db.Password, appCfg.Db.Host, appCfg.Db.Port, appCfg.Db.DbName))
		if err := gdb.AutoMigrate(&entity.Signal{}, &entity.Trade{}); err != nil {
			logger.Fatalf("auto migrate failed: %v", err)
		}
	}
	redisEnabled := appCfg.Redis.Addr != ""
	if redisEnabled {
		cache.InitRedis(appCfg.Redis)
	}

	sess := session.New(appCfg.Market.ActiveCode, appCfg.Market.Watchlist)
	client := market.NewClient(appCfg.Market)
	alerts := alertstore.NewStore(appCfg.Alert.Path)
	rec := sigrec.NewRecorder()
	sim := position.NewSimulator()
	notifier := notify.New(appCfg)

	var signalDao dao.SignalDao
	var tradeDao dao.TradeDao
	if gdb != nil {
		signalDao = query.NewSignalDao(gdb)
		tradeDao = query.NewTradeDao(gdb)
	}

	var quoteCache service.QuoteCache
	if redisEnabled {
		quoteCache = cache.Quotes{}
	}

	svc := service.NewSignalService(sess, client, alerts, rec, sim, notifier, service.Options{
		SignalDao:    signalDao,
		TradeDao:     tradeDao,
		JSONRecorder: recorder.NewJSONFileRecorder("logs/signal-log.json"),
		QuoteCache:   quoteCache,
	})
	// 重启后先用redis里的旧行情把自选股页填上
	svc.WarmWatchlist(ctx)
	go svc.Run(ctx)

	monitor := market.NewMonitor(client, sess, appCfg.Monitor.Interval)
	if appCfg.Monitor.AutoRun {
		monitor.Start()
	}

	wsh := markethandler.NewWsHandler(svc, sess)
	go wsh.BroadcastSnapshots(appCfg.Monitor.Interval)

	apiRouter := router.NewApiRouter(
		markethandler.NewMarketHandler(svc, sess, monitor),
		wsh,
		signalhandler.NewSignalHandler(svc, signalDao),
		positionhandler.NewPositionHandler(svc, sess, tradeDao),
		alerthandler.NewAlertHandler(alerts),
	)

	cleanup := func() {
		monitor.Stop()
		if redisEnabled {
			cache.CloseRedis()
		}
	}
	return apiRouter, cleanup
}
