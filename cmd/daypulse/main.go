package main

import (
	"context"
	"daypulse/conf"
	"daypulse/pkg/logger"
	"log"
)

func main() {
	// 加载配置文件
	if err := conf.LoadConfig("config.yaml"); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(conf.AppConfig.Log)
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r, cleanup := InitRouter(ctx)

	srv := NewServer(&conf.AppConfig)
	srv.RegisterOnShutdown(func() {
		cancel()
		cleanup()
	})
	srv.Run(r)
}
