package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"iptv-hub/blog-backend/config"
	"iptv-hub/blog-backend/internal/database"
	"iptv-hub/blog-backend/internal/events"
	"iptv-hub/blog-backend/internal/route"
)

// setupLogger 按配置初始化全局日志
func setupLogger() {
	level, err := zerolog.ParseLevel(config.Conf.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.Conf.Log.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	// 1. 加载配置
	config.MustLoad("config.yaml")
	setupLogger()

	// 2. 初始化数据库与 Redis
	database.InitDatabase()
	database.InitRedis()

	// 3. 事件推送中心
	hub := events.NewHub()

	// 4. 装配路由
	r := route.SetupRouter(database.GetDB(), hub)

	addr := fmt.Sprintf("%s:%d", config.Conf.Server.Host, config.Conf.Server.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: config.Conf.Server.ReadTimeout,
		// SSE 长连接需要关闭写超时
		WriteTimeout: config.Conf.Server.WriteTimeout,
	}

	log.Info().Str("addr", addr).Msg("服务启动")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("服务启动失败")
	}
}
