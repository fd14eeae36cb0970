package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"iptv-hub/blog-backend/config"
)

var (
	RedisDB *redis.Client
)

// InitRedis 初始化 Redis 连接
// Redis 不可用时不视为致命错误，依赖它的功能（登录限流）自动降级
func InitRedis() {
	redisConf := config.Conf.Redis
	if !redisConf.Enabled {
		log.Info().Msg("Redis 未启用，登录限流降级为关闭")
		return
	}

	options := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisConf.Host, redisConf.Port),
		DB:       redisConf.DB,
		PoolSize: redisConf.PoolSize,
	}
	if redisConf.Password != "" {
		options.Password = redisConf.Password
	}
	if options.PoolSize == 0 {
		options.PoolSize = 10
	}

	client := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("连接 Redis 失败，登录限流降级为关闭")
		return
	}

	RedisDB = client
	log.Info().Str("addr", options.Addr).Msg("Redis 连接成功")
}

// GetRedis 获取 Redis 实例，未连接时返回 nil
func GetRedis() *redis.Client {
	return RedisDB
}
