package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// 连续失败计数的滑动窗口
const attemptWindow = 15 * time.Minute

// LoginLimiter 登录失败限流器，按邮箱+IP 计数
// Redis 未接入时所有方法直接放行
type LoginLimiter struct {
	rdb *redis.Client
}

func NewLoginLimiter(rdb *redis.Client) *LoginLimiter {
	return &LoginLimiter{rdb: rdb}
}

func attemptKey(email, ip string) string {
	return fmt.Sprintf("login_attempts:%s:%s", email, ip)
}

// Blocked 当前失败次数是否已达上限
func (l *LoginLimiter) Blocked(ctx context.Context, email, ip string, maxAttempts int) bool {
	if l.rdb == nil || maxAttempts <= 0 {
		return false
	}

	count, err := l.rdb.Get(ctx, attemptKey(email, ip)).Int()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("读取登录失败计数出错，放行")
		}
		return false
	}
	return count >= maxAttempts
}

// RecordFailure 记录一次登录失败
func (l *LoginLimiter) RecordFailure(ctx context.Context, email, ip string) {
	if l.rdb == nil {
		return
	}

	key := attemptKey(email, ip)
	pipe := l.rdb.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, attemptWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Warn().Err(err).Msg("记录登录失败计数出错")
	}
}

// Reset 登录成功后清除计数
func (l *LoginLimiter) Reset(ctx context.Context, email, ip string) {
	if l.rdb == nil {
		return
	}
	if err := l.rdb.Del(ctx, attemptKey(email, ip)).Err(); err != nil {
		log.Warn().Err(err).Msg("清除登录失败计数出错")
	}
}
