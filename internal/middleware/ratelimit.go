// 包 middleware：HTTP 前端的速率限制中间件
// 背景：查询路径本身极快（微秒级），真正的过载风险来自请求数量而非单次查询开销；
// 一个简单的按秒令牌桶足以避免突发流量压垮进程，无需队列排队——直接丢弃并返回 429。
package middleware

import (
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

// TokenBucket 是一个按秒重填的简化令牌桶，不做跨秒借用或排队。
type TokenBucket struct {
	capacity int
	tokens   int
	lastSec  int64
	mu       sync.Mutex
}

func (tb *TokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	nowSec := time.Now().Unix()
	if tb.lastSec != nowSec {
		tb.lastSec = nowSec
		tb.tokens = tb.capacity
	}
	if tb.tokens > 0 {
		tb.tokens--
		return true
	}
	return false
}

// Wrap 在 RATE_LIMIT_ENABLED=true 时按 RATE_LIMIT_QPS（默认 200）限速；否则原样透传。
func Wrap(next http.Handler) http.Handler {
	if os.Getenv("RATE_LIMIT_ENABLED") != "true" {
		return next
	}
	qps := 200
	if s := os.Getenv("RATE_LIMIT_QPS"); s != "" {
		if n, e := strconv.Atoi(s); e == nil && n > 0 {
			qps = n
		}
	}
	tb := &TokenBucket{capacity: qps, tokens: qps, lastSec: time.Now().Unix()}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !tb.allow() {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
