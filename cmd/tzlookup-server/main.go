// 程序入口：常驻 HTTP 前端，加载一次数据集后长期对外提供 /timezone 与 /geometry 查询，
// 可选挂载 Redis 响应缓存与 Prometheus 指标。
package main

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"tzlookup/internal/api"
	"tzlookup/internal/config"
	"tzlookup/internal/engine"
	"tzlookup/internal/loader"
	"tzlookup/internal/logger"
	"tzlookup/internal/metrics"
	"tzlookup/internal/middleware"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join("data", "env", ".env"))

	l := logger.Setup()
	cfg := config.FromEnv()
	l.Info("config_loaded", "data_dir", cfg.DataDir, "in_memory", cfg.InMemory, "addr", cfg.Addr)

	ds, err := loader.Load(cfg)
	if err != nil {
		l.Error("dataset_load_error", "err", err)
		os.Exit(1)
	}
	defer ds.Close()

	mode := "mmap"
	if cfg.InMemory {
		mode = "in_memory"
	}
	metrics.LoaderMode.WithLabelValues(mode).Set(1)

	eng := engine.New(ds.Polys, ds.Shortcuts)

	var rc *redis.Client
	if cfg.RedisAddr != "" {
		rc = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass, DB: cfg.RedisDB})
		l.Info("redis_enabled", "addr", cfg.RedisAddr)
	} else {
		l.Info("redis_disabled")
	}

	mux := http.NewServeMux()
	apiMux := api.BuildRoutes(eng, eng, rc)
	mux.Handle("/", apiMux)
	mux.Handle("/metrics", metrics.Handler())

	handler := logger.AccessMiddleware(l)(mux)
	handler = middleware.Wrap(handler)
	l.Info("listening", "addr", cfg.Addr)
	_ = http.ListenAndServe(cfg.Addr, handler)
}
