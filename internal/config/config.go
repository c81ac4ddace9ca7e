// 包 config：从环境变量（可选 .env 文件）读取引擎构造参数
// 背景：沿用上游 internal/utils 的 "BuildXFromEnv + 带默认值的单个 getter" 风格，
// 只是这里没有数据库 DSN 需要拼接——配置面很窄，核心是数据集目录与加载模式。
package config

import (
	"os"
	"strconv"
)

// Config 是构造引擎所需的全部运行时参数。
type Config struct {
	// DataDir 是数据集目录，包含 §6 列出的全部文件。
	DataDir string
	// InMemory 为 true 时数据集整体读入内存（in-memory 模式）；否则使用 mmap（默认）。
	InMemory bool
	// ZoneIDWidth 是 zone_ids.npy 的元素宽度（字节），1 表示 u8，2 表示 u16。
	ZoneIDWidth int
	// Addr 是 HTTP 前端的监听地址（仅 cmd/tzlookup-server 使用）。
	Addr string
	// RedisAddr 为空表示禁用响应缓存。
	RedisAddr string
	RedisPass string
	RedisDB   int
}

// FromEnv 读取 TZ_* 环境变量，未设置的字段回退到合理默认值。
// 调用方应先执行 godotenv.Load()（如果存在 .env 文件）以便覆盖这些默认值。
func FromEnv() Config {
	cfg := Config{
		DataDir:     getEnv("TZ_DATA_DIR", "data"),
		InMemory:    getEnvBool("TZ_IN_MEMORY", false),
		ZoneIDWidth: getEnvInt("TZ_ZONE_ID_WIDTH", 2),
		Addr:        getEnv("TZ_ADDR", ":8080"),
		RedisAddr:   os.Getenv("TZ_REDIS_ADDR"),
		RedisPass:   os.Getenv("TZ_REDIS_PASS"),
		RedisDB:     getEnvInt("TZ_REDIS_DB", 0),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
