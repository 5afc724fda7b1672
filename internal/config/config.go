// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// TokenTTL 存取令牌有效期限
const TokenTTL = time.Hour

// Config 服務啟動所需的所有設定，由 Load 從環境變數讀入後注入各元件
type Config struct {
	Port          string
	JWTSecret     string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	WorkerCount   int
	// MigrateDown 為 true 時啟動前先退回所有 migration 再重新套用
	MigrateDown   bool
}

// Addr 回傳 echo 監聽位址
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load 讀取環境變數，必要欄位缺少或格式錯誤時回傳錯誤
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("無效的 REDIS_DB: %v", err)
	}
	cfg.RedisDB = redisDB

	workers, err := strconv.Atoi(getEnv("WORKER_COUNT", "3"))
	if err != nil || workers <= 0 {
		return nil, fmt.Errorf("無效的 WORKER_COUNT: %q", os.Getenv("WORKER_COUNT"))
	}
	cfg.WorkerCount = workers

	migrateDown, err := strconv.ParseBool(getEnv("MIGRATE_DOWN", "false"))
	if err != nil {
		return nil, fmt.Errorf("無效的 MIGRATE_DOWN: %v", err)
	}
	cfg.MigrateDown = migrateDown

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
