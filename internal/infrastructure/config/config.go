// Package config は環境変数からアプリケーション設定を読み込みます。
package config

import (
	"os"
	"strconv"
	"time"
)

const (
	// DefaultJWTExpiresIn はJWT_EXPIRES_INが未設定の場合のトークン有効期限です。
	DefaultJWTExpiresIn = 24 * time.Hour

	// DefaultPunchOffsetMinutes は打刻タイムゾーンのデフォルトオフセット（IST, UTC+5:30）です。
	DefaultPunchOffsetMinutes = 330
)

// Config はプロセス起動時に一度だけ読み込まれるアプリケーション設定を保持します。
// 各コンポーネントはグローバルな環境変数ではなく、コンストラクタ経由でこの値を受け取ります。
type Config struct {
	Port string // HTTPリスンポート

	DBUser                 string
	DBPassword             string
	DBHost                 string
	DBPort                 string
	DBName                 string
	InstanceConnectionName string // Cloud SQL接続名（設定時はunixソケット経由で接続）
	RunMigrations          bool

	JWTSecret    string
	JWTExpiresIn time.Duration

	// PunchLocation は打刻時刻と当日範囲クエリの両方で使用するタイムゾーンです。
	PunchLocation *time.Location

	RedisHost     string
	RedisPort     string
	RedisPassword string
}

// Load は環境変数から設定を読み込みます。
func Load() Config {
	return Config{
		Port: getenvDefault("PORT", "8080"),

		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBName:                 os.Getenv("DB_NAME"),
		InstanceConnectionName: os.Getenv("INSTANCE_CONNECTION_NAME"),
		RunMigrations:          os.Getenv("RUN_MIGRATIONS") == "true",

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpiresIn: loadExpiresIn(),

		PunchLocation: loadPunchLocation(),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     os.Getenv("REDIS_PORT"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}
}

// getenvDefault は環境変数を読み込み、未設定の場合はフォールバック値を返します。
func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadExpiresIn はJWT_EXPIRES_INをtime.Duration形式（例: "24h", "30m"）で解析します。
func loadExpiresIn() time.Duration {
	v := os.Getenv("JWT_EXPIRES_IN")
	if v == "" {
		return DefaultJWTExpiresIn
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return DefaultJWTExpiresIn
	}
	return d
}

// loadPunchLocation はPUNCH_TZ_OFFSET_MINUTESから固定オフセットのタイムゾーンを生成します。
func loadPunchLocation() *time.Location {
	minutes := DefaultPunchOffsetMinutes
	if v := os.Getenv("PUNCH_TZ_OFFSET_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			minutes = n
		}
	}
	return time.FixedZone("IST", minutes*60)
}
