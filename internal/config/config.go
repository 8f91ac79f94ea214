// Package config は環境変数から一度だけ解決されるサービス設定を提供する。
//
// 設定はグローバル変数ではなく、起動時にConfigとして構築して
// 各コンポーネントへ注入する。
package config

import (
	"log"
	"os"
)

// Config は翻訳チャンクサービスの設定。
// 起動時に一度だけ構築され、以降は読み取り専用。
type Config struct {
	// Port はサーバーのリッスンポート。
	Port string
	// SecretKey はセッショントークンの署名用秘密鍵。
	SecretKey string
	// OpenAIAPIKey は外部補完サービスのAPIキー。
	OpenAIAPIKey string
	// OpenAIBaseURL は外部補完サービスのベースURL。空の場合はデフォルトを使用する。
	OpenAIBaseURL string
	// AuthUsername はログインに使用する唯一のユーザー名。
	AuthUsername string
	// AuthPassword はログインに使用する唯一のパスワード。
	AuthPassword string
	// DevMode は開発モードかどうか。資格情報未設定時のフォールバックログインを許可する。
	DevMode bool
	// FrontendURL はCORSで許可するフロントエンドのオリジン。
	FrontendURL string
	// DBPath は利用ログ用SQLiteデータベースの接続文字列。
	DBPath string
}

// Load は環境変数からConfigを構築する。
// SECRET_KEYが未設定の場合は開発用の固定鍵にフォールバックし、
// 開発モード以外では警告を出力する。
func Load() *Config {
	devMode := os.Getenv("APP_ENV") == "development"

	secretKey := os.Getenv("SECRET_KEY")
	if secretKey == "" {
		if !devMode {
			log.Printf("警告: SECRET_KEYが未設定のため開発用の固定鍵を使用します。本番環境ではセキュリティ上のリスクになります")
		}
		secretKey = "dev-secret-key"
	}

	return &Config{
		Port:          getEnvOr("PORT", "8080"),
		SecretKey:     secretKey,
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		AuthUsername:  os.Getenv("AUTH_USERNAME"),
		AuthPassword:  os.Getenv("AUTH_PASSWORD"),
		DevMode:       devMode,
		FrontendURL:   getEnvOr("FRONTEND_URL", "http://localhost:3000"),
		DBPath:        getEnvOr("DB_PATH", "/data/honyaku.db?_journal_mode=WAL&_busy_timeout=5000"),
	}
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
