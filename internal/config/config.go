// Package config はBFFの環境変数ベースの設定を提供する。
package config

import "os"

// Config はBFFの起動設定。
// すべて環境変数から読み込まれ、プロセス起動後は変更されない。
type Config struct {
	// Port はBFFのリッスンポート。
	Port string
	// Env は実行環境の識別子（development / production）。
	Env string
	// GatewayURL は上流ゲートウェイのベースURL。
	GatewayURL string
	// AllowedOrigin はCORSで許可するフロントエンドのオリジン。
	AllowedOrigin string
	// LoginURL はログイン開始時の全画面遷移先URL。
	LoginURL string
	// LogoutURL はログアウトフォームの送信先URL。
	LogoutURL string
}

// Load は環境変数から設定を読み込む。未設定の項目はローカル開発用の
// デフォルト値で補完する。
func Load() *Config {
	gatewayURL := getEnvOr("GATEWAY_URL", "http://localhost:8888")

	return &Config{
		Port:          getEnvOr("PORT", "3000"),
		Env:           getEnvOr("APP_ENV", "development"),
		GatewayURL:    gatewayURL,
		AllowedOrigin: getEnvOr("FRONTEND_URL", "http://localhost:3000"),
		LoginURL:      getEnvOr("LOGIN_URL", gatewayURL+"/oauth2/authorization/api-gateway-client"),
		LogoutURL:     getEnvOr("LOGOUT_URL", gatewayURL+"/logout"),
	}
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
