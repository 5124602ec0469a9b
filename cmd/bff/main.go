// BFF（Backend For Frontend）サービスのエントリポイント。
// フロントエンドからのAPIリクエストを受け付け、アクセストークンを
// 中継しながら上流ゲートウェイの商品・注文サービスへ委譲する。
package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/somatra-dev/gateway-bff/internal/bff"
	"github.com/somatra-dev/gateway-bff/internal/config"
	"github.com/somatra-dev/gateway-bff/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".envファイルが見つからないため環境変数のみを使用します")
	}

	cfg := config.Load()

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("ロガーの初期化に失敗: %v", err)
	}
	defer zl.Sync()

	server, err := bff.NewServer(cfg, zl)
	if err != nil {
		zl.Fatal("BFFサーバーの初期化に失敗", zap.Error(err))
	}

	zl.Info("BFFサービスを起動します",
		zap.String("port", cfg.Port),
		zap.String("gateway_url", cfg.GatewayURL),
	)
	if err := server.Run(); err != nil {
		zl.Fatal("BFFサービスの起動に失敗", zap.Error(err))
	}
}
