// Package logger はBFF全体で使用する構造化ロガーの構築を提供する。
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New は環境に応じた構造化ロガーを生成する。
// envが "development" の場合は人間可読な開発用フォーマット、
// それ以外ではJSON形式の本番用フォーマットを使用する。
// 生成したロガーは利用側へ注入し、グローバル変数には保持しない。
func New(env string) (*zap.Logger, error) {
	var log *zap.Logger
	var err error

	if env == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("ロガーの初期化に失敗: %w", err)
	}
	return log, nil
}
