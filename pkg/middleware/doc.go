// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// パニックリカバリ、リクエストIDの採番、ゲートウェイから中継された
// トークンの引き継ぎなど、BFFの全ハンドラで共通する処理を含む。
// トークンの署名検証はゲートウェイ側の責務のため、本パッケージでは行わない。
package middleware
