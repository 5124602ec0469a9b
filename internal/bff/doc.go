// Package bff はBackend-For-FrontendのHTTPサーバーを提供する。
//
// 受信したHTTPリクエストを商品・注文ファサードへの呼び出しに変換し、
// 最小限の必須フィールド検証を行ったうえで、ファサードの結果を
// HTTPステータスコードへ対応づける。下流のエラーはステータスと
// メッセージをそのまま通過させ、新しいステータスを発明することはない。
// 認証状態はゲートウェイが中継したトークンから導出する。
package bff
