// Package product は商品サービスへのファサードを提供する。
//
// 各操作はゲートウェイの商品エンドポイントへの単一呼び出しに対応する。
// リトライ、バッチ処理、キャッシュは行わない。作成・更新は完了通知のみを
// 返し、呼び出し側は一覧を再取得して最新の状態を観測する。
package product
