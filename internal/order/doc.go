// Package order は注文サービスへのファサードを提供する。
//
// 各操作はゲートウェイの注文エンドポイントへの単一呼び出しに対応する。
// 注文のステータス遷移ロジックは注文サービス側の責務であり、本システムは
// 読み取りと作成・削除の中継のみを行う。
package order
