// Package auth はセッション認証の橋渡しを提供する。
//
// サーバー側では、ゲートウェイが中継したAuthorizationヘッダーから
// 現在の呼び出しユーザーを解決する。ブラウザ側相当の文脈では、
// トークンに直接触れられないため /api/auth/me への問い合わせ結果を
// 観測可能なセッション状態として保持する。ログイン・ログアウトは
// ゲートウェイへの全画面遷移として構築され、ローカル状態の変更を伴わない。
package auth
