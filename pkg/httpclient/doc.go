// Package httpclient はゲートウェイとのHTTP通信を行うクライアントを提供する。
//
// すべてのリクエストでセッションCookieを送信し、状態変更系メソッドには
// ゲートウェイが発行するアンチフォージェリトークンを自動的に付与する。
// レスポンスは成功・失敗を問わず一様な Result 型に正規化され、
// このパッケージの境界を越えてエラーが送出されることはない。
package httpclient
