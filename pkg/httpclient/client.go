package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"
)

// csrfCookieName はゲートウェイが発行するアンチフォージェリCookieの名前。
const csrfCookieName = "XSRF-TOKEN"

// csrfHeaderName は状態変更リクエストに付与するアンチフォージェリヘッダーの名前。
const csrfHeaderName = "X-XSRF-TOKEN"

// Client はゲートウェイとの通信用HTTPクライアント。
// セッションCookieを保持するため、構築後の設定は不変でありゴルーチン安全。
// シングルトンではなく、利用側が構築時に注入する。
type Client struct {
	// httpClient は内部で使用するHTTPクライアント。Cookieジャーを保持する。
	httpClient *http.Client
	// baseURL は接続先ゲートウェイのベースURL。
	baseURL string
	// base はCookieジャー参照用にパース済みのベースURL。
	base *url.URL
}

// New は新しいゲートウェイ通信用クライアントを生成する。
// baseURLには接続先ゲートウェイのベースURL（例: "http://localhost:8888"）を指定する。
func New(baseURL string) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("ベースURLのパースに失敗: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("Cookieジャーの生成に失敗: %w", err)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
		baseURL: baseURL,
		base:    base,
	}, nil
}

// CSRFToken は現在のセッションに紐づくアンチフォージェリトークンを返す。
// ゲートウェイがまだCookieを発行していない場合は空文字列を返す。
// Cookie値はパーセントエンコードされているためデコードして返す。
func (c *Client) CSRFToken() string {
	for _, cookie := range c.httpClient.Jar.Cookies(c.base) {
		if cookie.Name != csrfCookieName {
			continue
		}
		if decoded, err := url.QueryUnescape(cookie.Value); err == nil {
			return decoded
		}
		return cookie.Value
	}
	return ""
}

// Result はゲートウェイ呼び出しの一様な結果表現。
// 終端状態ではPayloadとErrのどちらか一方のみが意味を持ち、Statusは常に設定される。
type Result[T any] struct {
	// Payload はデコード済みのレスポンスペイロード。失敗時はゼロ値。
	Payload T
	// Raw はレスポンスボディの生データ。ボディが空の場合はnil。
	Raw []byte
	// Err はエラーメッセージ。成功時は空文字列。
	Err string
	// Status はHTTPステータスコード。トランスポート障害時は500。
	Status int
}

// OK は結果が成功を表すかを返す。
func (r Result[T]) OK() bool {
	return r.Err == ""
}

// failure はエラー結果を生成する。
func failure[T any](status int, message string) Result[T] {
	return Result[T]{Err: message, Status: status}
}

// Do は指定メソッドでゲートウェイにリクエストを送信し、結果を一様な形に正規化する。
//
// セッションCookieは常に送信される。POST/PUT/PATCH/DELETEの場合、Cookieジャーに
// アンチフォージェリトークンが存在すればヘッダーとして付与する（存在しなければ
// 付与せず、エラーにもしない）。bodyがnil以外の場合はJSONとして送信する。
//
// レスポンスは次の順で処理する。401は本文を読まずに認証エラーとして確定する。
// その他の失敗ステータスは本文テキストをエラーメッセージとする。成功時は本文を
// JSONとしてPayloadにデコードし、デコードできない場合は生テキストのまま保持する。
// トランスポート障害（接続拒否、タイムアウト等）はステータス500のエラー結果に
// 変換され、この関数がエラーを送出することはない。
func Do[T any](ctx context.Context, c *Client, method, path string, body any) Result[T] {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return failure[T](http.StatusInternalServerError,
				fmt.Sprintf("リクエストボディのシリアライズに失敗: %v", err))
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return failure[T](http.StatusInternalServerError,
			fmt.Sprintf("HTTPリクエストの作成に失敗: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	// コンテキストから中継対象のBearerトークンを伝播する
	if bearer, ok := ctx.Value(contextKeyBearerToken).(string); ok {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		if csrf := c.CSRFToken(); csrf != "" {
			req.Header.Set(csrfHeaderName, csrf)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failure[T](http.StatusInternalServerError, err.Error())
	}
	defer resp.Body.Close()

	// 401は本文の内容にかかわらず認証エラーとして確定する
	if resp.StatusCode == http.StatusUnauthorized {
		return failure[T](http.StatusUnauthorized, "Not authenticated")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		message := string(respBody)
		if message == "" {
			message = fmt.Sprintf("Request failed with status %d", resp.StatusCode)
		}
		return failure[T](resp.StatusCode, message)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure[T](http.StatusInternalServerError,
			fmt.Sprintf("レスポンスボディの読み取りに失敗: %v", err))
	}

	result := Result[T]{Status: resp.StatusCode}
	if len(respBody) == 0 {
		return result
	}
	result.Raw = respBody

	if err := json.Unmarshal(respBody, &result.Payload); err != nil {
		// JSONとして解釈できないボディは生テキストとして扱う
		switch p := any(&result.Payload).(type) {
		case *string:
			*p = string(respBody)
		case *any:
			*p = string(respBody)
		}
	}
	return result
}

// Get はGETリクエストを送信する。
func Get[T any](ctx context.Context, c *Client, path string) Result[T] {
	return Do[T](ctx, c, http.MethodGet, path, nil)
}

// Post はJSONボディ付きのPOSTリクエストを送信する。
func Post[T any](ctx context.Context, c *Client, path string, body any) Result[T] {
	return Do[T](ctx, c, http.MethodPost, path, body)
}

// Put はJSONボディ付きのPUTリクエストを送信する。
func Put[T any](ctx context.Context, c *Client, path string, body any) Result[T] {
	return Do[T](ctx, c, http.MethodPut, path, body)
}

// Delete はDELETEリクエストを送信する。
func Delete[T any](ctx context.Context, c *Client, path string) Result[T] {
	return Do[T](ctx, c, http.MethodDelete, path, nil)
}

// contextKey はコンテキストキーの型。
type contextKey string

// contextKeyBearerToken はコンテキストに中継対象のトークンを格納するためのキー。
const contextKeyBearerToken contextKey = "bearer_token"

// WithBearerToken はコンテキストに中継対象のBearerトークンを設定する。
// ゲートウェイから受け取ったトークンをマイクロサービス呼び出しへ
// そのまま引き継ぐために使用する。
func WithBearerToken(ctx context.Context, tokenString string) context.Context {
	return context.WithValue(ctx, contextKeyBearerToken, tokenString)
}

// BearerToken はコンテキストから中継対象のBearerトークンを取り出す。
func BearerToken(ctx context.Context) (string, bool) {
	tokenString, ok := ctx.Value(contextKeyBearerToken).(string)
	return tokenString, ok
}
