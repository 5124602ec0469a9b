package auth

import (
	"context"
	"net/url"
	"sync"

	"github.com/somatra-dev/gateway-bff/pkg/httpclient"
)

// mePath はゲートウェイ上の認証状態確認エンドポイントのパス。
const mePath = "/api/auth/me"

// csrfFieldName はログアウトフォームに埋め込むアンチフォージェリフィールドの名前。
const csrfFieldName = "_csrf"

// Phase はセッション状態の段階を表す。
type Phase int

const (
	// PhaseLoading は初回の問い合わせが完了していない状態を表す。
	PhaseLoading Phase = iota
	// PhaseAuthenticated は認証済みユーザーが存在する状態を表す。
	PhaseAuthenticated
	// PhaseUnauthenticated は認証されていない状態を表す。
	PhaseUnauthenticated
)

// State はセッションの観測可能な状態。
type State struct {
	// Phase は現在の段階。
	Phase Phase
	// User は認証済みユーザー。PhaseAuthenticated以外ではnil。
	User *AuthenticatedUser
}

// Session はブラウザ側相当の文脈におけるセッション状態の鏡像。
// トークンはゲートウェイのセッションに存在するため直接参照できず、
// /api/auth/me への問い合わせ結果を状態として保持する。
// タブをまたいだ同期は行わず、次回の問い合わせまでの古さは許容される。
type Session struct {
	// client はゲートウェイ通信用クライアント。
	client *httpclient.Client
	// loginURL は認可エンドポイントへの全画面遷移先URL。
	loginURL string
	// logoutURL はログアウトフォームの送信先URL。
	logoutURL string
	// activateOnce は初回問い合わせを一度だけ実行するためのガード。
	activateOnce sync.Once
	// mu はstateを保護するミューテックス。
	mu sync.RWMutex
	// state は現在のセッション状態。
	state State
}

// NewSession は新しいセッション鏡像を生成する。初期状態はPhaseLoading。
func NewSession(client *httpclient.Client, loginURL, logoutURL string) *Session {
	return &Session{
		client:    client,
		loginURL:  loginURL,
		logoutURL: logoutURL,
		state:     State{Phase: PhaseLoading},
	}
}

// Activate は初回の認証状態問い合わせを実行する。
// 複数回呼び出しても問い合わせは一度しか発行されない。
// 以降の再確認にはRefreshを使用する。
func (s *Session) Activate(ctx context.Context) {
	s.activateOnce.Do(func() {
		s.probe(ctx)
	})
}

// Refresh は認証状態を再問い合わせして状態を更新する。
// ログインからの帰還後など、明示的な再確認が必要な場合に呼び出す。
func (s *Session) Refresh(ctx context.Context) {
	s.probe(ctx)
}

// State は現在のセッション状態を返す。
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// probe はゲートウェイに認証状態を問い合わせ、結果を状態遷移に適用する。
func (s *Session) probe(ctx context.Context) {
	res := httpclient.Get[MeResponse](ctx, s.client, mePath)

	next := nextState(res)
	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
}

// nextState は問い合わせ結果から次のセッション状態を導出する。
// 問い合わせの失敗、未認証応答、ユーザー情報の欠落はいずれも
// 未認証状態として扱う。
func nextState(res httpclient.Result[MeResponse]) State {
	if !res.OK() {
		return State{Phase: PhaseUnauthenticated}
	}
	if !res.Payload.Authenticated || res.Payload.User == nil {
		return State{Phase: PhaseUnauthenticated}
	}
	return State{Phase: PhaseAuthenticated, User: res.Payload.User}
}

// LoginURL はログイン開始時の全画面遷移先を返す。
// ログインはフェッチではなくリダイレクトであり、ブラウザが認可フローから
// 帰還して再問い合わせが走るまでローカル状態は変化しない。
func (s *Session) LoginURL() string {
	return s.loginURL
}

// LogoutForm はログアウト用フォームの送信先URLとフィールドを返す。
// アンチフォージェリCookieが存在する場合は _csrf フィールドとして埋め込む。
// 送信は全画面遷移で行われるため、ローカル状態の後始末は不要。
func (s *Session) LogoutForm() (string, url.Values) {
	fields := url.Values{}
	if csrf := s.client.CSRFToken(); csrf != "" {
		fields.Set(csrfFieldName, csrf)
	}
	return s.logoutURL, fields
}
