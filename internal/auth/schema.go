package auth

// AuthenticatedUser は認証済みユーザーのクレーム投影。
// リクエストごとにトークンから再計算される読み取り専用のビューであり、
// 独立した識別子やライフサイクルを持たない。
type AuthenticatedUser struct {
	// Sub は認可サーバー上のサブジェクト識別子。
	Sub string `json:"sub"`
	// UUID は外部IDプロバイダ上のユーザー識別子。
	UUID string `json:"uuid,omitempty"`
	// Email はユーザーのメールアドレス。
	Email string `json:"email,omitempty"`
	// Name はユーザーの表示名。
	Name string `json:"name,omitempty"`
	// GivenName はユーザーの名。
	GivenName string `json:"given_name,omitempty"`
	// FamilyName はユーザーの姓。
	FamilyName string `json:"family_name,omitempty"`
	// Roles はユーザーのロール一覧。クレームに存在しない場合は空スライス。
	Roles []string `json:"roles"`
	// Permissions はユーザーの権限一覧。クレームに存在しない場合は空スライス。
	Permissions []string `json:"permissions"`
}

// MeResponse は /api/auth/me エンドポイントのレスポンス形式。
// 認証されていない状態はエラーではなく authenticated=false で表現される。
type MeResponse struct {
	// Authenticated は呼び出しユーザーが認証済みかを表す。
	Authenticated bool `json:"authenticated"`
	// User は認証済みユーザーの投影。未認証の場合はnull。
	User *AuthenticatedUser `json:"user"`
}
