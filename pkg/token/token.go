package token

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims はアクセストークンに含まれるクレーム（ペイロード）を表す。
// 認可サーバーが発行したトークンをゲートウェイが検証済みのまま中継するため、
// 本システムは読み取り専用でこの構造体に展開する。
type Claims struct {
	jwt.RegisteredClaims
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
	// Roles はユーザーに付与されたロールの一覧。表示用途のみ。
	Roles []string `json:"roles,omitempty"`
	// Permissions はユーザーに付与された権限の一覧。表示用途のみ。
	Permissions []string `json:"permissions,omitempty"`
}

// expirySkew は有効期限判定に用いる安全マージン。
// リクエスト処理中にトークンが失効することを防ぐため、時計のずれを考慮して
// 実際の有効期限より30秒早く失効扱いとする。
const expirySkew = 30 * time.Second

// Decode はトークンのペイロードをクレームに展開する。署名検証は行わない。
// セグメント数の不足、base64デコード失敗、JSONパース失敗など、
// 不正なトークンの場合はnilを返す。パニックは発生しない。
func Decode(tokenString string) *Claims {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil
	}
	return claims
}

// IsExpired はトークンが失効しているかを判定する。
// クレームが読み取れない場合は失効扱い。exp クレームが存在しない場合は
// 失効しないものとして扱う。それ以外は現在時刻が（有効期限 - 30秒）に
// 達していれば失効と判定する。
func IsExpired(tokenString string) bool {
	claims := Decode(tokenString)
	if claims == nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !time.Now().Before(claims.ExpiresAt.Time.Add(-expirySkew))
}

// ExtractBearer はAuthorizationヘッダー値からBearerトークンを取り出す。
// 大文字小文字を区別した "Bearer " プレフィックスのみを認識し、
// プレフィックスが一致しない場合はfalseを返す。
func ExtractBearer(headerValue string) (string, bool) {
	return strings.CutPrefix(headerValue, "Bearer ")
}
