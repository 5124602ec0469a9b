package auth

import (
	"github.com/somatra-dev/gateway-bff/pkg/token"
)

// ResolveUser はAuthorizationヘッダー値から現在の呼び出しユーザーを解決する。
// トークンが存在しない、不正、または失効している場合はnilを返す。
// 不正なトークンは認証されていない状態と同一に扱い、エラーとして
// 区別して呼び出し側へ伝えることはない。
func ResolveUser(authHeader string) *AuthenticatedUser {
	tokenString, ok := token.ExtractBearer(authHeader)
	if !ok {
		return nil
	}
	if token.IsExpired(tokenString) {
		return nil
	}

	claims := token.Decode(tokenString)
	if claims == nil {
		return nil
	}

	user := &AuthenticatedUser{
		Sub:         claims.Subject,
		UUID:        claims.UUID,
		Email:       claims.Email,
		Name:        claims.Name,
		GivenName:   claims.GivenName,
		FamilyName:  claims.FamilyName,
		Roles:       claims.Roles,
		Permissions: claims.Permissions,
	}
	// クレームに存在しない場合もnullではなく空リストとして投影する
	if user.Roles == nil {
		user.Roles = []string{}
	}
	if user.Permissions == nil {
		user.Permissions = []string{}
	}
	return user
}
