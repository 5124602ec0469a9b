package token

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// testSecret はテスト用トークンの署名に使用する秘密鍵。
// 本パッケージは署名を検証しないため、値自体に意味はない。
const testSecret = "test-secret-key"

// signTestToken はクレームからテスト用のトークンを生成する。
func signTestToken(t *testing.T, claims *Claims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("テスト用トークンの署名に失敗: %v", err)
	}
	return signed
}

// rawSegment は任意のバイト列をbase64urlセグメントに変換する。
func rawSegment(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// validHeader は正しくエンコードされたJWTヘッダーセグメント。
var validHeader = rawSegment([]byte(`{"alg":"HS256","typ":"JWT"}`))

// TestDecode はDecode関数を検証する。
func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("正当なトークンからクレームを読み取れること", func(t *testing.T) {
		t.Parallel()

		tokenString := signTestToken(t, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-123",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			UUID:        "ext-uuid-456",
			Email:       "user@example.com",
			Name:        "Taro Yamada",
			GivenName:   "Taro",
			FamilyName:  "Yamada",
			Roles:       []string{"USER", "ADMIN"},
			Permissions: []string{"product:read"},
		})

		claims := Decode(tokenString)
		if claims == nil {
			t.Fatal("Decode()がnilを返した")
		}
		if claims.Subject != "user-123" {
			t.Errorf("Subject = %q, want %q", claims.Subject, "user-123")
		}
		if claims.UUID != "ext-uuid-456" {
			t.Errorf("UUID = %q, want %q", claims.UUID, "ext-uuid-456")
		}
		if claims.Email != "user@example.com" {
			t.Errorf("Email = %q, want %q", claims.Email, "user@example.com")
		}
		if claims.Name != "Taro Yamada" {
			t.Errorf("Name = %q, want %q", claims.Name, "Taro Yamada")
		}
		if len(claims.Roles) != 2 || claims.Roles[0] != "USER" || claims.Roles[1] != "ADMIN" {
			t.Errorf("Roles = %v, want [USER ADMIN]", claims.Roles)
		}
		if len(claims.Permissions) != 1 || claims.Permissions[0] != "product:read" {
			t.Errorf("Permissions = %v, want [product:read]", claims.Permissions)
		}
	})

	t.Run("セグメント数が3以外の場合にnilを返すこと", func(t *testing.T) {
		t.Parallel()

		for _, tokenString := range []string{"", "abc", "a.b", "a.b.c.d"} {
			if claims := Decode(tokenString); claims != nil {
				t.Errorf("Decode(%q) = %+v, want nil", tokenString, claims)
			}
		}
	})

	t.Run("ペイロードがbase64としてデコードできない場合にnilを返すこと", func(t *testing.T) {
		t.Parallel()

		tokenString := validHeader + ".!!!invalid-base64!!!.signature"
		if claims := Decode(tokenString); claims != nil {
			t.Errorf("Decode() = %+v, want nil", claims)
		}
	})

	t.Run("ペイロードがJSONでない場合にnilを返すこと", func(t *testing.T) {
		t.Parallel()

		tokenString := validHeader + "." + rawSegment([]byte("not a json payload")) + ".signature"
		if claims := Decode(tokenString); claims != nil {
			t.Errorf("Decode() = %+v, want nil", claims)
		}
	})

	t.Run("ロールと権限が存在しない場合にnilスライスとなること", func(t *testing.T) {
		t.Parallel()

		tokenString := signTestToken(t, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-no-roles"},
		})

		claims := Decode(tokenString)
		if claims == nil {
			t.Fatal("Decode()がnilを返した")
		}
		if claims.Roles != nil {
			t.Errorf("Roles = %v, want nil", claims.Roles)
		}
		if claims.Permissions != nil {
			t.Errorf("Permissions = %v, want nil", claims.Permissions)
		}
	})
}

// TestDecode_RoundTrip はクレームをトークン化して再度読み取れることを検証する。
func TestDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	original := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "round-trip-user",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(2 * time.Hour).Truncate(time.Second)),
		},
		UUID:        "round-trip-uuid",
		Email:       "round@example.com",
		Name:        "Round Trip",
		GivenName:   "Round",
		FamilyName:  "Trip",
		Roles:       []string{"USER"},
		Permissions: []string{"order:read", "order:write"},
	}

	decoded := Decode(signTestToken(t, original))
	if decoded == nil {
		t.Fatal("Decode()がnilを返した")
	}

	if decoded.Subject != original.Subject {
		t.Errorf("Subject = %q, want %q", decoded.Subject, original.Subject)
	}
	if decoded.UUID != original.UUID {
		t.Errorf("UUID = %q, want %q", decoded.UUID, original.UUID)
	}
	if decoded.Email != original.Email {
		t.Errorf("Email = %q, want %q", decoded.Email, original.Email)
	}
	if decoded.GivenName != original.GivenName {
		t.Errorf("GivenName = %q, want %q", decoded.GivenName, original.GivenName)
	}
	if decoded.FamilyName != original.FamilyName {
		t.Errorf("FamilyName = %q, want %q", decoded.FamilyName, original.FamilyName)
	}
	if !decoded.ExpiresAt.Time.Equal(original.ExpiresAt.Time) {
		t.Errorf("ExpiresAt = %v, want %v", decoded.ExpiresAt.Time, original.ExpiresAt.Time)
	}
	if len(decoded.Roles) != 1 || decoded.Roles[0] != "USER" {
		t.Errorf("Roles = %v, want [USER]", decoded.Roles)
	}
	if len(decoded.Permissions) != 2 {
		t.Errorf("Permissions = %v, want 2件", decoded.Permissions)
	}
}

// TestIsExpired はIsExpired関数を検証する。
func TestIsExpired(t *testing.T) {
	t.Parallel()

	t.Run("有効期限が十分先の場合にfalseを返すこと", func(t *testing.T) {
		t.Parallel()

		tokenString := signTestToken(t, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "future",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(5 * time.Minute)),
			},
		})
		if IsExpired(tokenString) {
			t.Error("IsExpired() = true, want false")
		}
	})

	t.Run("有効期限を過ぎている場合にtrueを返すこと", func(t *testing.T) {
		t.Parallel()

		tokenString := signTestToken(t, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "past",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-5 * time.Minute)),
			},
		})
		if !IsExpired(tokenString) {
			t.Error("IsExpired() = false, want true")
		}
	})

	t.Run("有効期限まで30秒未満の場合に失効扱いとなること", func(t *testing.T) {
		t.Parallel()

		// 安全マージン（30秒）の内側にある有効期限は失効扱い
		tokenString := signTestToken(t, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "soon",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(10 * time.Second)),
			},
		})
		if !IsExpired(tokenString) {
			t.Error("IsExpired() = false, want true")
		}
	})

	t.Run("expクレームが存在しない場合にfalseを返すこと", func(t *testing.T) {
		t.Parallel()

		tokenString := signTestToken(t, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "no-exp"},
		})
		if IsExpired(tokenString) {
			t.Error("IsExpired() = true, want false")
		}
	})

	t.Run("クレームが読み取れない場合にtrueを返すこと", func(t *testing.T) {
		t.Parallel()

		if !IsExpired("not-a-token") {
			t.Error("IsExpired() = false, want true")
		}
	})
}

// TestExtractBearer はExtractBearer関数を検証する。
func TestExtractBearer(t *testing.T) {
	t.Parallel()

	t.Run("Bearerプレフィックス付きヘッダーからトークンを取り出せること", func(t *testing.T) {
		t.Parallel()

		got, ok := ExtractBearer("Bearer abc")
		if !ok {
			t.Fatal("ExtractBearer() = false, want true")
		}
		if got != "abc" {
			t.Errorf("token = %q, want %q", got, "abc")
		}
	})

	t.Run("Basic認証ヘッダーを拒否すること", func(t *testing.T) {
		t.Parallel()

		if _, ok := ExtractBearer("Basic abc"); ok {
			t.Error("ExtractBearer() = true, want false")
		}
	})

	t.Run("空のヘッダーを拒否すること", func(t *testing.T) {
		t.Parallel()

		if _, ok := ExtractBearer(""); ok {
			t.Error("ExtractBearer() = true, want false")
		}
	})

	t.Run("小文字のbearerプレフィックスを拒否すること", func(t *testing.T) {
		t.Parallel()

		// プレフィックスは大文字小文字を区別する
		if _, ok := ExtractBearer("bearer abc"); ok {
			t.Error("ExtractBearer() = true, want false")
		}
	})
}
