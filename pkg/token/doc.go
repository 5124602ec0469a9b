// Package token はゲートウェイから中継されたアクセストークンの読み取りを提供する。
//
// トークンの署名検証はゲートウェイ側で完了しているため、本パッケージは
// 署名を検証せずにクレーム（ペイロード）のみを読み取る。検証済みの入力を
// 前提とし、不正なトークンは常にnilとして扱う。
package token
