// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は POST /api/auth のリクエストボディを表します。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginMessages はバリデーション失敗時にフィールドごとに返すメッセージです。
var LoginMessages = map[string]string{
	"email":    "Please include a valid email",
	"password": "Password is required",
}
