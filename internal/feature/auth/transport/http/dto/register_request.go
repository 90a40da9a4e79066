package dto

// RegisterReq は POST /api/users のリクエストボディを表します。
type RegisterReq struct {
	Name     string `json:"name" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterMessages はバリデーション失敗時にフィールドごとに返すメッセージです。
var RegisterMessages = map[string]string{
	"name":     "Name is required",
	"email":    "Please include a valid email",
	"password": "Please enter a password with 6 or more characters",
}

// PasswordTooLongMessage is returned when the password exceeds 72 bytes.
const PasswordTooLongMessage = "Please enter a password of at most 72 bytes"
