package constants

// ユーザーロール（閉じた2値の列挙。自由文字列は受け付けない）
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole roleが認められた値かどうかを返す
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// 識別子の長さ
const (
	UserIDLength = 9
	ItemIDLength = 8
)

// エラーメッセージ
const (
	ErrMsgInvalidInput       = "Invalid input"
	ErrMsgDuplicateEmail     = "Email already exists"
	ErrMsgInvalidCredentials = "Invalid credentials"
	ErrMsgUnauthenticated    = "Authentication required"
	ErrMsgForbidden          = "Admin role required"
	ErrMsgUnexpected         = "Unexpected error"
)
