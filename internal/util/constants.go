package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	DefaultQuizCount = 10
	MaxQuizCount     = 50
)

// ログイン試行の抑制（Redis キーに付く接頭辞と閾値）
const (
	LoginFailKeyPrefix = "login:fail:"
	LoginFailLimit     = 5
)
