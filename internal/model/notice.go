package model

const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice is a transient toast shown once and auto-dismissed.
type Notice struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func SuccessNotice(msg string) Notice { return Notice{Kind: NoticeSuccess, Message: msg} }
func ErrorNotice(msg string) Notice   { return Notice{Kind: NoticeError, Message: msg} }
