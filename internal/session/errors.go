package session

import (
	"errors"
	"strings"

	"github.com/heartmarshall/viovio/internal/client"
	"github.com/heartmarshall/viovio/internal/wire"
)

// ErrorKind is the user-facing category of an auth failure.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidCredentials
	KindAlreadyRegistered
	KindPasswordTooShort
	KindEmailNotConfirmed
)

var messages = map[ErrorKind]string{
	KindInvalidCredentials: "邮箱或密码不正确。",
	KindAlreadyRegistered:  "该邮箱已被注册，请直接登录。",
	KindPasswordTooShort:   "密码长度至少需要6位。",
	KindEmailNotConfirmed:  "登录失败：您的邮箱尚未验证。请检查收件箱（含垃圾邮件）并点击确认链接。",
	KindUnknown:            "认证失败，请重试。",
}

// SignUpNotice is shown after a registration that still needs email confirmation.
const SignUpNotice = "注册成功！请前往邮箱点击确认链接，完成后即可登录。"

// Classify maps an auth error to its kind. The server error code wins;
// otherwise the message text is matched, in the same order as the codes.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case wire.CodeInvalidCredentials:
			return KindInvalidCredentials
		case wire.CodeAlreadyRegistered:
			return KindAlreadyRegistered
		case wire.CodePasswordTooShort:
			return KindPasswordTooShort
		case wire.CodeEmailNotConfirmed:
			return KindEmailNotConfirmed
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "invalid login"):
		return KindInvalidCredentials
	case strings.Contains(msg, "already registered"):
		return KindAlreadyRegistered
	case strings.Contains(msg, "password"):
		return KindPasswordTooShort
	case strings.Contains(msg, "email not confirmed"):
		return KindEmailNotConfirmed
	}
	return KindUnknown
}

// MessageFor returns the localized message of an auth error.
func MessageFor(err error) string {
	return messages[Classify(err)]
}

// Message returns the localized message of k.
func (k ErrorKind) Message() string {
	if m, ok := messages[k]; ok {
		return m
	}
	return messages[KindUnknown]
}
