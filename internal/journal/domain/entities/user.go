// Package entities содержит доменные сущности журнала чтения и их инварианты.
package entities

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound        = NewArgumentError("user not found")
	ErrEmailAlreadyExists  = NewArgumentError("email already exists")
	ErrBlankEmail          = NewArgumentError("email is required")
	ErrInvalidEmail        = NewArgumentError("invalid email format")
	ErrBlankNickname       = NewArgumentError("nickname is required")
	ErrBlankPassword       = NewArgumentError("password is required")
	ErrPasswordTooShort    = NewArgumentError("password must be at least 8 characters")
	ErrPasswordNoUppercase = NewArgumentError("password must contain an uppercase letter")
	ErrPasswordNoLowercase = NewArgumentError("password must contain a lowercase letter")
	ErrPasswordNoDigit     = NewArgumentError("password must contain a digit")
	ErrPasswordNoSpecial   = NewArgumentError("password must contain a special character")
	ErrPasswordUnusable    = NewArgumentError("password cannot be stored")
	ErrInvalidCredentials  = NewAuthenticationError("invalid email or password")
)

// MinPasswordLength - минимальная длина пароля в открытом виде.
const MinPasswordLength = 8

var (
	emailPattern     = regexp.MustCompile(`^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,7}$`)
	upperPattern     = regexp.MustCompile(`[A-Z]`)
	lowerPattern     = regexp.MustCompile(`[a-z]`)
	digitPattern     = regexp.MustCompile(`[0-9]`)
	specialPattern   = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)
	bcryptHashPrefix = []string{"$2a$", "$2b$", "$2y$"}
)

// User - зарегистрированный пользователь.
type User struct {
	ID        int64
	Email     string
	Password  string
	Nickname  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser создает пользователя, проверяя email, пароль и никнейм.
// Пароль может быть как открытым (проверяется сложность), так и bcrypt-хэшем.
func NewUser(email, password, nickname string) (*User, error) {
	now := time.Now().UTC()
	u := &User{
		Email:     strings.TrimSpace(email),
		Password:  password,
		Nickname:  strings.TrimSpace(nickname),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate проверяет инварианты пользователя.
func (u *User) Validate() error {
	if err := validateEmail(u.Email); err != nil {
		return err
	}
	if err := validatePassword(u.Password); err != nil {
		return err
	}
	return validateNickname(u.Nickname)
}

// UpdateNickname меняет никнейм.
func (u *User) UpdateNickname(nickname string) error {
	nickname = strings.TrimSpace(nickname)
	if err := validateNickname(nickname); err != nil {
		return err
	}
	u.Nickname = nickname
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// ChangePassword меняет пароль с проверкой сложности.
func (u *User) ChangePassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	u.Password = password
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// SetEncodedPassword сохраняет уже захэшированный пароль без проверок.
func (u *User) SetEncodedPassword(hash string) {
	u.Password = hash
	u.UpdatedAt = time.Now().UTC()
}

// IsEncodedPassword сообщает, похоже ли значение на bcrypt-хэш.
func IsEncodedPassword(password string) bool {
	for _, prefix := range bcryptHashPrefix {
		if strings.HasPrefix(password, prefix) {
			return true
		}
	}
	return false
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrBlankEmail
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func validateNickname(nickname string) error {
	if strings.TrimSpace(nickname) == "" {
		return ErrBlankNickname
	}
	return nil
}

func validatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrBlankPassword
	}
	if IsEncodedPassword(password) {
		return nil
	}
	switch {
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return ErrPasswordTooShort
	case !upperPattern.MatchString(password):
		return ErrPasswordNoUppercase
	case !lowerPattern.MatchString(password):
		return ErrPasswordNoLowercase
	case !digitPattern.MatchString(password):
		return ErrPasswordNoDigit
	case !specialPattern.MatchString(password):
		return ErrPasswordNoSpecial
	}
	return nil
}
