package services

import "context"

// PasswordService хэширует пароли при регистрации и проверяет их при входе.
type PasswordService interface {
	// Hash возвращает хэш для хранения в users.password_hash.
	// Пустой, слишком длинный или уже захэшированный пароль дает domain ErrInvalidPassword.
	Hash(ctx context.Context, password string) (string, error)

	// Verify возвращает false без ошибки, если пароль не совпал с хэшем.
	Verify(ctx context.Context, password, hash string) (bool, error)
}
