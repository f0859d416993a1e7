package entities

import (
	"strings"
	"time"
)

// Ошибки домена книги.
var (
	ErrBlankTitle           = NewArgumentError("title is required")
	ErrBlankAuthor          = NewArgumentError("author is required")
	ErrGenreRequired        = NewArgumentError("genre is required")
	ErrInvalidISBN          = NewArgumentError("invalid ISBN format")
	ErrBookOwnerRequired    = NewArgumentError("book owner is required")
	ErrBookNotFound         = NewArgumentError("book not found")
	ErrBookNotFoundOrDenied = NewArgumentError("book not found or access denied")
	ErrISBNAlreadyExists    = NewArgumentError("isbn already exists")
)

// Book - книга в каталоге пользователя.
type Book struct {
	ID          int64
	Title       string
	Author      string
	ISBN        string
	Genre       Genre
	Description string
	Content     string
	UserID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook создает книгу, принадлежащую userID.
// Пустой isbn означает его отсутствие.
func NewBook(userID int64, title, author, isbn string, genre Genre, description, content string) (*Book, error) {
	now := time.Now().UTC()
	b := &Book{
		Title:       strings.TrimSpace(title),
		Author:      strings.TrimSpace(author),
		ISBN:        strings.TrimSpace(isbn),
		Genre:       genre,
		Description: description,
		Content:     content,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate проверяет инварианты книги.
func (b *Book) Validate() error {
	if b.Title == "" {
		return ErrBlankTitle
	}
	if b.Author == "" {
		return ErrBlankAuthor
	}
	if b.Genre == "" {
		return ErrGenreRequired
	}
	if !b.Genre.Valid() {
		return ErrInvalidGenre
	}
	if b.ISBN != "" && !ValidISBN(b.ISBN) {
		return ErrInvalidISBN
	}
	if b.UserID <= 0 {
		return ErrBookOwnerRequired
	}
	return nil
}

// HasISBN сообщает, указан ли ISBN.
func (b *Book) HasISBN() bool {
	return b.ISBN != ""
}

// UpdateDescription меняет описание.
func (b *Book) UpdateDescription(description string) {
	b.Description = description
	b.UpdatedAt = time.Now().UTC()
}

// UpdateContent меняет содержимое.
func (b *Book) UpdateContent(content string) {
	b.Content = content
	b.UpdatedAt = time.Now().UTC()
}

// IsTechnology сообщает, техническая ли это книга.
func (b *Book) IsTechnology() bool {
	return b.Genre == GenreTechnology
}

// IsFiction сообщает, художественная ли это книга.
func (b *Book) IsFiction() bool {
	return b.Genre == GenreFiction
}

// IsNonFiction сообщает, документальная ли это книга.
func (b *Book) IsNonFiction() bool {
	return b.Genre == GenreNonFiction
}

// ValidISBN проверяет ISBN-10/ISBN-13: после удаления пробелов и дефисов остаются 10 или 13 цифр.
func ValidISBN(isbn string) bool {
	cleaned := strings.NewReplacer("-", "", " ", "").Replace(isbn)
	if len(cleaned) != 10 && len(cleaned) != 13 {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
