package entities

import (
	"strings"
	"time"
)

// ReadingStatus - статус чтения.
type ReadingStatus string

// Статусы чтения.
const (
	ReadingInProgress ReadingStatus = "IN_PROGRESS"
	ReadingCompleted  ReadingStatus = "COMPLETED"
)

// Ошибки домена записи о чтении.
var (
	ErrInvalidReadingStatus    = NewArgumentError("invalid reading status")
	ErrReadingUserRequired     = NewArgumentError("reading record user is required")
	ErrReadingBookRequired     = NewArgumentError("reading record book is required")
	ErrReadingRecordNotFound   = NewArgumentError("reading record not found")
	ErrReadingContentTooLong   = NewArgumentError("reading content must not exceed 50000 characters")
	ErrReadingAlreadyCompleted = NewStateError("reading record is already completed")
	ErrCompletedRecordReadOnly = NewStateError("cannot update content of a completed reading record")
)

// MaxReadingContentLength - максимальная длина заметки о чтении.
const MaxReadingContentLength = 50000

// ParseReadingStatus разбирает статус без учета регистра.
func ParseReadingStatus(s string) (ReadingStatus, error) {
	st := ReadingStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", ErrInvalidReadingStatus
	}
	return st, nil
}

// Valid сообщает, является ли значение известным статусом.
func (s ReadingStatus) Valid() bool {
	return s.Description() != ""
}

// Description возвращает человекочитаемое название статуса.
func (s ReadingStatus) Description() string {
	switch s {
	case ReadingInProgress:
		return "읽는 중"
	case ReadingCompleted:
		return "완료"
	}
	return ""
}

// ReadingRecord - запись о чтении конкретной книги пользователем.
type ReadingRecord struct {
	ID        int64
	User      *User
	Book      *Book
	Content   string
	Status    ReadingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewReadingRecord создает запись в статусе IN_PROGRESS.
func NewReadingRecord(user *User, book *Book, content string) (*ReadingRecord, error) {
	if user == nil {
		return nil, ErrReadingUserRequired
	}
	if book == nil {
		return nil, ErrReadingBookRequired
	}
	now := time.Now().UTC()
	return &ReadingRecord{
		User:      user,
		Book:      book,
		Content:   content,
		Status:    ReadingInProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// UserID возвращает идентификатор владельца записи.
func (r *ReadingRecord) UserID() int64 {
	if r.User == nil {
		return 0
	}
	return r.User.ID
}

// BookID возвращает идентификатор книги.
func (r *ReadingRecord) BookID() int64 {
	if r.Book == nil {
		return 0
	}
	return r.Book.ID
}

// IsCompleted сообщает, завершено ли чтение.
func (r *ReadingRecord) IsCompleted() bool {
	return r.Status == ReadingCompleted
}

// UpdateContent меняет заметку. Завершенную запись менять нельзя.
func (r *ReadingRecord) UpdateContent(content string) error {
	if r.IsCompleted() {
		return ErrCompletedRecordReadOnly
	}
	r.Content = content
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// Complete переводит запись в COMPLETED. Повторный вызов - ошибка состояния.
func (r *ReadingRecord) Complete() error {
	if r.IsCompleted() {
		return ErrReadingAlreadyCompleted
	}
	r.Status = ReadingCompleted
	r.UpdatedAt = time.Now().UTC()
	return nil
}
