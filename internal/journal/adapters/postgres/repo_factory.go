package postgres

import (
	"bookjournal/internal/journal/ports/repositories"
	pgdb "bookjournal/pkg/db/postgres"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	userRepo     repositories.UserRepository
	bookRepo     repositories.BookRepository
	readingRepo  repositories.ReadingRecordRepository
	analysisRepo repositories.AnalysisRepository
	transactor   repositories.Transactor
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool pgdb.Pool) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo:     NewUserRepository(pool),
		bookRepo:     NewBookRepository(pool),
		readingRepo:  NewReadingRecordRepository(pool),
		analysisRepo: NewAnalysisRepository(pool),
		transactor:   pgdb.NewTxManager(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// BookRepository возвращает репозиторий книг.
func (f *RepositoryFactory) BookRepository() repositories.BookRepository {
	return f.bookRepo
}

// ReadingRecordRepository возвращает репозиторий записей о чтении.
func (f *RepositoryFactory) ReadingRecordRepository() repositories.ReadingRecordRepository {
	return f.readingRepo
}

// AnalysisRepository возвращает репозиторий анализов.
func (f *RepositoryFactory) AnalysisRepository() repositories.AnalysisRepository {
	return f.analysisRepo
}

// Transactor возвращает менеджер транзакций.
func (f *RepositoryFactory) Transactor() repositories.Transactor {
	return f.transactor
}
