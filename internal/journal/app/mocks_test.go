package app_test

import (
	"context"
	"errors"
	"time"

	"github.com/stretchr/testify/mock"

	"bookjournal/internal/journal/domain/entities"
	"bookjournal/internal/journal/domain/services"
)

var errDatabase = errors.New("database error")

// fakeTx выполняет функцию без транзакции и считает вызовы по режимам.
type fakeTx struct {
	readWrite int
	readOnly  int
}

func (f *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.readWrite++
	return fn(ctx)
}

func (f *fakeTx) WithinReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.readOnly++
	return fn(ctx)
}

func result[T any](args mock.Arguments) (T, error) {
	var zero T
	if v := args.Get(0); v != nil {
		return v.(T), args.Error(1)
	}
	return zero, args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	return result[*entities.User](m.Called(ctx, user))
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	return result[*entities.User](m.Called(ctx, id))
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return result[*entities.User](m.Called(ctx, email))
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockBookRepository struct {
	mock.Mock
}

func (m *mockBookRepository) Create(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	return result[*entities.Book](m.Called(ctx, book))
}

func (m *mockBookRepository) Update(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	return result[*entities.Book](m.Called(ctx, book))
}

func (m *mockBookRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBookRepository) FindByID(ctx context.Context, id int64) (*entities.Book, error) {
	return result[*entities.Book](m.Called(ctx, id))
}

func (m *mockBookRepository) FindByIDAndUser(ctx context.Context, id, userID int64) (*entities.Book, error) {
	return result[*entities.Book](m.Called(ctx, id, userID))
}

func (m *mockBookRepository) FindByUser(ctx context.Context, userID int64) ([]*entities.Book, error) {
	return result[[]*entities.Book](m.Called(ctx, userID))
}

func (m *mockBookRepository) FindByUserAndGenre(ctx context.Context, userID int64, genre entities.Genre) ([]*entities.Book, error) {
	return result[[]*entities.Book](m.Called(ctx, userID, genre))
}

func (m *mockBookRepository) SearchByTitle(ctx context.Context, userID int64, title string) ([]*entities.Book, error) {
	return result[[]*entities.Book](m.Called(ctx, userID, title))
}

func (m *mockBookRepository) ExistsByISBN(ctx context.Context, isbn string, excludeID int64) (bool, error) {
	args := m.Called(ctx, isbn, excludeID)
	return args.Bool(0), args.Error(1)
}

type mockReadingRepository struct {
	mock.Mock
}

func (m *mockReadingRepository) Create(ctx context.Context, record *entities.ReadingRecord) (*entities.ReadingRecord, error) {
	return result[*entities.ReadingRecord](m.Called(ctx, record))
}

func (m *mockReadingRepository) Update(ctx context.Context, record *entities.ReadingRecord) (*entities.ReadingRecord, error) {
	return result[*entities.ReadingRecord](m.Called(ctx, record))
}

func (m *mockReadingRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockReadingRepository) FindByID(ctx context.Context, id int64) (*entities.ReadingRecord, error) {
	return result[*entities.ReadingRecord](m.Called(ctx, id))
}

func (m *mockReadingRepository) FindByUser(ctx context.Context, userID int64) ([]*entities.ReadingRecord, error) {
	return result[[]*entities.ReadingRecord](m.Called(ctx, userID))
}

func (m *mockReadingRepository) FindByUserAndStatus(ctx context.Context, userID int64, status entities.ReadingStatus) ([]*entities.ReadingRecord, error) {
	return result[[]*entities.ReadingRecord](m.Called(ctx, userID, status))
}

func (m *mockReadingRepository) FindByBook(ctx context.Context, bookID int64) ([]*entities.ReadingRecord, error) {
	return result[[]*entities.ReadingRecord](m.Called(ctx, bookID))
}

type mockAnalysisRepository struct {
	mock.Mock
}

func (m *mockAnalysisRepository) Save(ctx context.Context, analysis *entities.AIAnalysis) (*entities.AIAnalysis, error) {
	return result[*entities.AIAnalysis](m.Called(ctx, analysis))
}

func (m *mockAnalysisRepository) FindByID(ctx context.Context, id string) (*entities.AIAnalysis, error) {
	return result[*entities.AIAnalysis](m.Called(ctx, id))
}

func (m *mockAnalysisRepository) FindByUser(ctx context.Context, userID int64) ([]*entities.AIAnalysis, error) {
	return result[[]*entities.AIAnalysis](m.Called(ctx, userID))
}

func (m *mockAnalysisRepository) FindByBook(ctx context.Context, bookID int64) ([]*entities.AIAnalysis, error) {
	return result[[]*entities.AIAnalysis](m.Called(ctx, bookID))
}

func (m *mockAnalysisRepository) FindByUserAndType(ctx context.Context, userID int64, analysisType entities.AnalysisType) ([]*entities.AIAnalysis, error) {
	return result[[]*entities.AIAnalysis](m.Called(ctx, userID, analysisType))
}

func (m *mockAnalysisRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateAccessToken(ctx context.Context, userID int64, email string) (string, time.Time, error) {
	args := m.Called(ctx, userID, email)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) ValidateAccessToken(ctx context.Context, token string) (*services.JWTClaims, error) {
	return result[*services.JWTClaims](m.Called(ctx, token))
}

type mockAIClient struct {
	mock.Mock
}

func (m *mockAIClient) GenerateAnalysis(ctx context.Context, req *services.AIAnalysisRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockAIClient) IsHealthy(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, id string) (*entities.AIAnalysis, error) {
	return result[*entities.AIAnalysis](m.Called(ctx, id))
}

func (m *mockCache) Set(ctx context.Context, analysis *entities.AIAnalysis) error {
	return m.Called(ctx, analysis).Error(0)
}

func (m *mockCache) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCache) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
