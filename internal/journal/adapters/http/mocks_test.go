package http_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"bookjournal/internal/journal/domain/entities"
	"bookjournal/internal/journal/domain/services"
	"bookjournal/internal/journal/ports/api"
)

func result[T any](args mock.Arguments) (T, error) {
	var zero T
	if v := args.Get(0); v != nil {
		return v.(T), args.Error(1)
	}
	return zero, args.Error(1)
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

type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Register(ctx context.Context, email, password, nickname string) (*services.AuthResult, error) {
	return result[*services.AuthResult](m.Called(ctx, email, password, nickname))
}

func (m *mockAuthUseCase) Login(ctx context.Context, email, password string) (*services.AuthResult, error) {
	return result[*services.AuthResult](m.Called(ctx, email, password))
}

type mockBookUseCase struct {
	mock.Mock
}

func (m *mockBookUseCase) CreateBook(ctx context.Context, userID int64, in api.BookInput) (*entities.Book, error) {
	return result[*entities.Book](m.Called(ctx, userID, in))
}

func (m *mockBookUseCase) UpdateBook(ctx context.Context, userID, bookID int64, in api.BookInput) (*entities.Book, error) {
	return result[*entities.Book](m.Called(ctx, userID, bookID, in))
}

func (m *mockBookUseCase) DeleteBook(ctx context.Context, userID, bookID int64) error {
	return m.Called(ctx, userID, bookID).Error(0)
}

func (m *mockBookUseCase) GetBook(ctx context.Context, userID, bookID int64) (*entities.Book, error) {
	return result[*entities.Book](m.Called(ctx, userID, bookID))
}

func (m *mockBookUseCase) ListBooks(ctx context.Context, userID int64) ([]*entities.Book, error) {
	return result[[]*entities.Book](m.Called(ctx, userID))
}

func (m *mockBookUseCase) ListBooksByGenre(ctx context.Context, userID int64, genre entities.Genre) ([]*entities.Book, error) {
	return result[[]*entities.Book](m.Called(ctx, userID, genre))
}

func (m *mockBookUseCase) SearchBooks(ctx context.Context, userID int64, title string) ([]*entities.Book, error) {
	return result[[]*entities.Book](m.Called(ctx, userID, title))
}

type mockReadingUseCase struct {
	mock.Mock
}

func (m *mockReadingUseCase) CreateReadingRecord(ctx context.Context, userID, bookID int64, content string) (*entities.ReadingRecord, error) {
	return result[*entities.ReadingRecord](m.Called(ctx, userID, bookID, content))
}

func (m *mockReadingUseCase) UpdateReadingRecord(ctx context.Context, recordID int64, content string) (*entities.ReadingRecord, error) {
	return result[*entities.ReadingRecord](m.Called(ctx, recordID, content))
}

func (m *mockReadingUseCase) CompleteReading(ctx context.Context, recordID int64) (*entities.ReadingRecord, error) {
	return result[*entities.ReadingRecord](m.Called(ctx, recordID))
}

func (m *mockReadingUseCase) GetReadingRecord(ctx context.Context, recordID int64) (*entities.ReadingRecord, error) {
	return result[*entities.ReadingRecord](m.Called(ctx, recordID))
}

func (m *mockReadingUseCase) ListByUser(ctx context.Context, userID int64) ([]*entities.ReadingRecord, error) {
	return result[[]*entities.ReadingRecord](m.Called(ctx, userID))
}

func (m *mockReadingUseCase) ListByUserAndStatus(ctx context.Context, userID int64, status entities.ReadingStatus) ([]*entities.ReadingRecord, error) {
	return result[[]*entities.ReadingRecord](m.Called(ctx, userID, status))
}

func (m *mockReadingUseCase) ListByBook(ctx context.Context, bookID int64) ([]*entities.ReadingRecord, error) {
	return result[[]*entities.ReadingRecord](m.Called(ctx, bookID))
}

func (m *mockReadingUseCase) DeleteReadingRecord(ctx context.Context, recordID int64) error {
	return m.Called(ctx, recordID).Error(0)
}

type mockAnalysisUseCase struct {
	mock.Mock
}

func (m *mockAnalysisUseCase) GenerateAnalysis(ctx context.Context, recordID int64, analysisType entities.AnalysisType) (*entities.AIAnalysis, error) {
	return result[*entities.AIAnalysis](m.Called(ctx, recordID, analysisType))
}

func (m *mockAnalysisUseCase) GenerateDirectAnalysis(ctx context.Context, bookID int64, content string, analysisType entities.AnalysisType) (*entities.AIAnalysis, error) {
	return result[*entities.AIAnalysis](m.Called(ctx, bookID, content, analysisType))
}

func (m *mockAnalysisUseCase) GetAnalysis(ctx context.Context, analysisID string) (*entities.AIAnalysis, error) {
	return result[*entities.AIAnalysis](m.Called(ctx, analysisID))
}

func (m *mockAnalysisUseCase) GetAnalysesByUser(ctx context.Context, userID int64) ([]*entities.AIAnalysis, error) {
	return result[[]*entities.AIAnalysis](m.Called(ctx, userID))
}

func (m *mockAnalysisUseCase) GetAnalysesByBook(ctx context.Context, bookID int64) ([]*entities.AIAnalysis, error) {
	return result[[]*entities.AIAnalysis](m.Called(ctx, bookID))
}

func (m *mockAnalysisUseCase) GetAnalysesByUserAndType(ctx context.Context, userID int64, analysisType entities.AnalysisType) ([]*entities.AIAnalysis, error) {
	return result[[]*entities.AIAnalysis](m.Called(ctx, userID, analysisType))
}

func (m *mockAnalysisUseCase) DeleteAnalysis(ctx context.Context, analysisID string) error {
	return m.Called(ctx, analysisID).Error(0)
}

type mockHealthUseCase struct {
	mock.Mock
}

func (m *mockHealthUseCase) Liveness(ctx context.Context) *services.Liveness {
	return m.Called(ctx).Get(0).(*services.Liveness)
}

func (m *mockHealthUseCase) Readiness(ctx context.Context) *services.Readiness {
	return m.Called(ctx).Get(0).(*services.Readiness)
}
