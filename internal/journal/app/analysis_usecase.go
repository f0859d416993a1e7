package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookjournal/internal/journal/domain/entities"
	"bookjournal/internal/journal/domain/services"
	"bookjournal/internal/journal/ports/api"
	"bookjournal/internal/journal/ports/repositories"
	svc "bookjournal/internal/journal/ports/services"
	"bookjournal/pkg/logger"
)

const (
	methodGenerateAnalysis       = "GenerateAnalysis"
	methodGenerateDirectAnalysis = "GenerateDirectAnalysis"
	methodGetAnalysis            = "GetAnalysis"
	methodDeleteAnalysis         = "DeleteAnalysis"

	directUserIDPrefix = "direct_analysis_"
	directBookIDPrefix = "direct_book_"

	msgStartAnalysis     = "starting AI analysis"
	msgReadingIncomplete = "reading record is not completed"
	msgReadingEmpty      = "reading record content is empty"
	msgAnalysisGenerated = "AI analysis generated"
	msgAnalysisDeleted   = "AI analysis deleted"
	msgCacheReadFailed   = "analysis cache read failed"
	msgCacheWriteFailed  = "analysis cache write failed"
	msgCacheEvictFailed  = "analysis cache eviction failed"
	msgErrAIGeneration   = "AI generation failed"
	msgInvalidAnalysis   = "generated analysis is invalid"

	errCtxLoadingReading   = "loading reading record"
	errCtxLoadingBook      = "loading book"
	errCtxGeneratingAI     = "failed to generate AI analysis"
	errCtxValidatingResult = "validating analysis"
	errCtxSavingAnalysis   = "saving analysis"
	errCtxFindingAnalysis  = "finding analysis"
	errCtxListingAnalyses  = "listing analyses"
	errCtxDeletingAnalysis = "deleting analysis"
)

// AnalysisUseCaseImpl реализует интерфейс AnalysisUseCase.
// Обращение к AI-сервису выполняется вне открытых транзакций.
type AnalysisUseCaseImpl struct {
	tx           repositories.Transactor
	bookRepo     repositories.BookRepository
	readingRepo  repositories.ReadingRecordRepository
	analysisRepo repositories.AnalysisRepository
	aiClient     svc.AIClient
	cache        svc.AnalysisCache
	now          func() time.Time
}

// NewAnalysisUseCase создает новый экземпляр сервиса AI-анализов.
func NewAnalysisUseCase(
	tx repositories.Transactor,
	bookRepo repositories.BookRepository,
	readingRepo repositories.ReadingRecordRepository,
	analysisRepo repositories.AnalysisRepository,
	aiClient svc.AIClient,
	cache svc.AnalysisCache,
) api.AnalysisUseCase {
	return &AnalysisUseCaseImpl{
		tx:           tx,
		bookRepo:     bookRepo,
		readingRepo:  readingRepo,
		analysisRepo: analysisRepo,
		aiClient:     aiClient,
		cache:        cache,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// GenerateAnalysis анализирует завершенную запись о чтении.
func (a *AnalysisUseCaseImpl) GenerateAnalysis(ctx context.Context, recordID int64, analysisType entities.AnalysisType) (*entities.AIAnalysis, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGenerateAnalysis),
		zap.Int64("recordID", recordID),
		zap.String("type", string(analysisType)),
	)
	log.Debug(ctx, msgStartAnalysis)

	var (
		record *entities.ReadingRecord
		book   *entities.Book
	)
	err := a.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		record, err = a.readingRepo.FindByID(ctx, recordID)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtxLoadingReading, err)
		}
		if !record.IsCompleted() {
			log.Debug(ctx, msgReadingIncomplete)
			return entities.ErrReadingNotCompleted
		}
		if strings.TrimSpace(record.Content) == "" {
			log.Debug(ctx, msgReadingEmpty)
			return entities.ErrReadingContentEmpty
		}
		book, err = a.bookRepo.FindByID(ctx, record.BookID())
		if err != nil {
			return fmt.Errorf("%s: %w", errCtxLoadingBook, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	content, err := a.aiClient.GenerateAnalysis(ctx, &services.AIAnalysisRequest{
		UserID:         strconv.FormatInt(record.UserID(), 10),
		BookID:         strconv.FormatInt(book.ID, 10),
		BookTitle:      book.Title,
		BookAuthor:     book.Author,
		Genre:          book.Genre.String(),
		ReadingContent: record.Content,
	})
	if err != nil {
		log.Error(ctx, msgErrAIGeneration, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingAI, err)
	}

	return a.store(ctx, log, record.UserID(), book.ID, analysisType, content)
}

// GenerateDirectAnalysis анализирует произвольный текст по книге. Анализ приписывается владельцу книги.
func (a *AnalysisUseCaseImpl) GenerateDirectAnalysis(ctx context.Context, bookID int64, content string, analysisType entities.AnalysisType) (*entities.AIAnalysis, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGenerateDirectAnalysis),
		zap.Int64("bookID", bookID),
		zap.String("type", string(analysisType)),
	)
	log.Debug(ctx, msgStartAnalysis)

	var book *entities.Book
	err := a.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		book, err = a.bookRepo.FindByID(ctx, bookID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingBook, err)
	}

	generated, err := a.aiClient.GenerateAnalysis(ctx, &services.AIAnalysisRequest{
		UserID:         directUserIDPrefix + uuid.NewString(),
		BookID:         directBookIDPrefix + strconv.FormatInt(book.ID, 10),
		BookTitle:      book.Title,
		BookAuthor:     book.Author,
		Genre:          book.Genre.String(),
		ReadingContent: content,
	})
	if err != nil {
		log.Error(ctx, msgErrAIGeneration, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingAI, err)
	}

	return a.store(ctx, log, book.UserID, book.ID, analysisType, generated)
}

func (a *AnalysisUseCaseImpl) store(
	ctx context.Context,
	log *logger.Logger,
	userID, bookID int64,
	analysisType entities.AnalysisType,
	content string,
) (*entities.AIAnalysis, error) {
	analysis, err := entities.NewAIAnalysis(userID, bookID, analysisType, content, a.now())
	if err != nil {
		log.Warn(ctx, msgInvalidAnalysis, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingResult, err)
	}

	var saved *entities.AIAnalysis
	err = a.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		saved, err = a.analysisRepo.Save(ctx, analysis)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxSavingAnalysis, err)
	}

	log.Info(ctx, msgAnalysisGenerated, zap.String("analysisID", saved.ID))
	return saved, nil
}

// GetAnalysis возвращает анализ, сначала заглядывая в кэш.
func (a *AnalysisUseCaseImpl) GetAnalysis(ctx context.Context, analysisID string) (*entities.AIAnalysis, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetAnalysis), zap.String("analysisID", analysisID))

	cached, err := a.cache.Get(ctx, analysisID)
	if err != nil {
		log.Warn(ctx, msgCacheReadFailed, zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	var analysis *entities.AIAnalysis
	err = a.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		analysis, err = a.analysisRepo.FindByID(ctx, analysisID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFindingAnalysis, err)
	}

	if err := a.cache.Set(ctx, analysis); err != nil {
		log.Warn(ctx, msgCacheWriteFailed, zap.Error(err))
	}
	return analysis, nil
}

// GetAnalysesByUser возвращает анализы пользователя, новые первыми.
func (a *AnalysisUseCaseImpl) GetAnalysesByUser(ctx context.Context, userID int64) ([]*entities.AIAnalysis, error) {
	return a.list(ctx, func(ctx context.Context) ([]*entities.AIAnalysis, error) {
		return a.analysisRepo.FindByUser(ctx, userID)
	})
}

// GetAnalysesByBook возвращает анализы книги, новые первыми.
func (a *AnalysisUseCaseImpl) GetAnalysesByBook(ctx context.Context, bookID int64) ([]*entities.AIAnalysis, error) {
	return a.list(ctx, func(ctx context.Context) ([]*entities.AIAnalysis, error) {
		return a.analysisRepo.FindByBook(ctx, bookID)
	})
}

// GetAnalysesByUserAndType возвращает анализы пользователя указанного типа.
func (a *AnalysisUseCaseImpl) GetAnalysesByUserAndType(ctx context.Context, userID int64, analysisType entities.AnalysisType) ([]*entities.AIAnalysis, error) {
	return a.list(ctx, func(ctx context.Context) ([]*entities.AIAnalysis, error) {
		return a.analysisRepo.FindByUserAndType(ctx, userID, analysisType)
	})
}

// DeleteAnalysis удаляет анализ и вытесняет его из кэша.
func (a *AnalysisUseCaseImpl) DeleteAnalysis(ctx context.Context, analysisID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteAnalysis), zap.String("analysisID", analysisID))

	err := a.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := a.analysisRepo.FindByID(ctx, analysisID); err != nil {
			return fmt.Errorf("%s: %w", errCtxFindingAnalysis, err)
		}
		if err := a.analysisRepo.Delete(ctx, analysisID); err != nil {
			return fmt.Errorf("%s: %w", errCtxDeletingAnalysis, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := a.cache.Delete(ctx, analysisID); err != nil {
		log.Warn(ctx, msgCacheEvictFailed, zap.Error(err))
	}

	log.Info(ctx, msgAnalysisDeleted)
	return nil
}

func (a *AnalysisUseCaseImpl) list(ctx context.Context, query func(ctx context.Context) ([]*entities.AIAnalysis, error)) ([]*entities.AIAnalysis, error) {
	var analyses []*entities.AIAnalysis
	err := a.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		analyses, err = query(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingAnalyses, err)
	}
	return analyses, nil
}
