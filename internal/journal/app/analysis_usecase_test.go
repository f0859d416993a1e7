package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookjournal/internal/journal/app"
	"bookjournal/internal/journal/domain/entities"
	"bookjournal/internal/journal/domain/services"
	"bookjournal/internal/journal/ports/api"
)

type analysisMocks struct {
	books    *mockBookRepository
	readings *mockReadingRepository
	analyses *mockAnalysisRepository
	ai       *mockAIClient
	cache    *mockCache
	tx       *fakeTx
}

func newAnalysisMocks() *analysisMocks {
	return &analysisMocks{
		books:    new(mockBookRepository),
		readings: new(mockReadingRepository),
		analyses: new(mockAnalysisRepository),
		ai:       new(mockAIClient),
		cache:    new(mockCache),
		tx:       &fakeTx{},
	}
}

func (m *analysisMocks) useCase() api.AnalysisUseCase {
	return app.NewAnalysisUseCase(m.tx, m.books, m.readings, m.analyses, m.ai, m.cache)
}

func duneBook() *entities.Book {
	return &entities.Book{ID: 10, UserID: 3, Title: "Dune", Author: "Herbert", Genre: entities.GenreFiction}
}

func TestGenerateAnalysis(t *testing.T) {
	ctx := context.Background()

	t.Run("completed record is analysed", func(t *testing.T) {
		m := newAnalysisMocks()
		m.readings.On("FindByID", mock.Anything, int64(7)).Return(completedRecord(), nil).Once()
		m.books.On("FindByID", mock.Anything, int64(10)).Return(duneBook(), nil).Once()
		m.ai.On("GenerateAnalysis", mock.Anything, &services.AIAnalysisRequest{
			UserID:         "3",
			BookID:         "10",
			BookTitle:      "Dune",
			BookAuthor:     "Herbert",
			Genre:          "FICTION",
			ReadingContent: "notes",
		}).Return("a deep analysis", nil).Once()
		m.analyses.On("Save", mock.Anything, mock.MatchedBy(func(a *entities.AIAnalysis) bool {
			return a.UserID == 3 && a.BookID == 10 && a.Type == entities.AnalysisLiterature &&
				a.Content == "a deep analysis" && a.ID != ""
		})).Return(&entities.AIAnalysis{ID: "a-1", UserID: 3, BookID: 10, Content: "a deep analysis"}, nil).Once()

		analysis, err := m.useCase().GenerateAnalysis(ctx, 7, entities.AnalysisLiterature)

		require.NoError(t, err)
		assert.Equal(t, "a deep analysis", analysis.Content)
		assert.Equal(t, 1, m.tx.readOnly)
		assert.Equal(t, 1, m.tx.readWrite)
		m.ai.AssertExpectations(t)
		m.analyses.AssertExpectations(t)
	})

	t.Run("in progress record is rejected before AI call", func(t *testing.T) {
		m := newAnalysisMocks()
		m.readings.On("FindByID", mock.Anything, int64(7)).Return(inProgressRecord(), nil).Once()

		_, err := m.useCase().GenerateAnalysis(ctx, 7, entities.AnalysisLiterature)

		require.ErrorIs(t, err, entities.ErrReadingNotCompleted)
		assert.ErrorIs(t, err, entities.ErrIllegalState)
		m.ai.AssertNotCalled(t, "GenerateAnalysis", mock.Anything, mock.Anything)
	})

	t.Run("blank content is rejected", func(t *testing.T) {
		m := newAnalysisMocks()
		record := completedRecord()
		record.Content = "  \n "
		m.readings.On("FindByID", mock.Anything, int64(7)).Return(record, nil).Once()

		_, err := m.useCase().GenerateAnalysis(ctx, 7, entities.AnalysisLiterature)

		require.ErrorIs(t, err, entities.ErrReadingContentEmpty)
		assert.ErrorIs(t, err, entities.ErrInvalidArgument)
		m.ai.AssertNotCalled(t, "GenerateAnalysis", mock.Anything, mock.Anything)
	})

	t.Run("missing record", func(t *testing.T) {
		m := newAnalysisMocks()
		m.readings.On("FindByID", mock.Anything, int64(7)).Return(nil, entities.ErrReadingRecordNotFound).Once()

		_, err := m.useCase().GenerateAnalysis(ctx, 7, entities.AnalysisLiterature)

		require.ErrorIs(t, err, entities.ErrReadingRecordNotFound)
		m.ai.AssertNotCalled(t, "GenerateAnalysis", mock.Anything, mock.Anything)
	})

	t.Run("missing book", func(t *testing.T) {
		m := newAnalysisMocks()
		m.readings.On("FindByID", mock.Anything, int64(7)).Return(completedRecord(), nil).Once()
		m.books.On("FindByID", mock.Anything, int64(10)).Return(nil, entities.ErrBookNotFound).Once()

		_, err := m.useCase().GenerateAnalysis(ctx, 7, entities.AnalysisTechnical)

		require.ErrorIs(t, err, entities.ErrBookNotFound)
		m.ai.AssertNotCalled(t, "GenerateAnalysis", mock.Anything, mock.Anything)
	})

	t.Run("AI failure is wrapped and nothing saved", func(t *testing.T) {
		m := newAnalysisMocks()
		m.readings.On("FindByID", mock.Anything, int64(7)).Return(completedRecord(), nil).Once()
		m.books.On("FindByID", mock.Anything, int64(10)).Return(duneBook(), nil).Once()
		aiErr := errors.New("cannot connect to AI service: connection refused")
		m.ai.On("GenerateAnalysis", mock.Anything, mock.Anything).Return("", aiErr).Once()

		_, err := m.useCase().GenerateAnalysis(ctx, 7, entities.AnalysisLiterature)

		require.ErrorIs(t, err, aiErr)
		assert.True(t, strings.HasPrefix(err.Error(), "failed to generate AI analysis: "))
		m.analyses.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		assert.Zero(t, m.tx.readWrite)
	})

	t.Run("oversized AI output is rejected", func(t *testing.T) {
		m := newAnalysisMocks()
		m.readings.On("FindByID", mock.Anything, int64(7)).Return(completedRecord(), nil).Once()
		m.books.On("FindByID", mock.Anything, int64(10)).Return(duneBook(), nil).Once()
		m.ai.On("GenerateAnalysis", mock.Anything, mock.Anything).
			Return(strings.Repeat("x", entities.MaxAnalysisContentLength+1), nil).Once()

		_, err := m.useCase().GenerateAnalysis(ctx, 7, entities.AnalysisLiterature)

		require.ErrorIs(t, err, entities.ErrAnalysisContentTooLong)
		m.analyses.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestGenerateDirectAnalysis(t *testing.T) {
	ctx := context.Background()

	t.Run("attributes analysis to book owner", func(t *testing.T) {
		m := newAnalysisMocks()
		m.books.On("FindByID", mock.Anything, int64(10)).Return(duneBook(), nil).Once()
		m.ai.On("GenerateAnalysis", mock.Anything, mock.MatchedBy(func(r *services.AIAnalysisRequest) bool {
			return strings.HasPrefix(r.UserID, "direct_analysis_") && len(r.UserID) > len("direct_analysis_") &&
				r.BookID == "direct_book_10" && r.ReadingContent == "free text" && r.Genre == "FICTION"
		})).Return("summary", nil).Once()
		m.analyses.On("Save", mock.Anything, mock.MatchedBy(func(a *entities.AIAnalysis) bool {
			return a.UserID == 3 && a.BookID == 10 && a.Type == entities.AnalysisTechnical
		})).Return(&entities.AIAnalysis{ID: "a-2", UserID: 3, BookID: 10}, nil).Once()

		analysis, err := m.useCase().GenerateDirectAnalysis(ctx, 10, "free text", entities.AnalysisTechnical)

		require.NoError(t, err)
		assert.Equal(t, int64(3), analysis.UserID)
		m.ai.AssertExpectations(t)
	})

	t.Run("unknown book", func(t *testing.T) {
		m := newAnalysisMocks()
		m.books.On("FindByID", mock.Anything, int64(10)).Return(nil, entities.ErrBookNotFound).Once()

		_, err := m.useCase().GenerateDirectAnalysis(ctx, 10, "free text", entities.AnalysisTechnical)

		require.ErrorIs(t, err, entities.ErrBookNotFound)
		m.ai.AssertNotCalled(t, "GenerateAnalysis", mock.Anything, mock.Anything)
	})

	t.Run("AI failure is wrapped and nothing saved", func(t *testing.T) {
		m := newAnalysisMocks()
		m.books.On("FindByID", mock.Anything, int64(10)).Return(duneBook(), nil).Once()
		aiErr := errors.New("no valid response from AI service")
		m.ai.On("GenerateAnalysis", mock.Anything, mock.Anything).Return("", aiErr).Once()

		_, err := m.useCase().GenerateDirectAnalysis(ctx, 10, "free text", entities.AnalysisTechnical)

		require.ErrorIs(t, err, aiErr)
		assert.True(t, strings.HasPrefix(err.Error(), "failed to generate AI analysis: "))
		m.analyses.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		assert.Zero(t, m.tx.readWrite)
	})
}

func TestGetAnalysis(t *testing.T) {
	ctx := context.Background()
	stored := &entities.AIAnalysis{
		ID:        "a-1",
		UserID:    3,
		BookID:    10,
		Type:      entities.AnalysisLiterature,
		Content:   "analysis",
		CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("cache hit skips database", func(t *testing.T) {
		m := newAnalysisMocks()
		m.cache.On("Get", mock.Anything, "a-1").Return(stored, nil).Once()

		analysis, err := m.useCase().GetAnalysis(ctx, "a-1")

		require.NoError(t, err)
		assert.Equal(t, stored, analysis)
		assert.Zero(t, m.tx.readOnly)
		m.analyses.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("cache miss loads and fills cache", func(t *testing.T) {
		m := newAnalysisMocks()
		m.cache.On("Get", mock.Anything, "a-1").Return(nil, nil).Once()
		m.analyses.On("FindByID", mock.Anything, "a-1").Return(stored, nil).Once()
		m.cache.On("Set", mock.Anything, stored).Return(nil).Once()

		analysis, err := m.useCase().GetAnalysis(ctx, "a-1")

		require.NoError(t, err)
		assert.Equal(t, stored, analysis)
		m.cache.AssertExpectations(t)
	})

	t.Run("cache failure falls back to database", func(t *testing.T) {
		m := newAnalysisMocks()
		m.cache.On("Get", mock.Anything, "a-1").Return(nil, errors.New("connection refused")).Once()
		m.analyses.On("FindByID", mock.Anything, "a-1").Return(stored, nil).Once()
		m.cache.On("Set", mock.Anything, stored).Return(errors.New("connection refused")).Once()

		analysis, err := m.useCase().GetAnalysis(ctx, "a-1")

		require.NoError(t, err)
		assert.Equal(t, "analysis", analysis.Content)
	})

	t.Run("not found", func(t *testing.T) {
		m := newAnalysisMocks()
		m.cache.On("Get", mock.Anything, "a-2").Return(nil, nil).Once()
		m.analyses.On("FindByID", mock.Anything, "a-2").Return(nil, entities.ErrAnalysisNotFound).Once()

		_, err := m.useCase().GetAnalysis(ctx, "a-2")

		require.ErrorIs(t, err, entities.ErrAnalysisNotFound)
		m.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})
}

func TestDeleteAnalysis(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and evicts", func(t *testing.T) {
		m := newAnalysisMocks()
		m.analyses.On("FindByID", mock.Anything, "a-1").Return(&entities.AIAnalysis{ID: "a-1"}, nil).Once()
		m.analyses.On("Delete", mock.Anything, "a-1").Return(nil).Once()
		m.cache.On("Delete", mock.Anything, "a-1").Return(nil).Once()

		require.NoError(t, m.useCase().DeleteAnalysis(ctx, "a-1"))
		m.analyses.AssertExpectations(t)
		m.cache.AssertExpectations(t)
	})

	t.Run("missing analysis is not evicted", func(t *testing.T) {
		m := newAnalysisMocks()
		m.analyses.On("FindByID", mock.Anything, "a-1").Return(nil, entities.ErrAnalysisNotFound).Once()

		err := m.useCase().DeleteAnalysis(ctx, "a-1")

		require.ErrorIs(t, err, entities.ErrAnalysisNotFound)
		m.cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestAnalysisLists(t *testing.T) {
	ctx := context.Background()
	m := newAnalysisMocks()
	list := []*entities.AIAnalysis{{ID: "b"}, {ID: "a"}}
	m.analyses.On("FindByUser", mock.Anything, int64(3)).Return(list, nil).Once()
	m.analyses.On("FindByBook", mock.Anything, int64(10)).Return(list[:1], nil).Once()
	m.analyses.On("FindByUserAndType", mock.Anything, int64(3), entities.AnalysisTechnical).Return(nil, errDatabase).Once()
	uc := m.useCase()

	byUser, err := uc.GetAnalysesByUser(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, list, byUser)

	byBook, err := uc.GetAnalysesByBook(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, byBook, 1)

	_, err = uc.GetAnalysesByUserAndType(ctx, 3, entities.AnalysisTechnical)
	require.ErrorIs(t, err, errDatabase)
	assert.Equal(t, 3, m.tx.readOnly)
}
