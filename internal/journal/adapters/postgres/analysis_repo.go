package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"bookjournal/internal/journal/domain/entities"
	"bookjournal/internal/journal/ports/repositories"
	pgdb "bookjournal/pkg/db/postgres"
	"bookjournal/pkg/logger"
)

// AnalysisRepository реализует интерфейс repositories.AnalysisRepository для работы с Postgres.
type AnalysisRepository struct {
	pool pgdb.Querier
}

// NewAnalysisRepository создает новый экземпляр репозитория анализов.
func NewAnalysisRepository(pool pgdb.Querier) repositories.AnalysisRepository {
	return &AnalysisRepository{pool: pool}
}

func newAnalysisRow() *analysisRow { return &analysisRow{} }

func analysisEntity(r *analysisRow) *entities.AIAnalysis { return r.toEntity() }

// Save сохраняет анализ.
func (r *AnalysisRepository) Save(ctx context.Context, analysis *entities.AIAnalysis) (*entities.AIAnalysis, error) {
	log := logger.Log(ctx).With(zap.String("repository", "analysis"), zap.String("method", "Save"))

	query := `
        INSERT INTO ai_analyses (id, user_id, book_id, analysis_type, content, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + analysisColumns

	var row analysisRow
	err := pgdb.Conn(ctx, r.pool).QueryRow(ctx, query,
		analysis.ID,
		analysis.UserID,
		analysis.BookID,
		string(analysis.Type),
		analysis.Content,
		analysis.CreatedAt,
	).Scan(row.dest()...)
	if err != nil {
		log.Error(ctx, "error saving analysis", zap.Error(err))
		return nil, fmt.Errorf("error saving analysis: %w", err)
	}

	return row.toEntity(), nil
}

// FindByID находит анализ по ID.
func (r *AnalysisRepository) FindByID(ctx context.Context, id string) (*entities.AIAnalysis, error) {
	log := logger.Log(ctx).With(zap.String("repository", "analysis"), zap.String("method", "FindByID"))

	query := `SELECT ` + analysisColumns + ` FROM ai_analyses WHERE id = $1`

	var row analysisRow
	if err := pgdb.Conn(ctx, r.pool).QueryRow(ctx, query, id).Scan(row.dest()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "analysis not found", zap.String("id", id))
			return nil, entities.ErrAnalysisNotFound
		}
		log.Error(ctx, "error finding analysis by id", zap.Error(err))
		return nil, fmt.Errorf("error querying analysis by id: %w", err)
	}

	return row.toEntity(), nil
}

// FindByUser возвращает анализы пользователя.
func (r *AnalysisRepository) FindByUser(ctx context.Context, userID int64) ([]*entities.AIAnalysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM ai_analyses WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, "FindByUser", query, userID)
}

// FindByBook возвращает анализы книги.
func (r *AnalysisRepository) FindByBook(ctx context.Context, bookID int64) ([]*entities.AIAnalysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM ai_analyses WHERE book_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, "FindByBook", query, bookID)
}

// FindByUserAndType возвращает анализы пользователя указанного типа.
func (r *AnalysisRepository) FindByUserAndType(ctx context.Context, userID int64, analysisType entities.AnalysisType) ([]*entities.AIAnalysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM ai_analyses WHERE user_id = $1 AND analysis_type = $2 ORDER BY created_at DESC`
	return r.list(ctx, "FindByUserAndType", query, userID, string(analysisType))
}

// Delete удаляет анализ по ID.
func (r *AnalysisRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "analysis"), zap.String("method", "Delete"))

	result, err := pgdb.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM ai_analyses WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, "error deleting analysis", zap.Error(err))
		return fmt.Errorf("error deleting analysis: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "analysis not found for deletion", zap.String("id", id))
		return entities.ErrAnalysisNotFound
	}

	return nil
}

func (r *AnalysisRepository) list(ctx context.Context, method, query string, args ...any) ([]*entities.AIAnalysis, error) {
	log := logger.Log(ctx).With(zap.String("repository", "analysis"), zap.String("method", method))

	rows, err := pgdb.Conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "error querying analyses", zap.Error(err))
		return nil, fmt.Errorf("error querying analyses: %w", err)
	}

	analyses, err := collect(rows, newAnalysisRow, analysisEntity)
	if err != nil {
		log.Error(ctx, "error scanning analysis row", zap.Error(err))
		return nil, fmt.Errorf("error scanning analysis row: %w", err)
	}

	return analyses, nil
}
