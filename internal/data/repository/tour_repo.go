package repository

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TourRepository interface {
	Create(ctx context.Context, tour *entity.Tour) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error)
	FindAll(ctx context.Context) ([]*entity.Tour, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, tour *entity.Tour) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type tourRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTourRepository(db database.PgxIface, log *zap.Logger) TourRepository {
	return &tourRepository{
		db:  db,
		log: log.With(zap.String("repository", "tour")),
	}
}

func (tr *tourRepository) Create(ctx context.Context, tour *entity.Tour) error {
	query := `
		INSERT INTO tours (id, title, description, date, destination, amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := tr.db.Exec(ctx, query,
		tour.ID,
		tour.Title,
		tour.Description,
		tour.Date,
		tour.Destination,
		tour.Amount,
		tour.CreatedAt,
		tour.UpdatedAt,
	)

	if err != nil {
		tr.log.Error("Failed to create tour",
			zap.Error(err),
			zap.String("title", tour.Title),
		)
		return fmt.Errorf("create tour %s: %w", tour.Title, err)
	}

	return nil
}

func (tr *tourRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	query := `
		SELECT id, title, description, date, destination, amount, created_at, updated_at
		FROM tours
		WHERE id = $1
	`

	var tour entity.Tour
	err := tr.db.QueryRow(ctx, query, id).Scan(
		&tour.ID,
		&tour.Title,
		&tour.Description,
		&tour.Date,
		&tour.Destination,
		&tour.Amount,
		&tour.CreatedAt,
		&tour.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find tour by ID",
			zap.Error(err),
			zap.String("tour_id", id.String()),
		)
		return nil, fmt.Errorf("find tour by ID %s: %w", id.String(), err)
	}

	return &tour, nil
}

func (tr *tourRepository) FindAll(ctx context.Context) ([]*entity.Tour, error) {
	query := `
		SELECT id, title, description, date, destination, amount, created_at, updated_at
		FROM tours
		ORDER BY date ASC
	`

	rows, err := tr.db.Query(ctx, query)
	if err != nil {
		tr.log.Error("Failed to get all tours", zap.Error(err))
		return nil, fmt.Errorf("find all tours: %w", err)
	}
	defer rows.Close()

	var tours []*entity.Tour
	for rows.Next() {
		var tour entity.Tour
		err := rows.Scan(
			&tour.ID,
			&tour.Title,
			&tour.Description,
			&tour.Date,
			&tour.Destination,
			&tour.Amount,
			&tour.CreatedAt,
			&tour.UpdatedAt,
		)
		if err != nil {
			tr.log.Error("Failed to scan tour row", zap.Error(err))
			return nil, fmt.Errorf("scan tour row: %w", err)
		}
		tours = append(tours, &tour)
	}

	if err := rows.Err(); err != nil {
		tr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate tours rows: %w", err)
	}

	return tours, nil
}

func (tr *tourRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM tours`

	var count int64
	err := tr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		tr.log.Error("Database error counting tours", zap.Error(err))
		return 0, fmt.Errorf("count all tours: %w", err)
	}

	return count, nil
}

func (tr *tourRepository) Update(ctx context.Context, tour *entity.Tour) error {
	query := `
		UPDATE tours
		SET title = $2, description = $3, date = $4, destination = $5,
		    amount = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := tr.db.Exec(ctx, query,
		tour.ID,
		tour.Title,
		tour.Description,
		tour.Date,
		tour.Destination,
		tour.Amount,
		tour.UpdatedAt,
	)

	if err != nil {
		tr.log.Error("Failed to update tour",
			zap.Error(err),
			zap.String("tour_id", tour.ID.String()),
		)
		return fmt.Errorf("update tour %s: %w", tour.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour %s not found", tour.ID.String())
	}

	return nil
}

// Delete removes the row; dependent bookings cascade in the DB.
func (tr *tourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tours WHERE id = $1`

	result, err := tr.db.Exec(ctx, query, id)
	if err != nil {
		tr.log.Error("Failed to delete tour",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete tour %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour %s not found", id.String())
	}

	tr.log.Info("Tour deleted", zap.String("id", id.String()))
	return nil
}
