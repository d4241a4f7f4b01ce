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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error)
	FindAll(ctx context.Context) ([]*entity.BookingDetail, error)
	FindByParentID(ctx context.Context, parentID uuid.UUID) ([]*entity.BookingDetail, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// detailQuery joins the display names every booking view needs.
const bookingDetailQuery = `
	SELECT b.id, b.parent_id, b.student_id, b.tour_id, b.booking_date,
	       b.status, b.amount, b.created_at, b.updated_at,
	       s.name AS student_name, t.title AS tour_title, u.username AS parent_name
	FROM bookings b
	JOIN students s ON s.id = b.student_id
	JOIN tours t ON t.id = b.tour_id
	JOIN users u ON u.id = b.parent_id
`

func (br *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, parent_id, student_id, tour_id, booking_date,
		                     status, amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := br.db.Exec(ctx, query,
		booking.ID,
		booking.ParentID,
		booking.StudentID,
		booking.TourID,
		booking.BookingDate,
		booking.Status,
		booking.Amount,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		br.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("parent_id", booking.ParentID.String()),
		)
		return fmt.Errorf("create booking for parent %s: %w", booking.ParentID.String(), err)
	}

	return nil
}

func (br *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error) {
	query := bookingDetailQuery + ` WHERE b.id = $1`

	var b entity.BookingDetail
	err := br.db.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.ParentID,
		&b.StudentID,
		&b.TourID,
		&b.BookingDate,
		&b.Status,
		&b.Amount,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.StudentName,
		&b.TourTitle,
		&b.ParentName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		br.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &b, nil
}

func (br *bookingRepository) FindAll(ctx context.Context) ([]*entity.BookingDetail, error) {
	query := bookingDetailQuery + ` ORDER BY b.created_at DESC`

	rows, err := br.db.Query(ctx, query)
	if err != nil {
		br.log.Error("Failed to get all bookings", zap.Error(err))
		return nil, fmt.Errorf("find all bookings: %w", err)
	}
	defer rows.Close()

	return br.scanBookings(rows)
}

func (br *bookingRepository) FindByParentID(ctx context.Context, parentID uuid.UUID) ([]*entity.BookingDetail, error) {
	query := bookingDetailQuery + ` WHERE b.parent_id = $1 ORDER BY b.created_at DESC`

	rows, err := br.db.Query(ctx, query, parentID)
	if err != nil {
		br.log.Error("Failed to get bookings by parent",
			zap.Error(err),
			zap.String("parent_id", parentID.String()),
		)
		return nil, fmt.Errorf("find bookings by parent %s: %w", parentID.String(), err)
	}
	defer rows.Close()

	return br.scanBookings(rows)
}

func (br *bookingRepository) scanBookings(rows pgx.Rows) ([]*entity.BookingDetail, error) {
	var bookings []*entity.BookingDetail
	for rows.Next() {
		var b entity.BookingDetail
		err := rows.Scan(
			&b.ID,
			&b.ParentID,
			&b.StudentID,
			&b.TourID,
			&b.BookingDate,
			&b.Status,
			&b.Amount,
			&b.CreatedAt,
			&b.UpdatedAt,
			&b.StudentName,
			&b.TourTitle,
			&b.ParentName,
		)
		if err != nil {
			br.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		br.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate bookings rows: %w", err)
	}

	return bookings, nil
}

func (br *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET student_id = $2, tour_id = $3, booking_date = $4,
		    status = $5, amount = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := br.db.Exec(ctx, query,
		booking.ID,
		booking.StudentID,
		booking.TourID,
		booking.BookingDate,
		booking.Status,
		booking.Amount,
		booking.UpdatedAt,
	)

	if err != nil {
		br.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (br *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := br.db.Exec(ctx, query, id)
	if err != nil {
		br.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	br.log.Info("Booking deleted", zap.String("id", id.String()))
	return nil
}
