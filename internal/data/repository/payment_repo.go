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

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentDetail, error)
	FindAll(ctx context.Context) ([]*entity.PaymentDetail, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, payment *entity.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

// The parent display name resolves through the optional booking; both
// joins stay LEFT so payments without a booking still come back.
const paymentDetailQuery = `
	SELECT p.id, p.amount, p.method, p.status, p.payment_date,
	       p.student_id, p.booking_id, p.created_at, p.updated_at,
	       s.name AS student_name,
	       CASE WHEN u.id IS NULL THEN NULL
	            ELSE u.first_name || ' ' || u.last_name END AS parent_name
	FROM payments p
	JOIN students s ON s.id = p.student_id
	LEFT JOIN bookings b ON b.id = p.booking_id
	LEFT JOIN users u ON u.id = b.parent_id
`

func (pr *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, amount, method, status, payment_date,
		                     student_id, booking_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := pr.db.Exec(ctx, query,
		payment.ID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.PaymentDate,
		payment.StudentID,
		payment.BookingID,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("student_id", payment.StudentID.String()),
		)
		return fmt.Errorf("create payment for student %s: %w", payment.StudentID.String(), err)
	}

	return nil
}

func (pr *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentDetail, error) {
	query := paymentDetailQuery + ` WHERE p.id = $1`

	var p entity.PaymentDetail
	err := pr.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Amount,
		&p.Method,
		&p.Status,
		&p.PaymentDate,
		&p.StudentID,
		&p.BookingID,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.StudentName,
		&p.ParentName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id.String(), err)
	}

	return &p, nil
}

func (pr *paymentRepository) FindAll(ctx context.Context) ([]*entity.PaymentDetail, error) {
	query := paymentDetailQuery + ` ORDER BY p.payment_date DESC, p.created_at DESC`

	rows, err := pr.db.Query(ctx, query)
	if err != nil {
		pr.log.Error("Failed to get all payments", zap.Error(err))
		return nil, fmt.Errorf("find all payments: %w", err)
	}
	defer rows.Close()

	var payments []*entity.PaymentDetail
	for rows.Next() {
		var p entity.PaymentDetail
		err := rows.Scan(
			&p.ID,
			&p.Amount,
			&p.Method,
			&p.Status,
			&p.PaymentDate,
			&p.StudentID,
			&p.BookingID,
			&p.CreatedAt,
			&p.UpdatedAt,
			&p.StudentName,
			&p.ParentName,
		)
		if err != nil {
			pr.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate payments rows: %w", err)
	}

	return payments, nil
}

func (pr *paymentRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM payments`

	var count int64
	err := pr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		pr.log.Error("Database error counting payments", zap.Error(err))
		return 0, fmt.Errorf("count all payments: %w", err)
	}

	return count, nil
}

func (pr *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	query := `
		UPDATE payments
		SET amount = $2, method = $3, status = $4, payment_date = $5,
		    student_id = $6, booking_id = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := pr.db.Exec(ctx, query,
		payment.ID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.PaymentDate,
		payment.StudentID,
		payment.BookingID,
		payment.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to update payment",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
		)
		return fmt.Errorf("update payment %s: %w", payment.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", payment.ID.String())
	}

	return nil
}

func (pr *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM payments WHERE id = $1`

	result, err := pr.db.Exec(ctx, query, id)
	if err != nil {
		pr.log.Error("Failed to delete payment",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete payment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", id.String())
	}

	pr.log.Info("Payment deleted", zap.String("id", id.String()))
	return nil
}
