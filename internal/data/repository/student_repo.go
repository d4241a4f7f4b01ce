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

type StudentRepository interface {
	Create(ctx context.Context, student *entity.Student) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	FindAll(ctx context.Context) ([]*entity.Student, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, student *entity.Student) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type studentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStudentRepository(db database.PgxIface, log *zap.Logger) StudentRepository {
	return &studentRepository{
		db:  db,
		log: log.With(zap.String("repository", "student")),
	}
}

func (sr *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	query := `
		INSERT INTO students (id, name, age, class, gender, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := sr.db.Exec(ctx, query,
		student.ID,
		student.Name,
		student.Age,
		student.Class,
		student.Gender,
		student.CreatedAt,
		student.UpdatedAt,
	)

	if err != nil {
		sr.log.Error("Failed to create student",
			zap.Error(err),
			zap.String("name", student.Name),
		)
		return fmt.Errorf("create student %s: %w", student.Name, err)
	}

	return nil
}

func (sr *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	query := `
		SELECT id, name, age, class, gender, created_at, updated_at
		FROM students
		WHERE id = $1
	`

	var student entity.Student
	err := sr.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Age,
		&student.Class,
		&student.Gender,
		&student.CreatedAt,
		&student.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find student by ID",
			zap.Error(err),
			zap.String("student_id", id.String()),
		)
		return nil, fmt.Errorf("find student by ID %s: %w", id.String(), err)
	}

	return &student, nil
}

func (sr *studentRepository) FindAll(ctx context.Context) ([]*entity.Student, error) {
	query := `
		SELECT id, name, age, class, gender, created_at, updated_at
		FROM students
		ORDER BY created_at DESC
	`

	rows, err := sr.db.Query(ctx, query)
	if err != nil {
		sr.log.Error("Failed to get all students", zap.Error(err))
		return nil, fmt.Errorf("find all students: %w", err)
	}
	defer rows.Close()

	var students []*entity.Student
	for rows.Next() {
		var student entity.Student
		err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Age,
			&student.Class,
			&student.Gender,
			&student.CreatedAt,
			&student.UpdatedAt,
		)
		if err != nil {
			sr.log.Error("Failed to scan student row", zap.Error(err))
			return nil, fmt.Errorf("scan student row: %w", err)
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate students rows: %w", err)
	}

	return students, nil
}

func (sr *studentRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM students`

	var count int64
	err := sr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		sr.log.Error("Database error counting students", zap.Error(err))
		return 0, fmt.Errorf("count all students: %w", err)
	}

	return count, nil
}

func (sr *studentRepository) Update(ctx context.Context, student *entity.Student) error {
	query := `
		UPDATE students
		SET name = $2, age = $3, class = $4, gender = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := sr.db.Exec(ctx, query,
		student.ID,
		student.Name,
		student.Age,
		student.Class,
		student.Gender,
		student.UpdatedAt,
	)

	if err != nil {
		sr.log.Error("Failed to update student",
			zap.Error(err),
			zap.String("student_id", student.ID.String()),
		)
		return fmt.Errorf("update student %s: %w", student.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("student %s not found", student.ID.String())
	}

	return nil
}

// Delete removes the row; dependent bookings and payments cascade in the DB.
func (sr *studentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM students WHERE id = $1`

	result, err := sr.db.Exec(ctx, query, id)
	if err != nil {
		sr.log.Error("Failed to delete student",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete student %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("student %s not found", id.String())
	}

	sr.log.Info("Student deleted", zap.String("id", id.String()))
	return nil
}
