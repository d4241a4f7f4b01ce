package usecase

import (
	"context"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository/repotest"
	"tour-booking/internal/domain"
	"tour-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStudentCRUD(t *testing.T) {
	repo := repotest.NewRepository()
	svc := NewStudentService(repo.Student, zap.NewNop())

	var id uuid.UUID

	t.Run("create", func(t *testing.T) {
		student, err := svc.Create(context.Background(), &request.StudentRequest{
			Name:   "Agus",
			Age:    10,
			Class:  "4A",
			Gender: "M",
		})
		require.NoError(t, err)
		assert.Equal(t, "Agus", student.Name)
		assert.Equal(t, entity.GenderMale, student.Gender)

		id = uuid.MustParse(student.ID)
	})

	t.Run("create rejects a bad gender", func(t *testing.T) {
		_, err := svc.Create(context.Background(), &request.StudentRequest{
			Name:   "Rina",
			Age:    9,
			Class:  "3B",
			Gender: "X",
		})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("get", func(t *testing.T) {
		student, err := svc.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Agus", student.Name)
	})

	t.Run("list", func(t *testing.T) {
		students, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, students, 1)
	})

	t.Run("replace overwrites every field", func(t *testing.T) {
		student, err := svc.Replace(context.Background(), id, &request.StudentRequest{
			Name:   "Agus Jr",
			Age:    11,
			Class:  "5A",
			Gender: "M",
		})
		require.NoError(t, err)
		assert.Equal(t, "Agus Jr", student.Name)
		assert.Equal(t, 11, student.Age)
		assert.Equal(t, "5A", student.Class)
	})

	t.Run("patch merges only the present fields", func(t *testing.T) {
		age := 12
		student, err := svc.Patch(context.Background(), id, &request.StudentPatch{Age: &age})
		require.NoError(t, err)
		assert.Equal(t, 12, student.Age)
		assert.Equal(t, "Agus Jr", student.Name)
		assert.Equal(t, "5A", student.Class)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(context.Background(), id))

		_, err := svc.Get(context.Background(), id)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("missing ids are not found", func(t *testing.T) {
		missing := uuid.New()

		_, err := svc.Get(context.Background(), missing)
		assert.True(t, domain.IsNotFound(err))

		_, err = svc.Replace(context.Background(), missing, &request.StudentRequest{
			Name: "Ghost", Age: 10, Class: "4A", Gender: "F",
		})
		assert.True(t, domain.IsNotFound(err))

		err = svc.Delete(context.Background(), missing)
		assert.True(t, domain.IsNotFound(err))
	})
}
