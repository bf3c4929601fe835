package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/academy-hub/academy-record-keeper/internal/domain/course"
	"github.com/academy-hub/academy-record-keeper/internal/domain/shared"
)

func newCourse(t *testing.T, id, name, teacherID string) *course.Course {
	t.Helper()

	c, err := course.NewCourse(course.NewCourseParams{
		ID:        id,
		Name:      name,
		TeacherID: teacherID,
	})
	assert.NoError(t, err)
	return c
}

func TestCourseRepository_Create(t *testing.T) {
	repo := NewCourseRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, newCourse(t, "c-1", "Algebra", "t-1")))

	found, err := repo.GetByID(ctx, "c-1")
	assert.NoError(t, err)
	assert.Equal(t, "Algebra", found.Name)
}

func TestCourseRepository_Create_DuplicateID(t *testing.T) {
	repo := NewCourseRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, newCourse(t, "c-1", "Algebra", "t-1")))

	err := repo.Create(ctx, newCourse(t, "c-1", "Geometry", "t-2"))

	assert.True(t, shared.IsAlreadyExists(err))

	count, countErr := repo.Count(ctx)
	assert.NoError(t, countErr)
	assert.Equal(t, 1, count)
}

func TestCourseRepository_GetByID_NotFound(t *testing.T) {
	repo := NewCourseRepository()

	_, err := repo.GetByID(context.Background(), "ghost")

	assert.ErrorIs(t, err, shared.ErrCourseNotFound)
}

func TestCourseRepository_GetAll_CreationOrder(t *testing.T) {
	repo := NewCourseRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, newCourse(t, "c-2", "Geometry", "t-1")))
	assert.NoError(t, repo.Create(ctx, newCourse(t, "c-1", "Algebra", "t-1")))
	assert.NoError(t, repo.Create(ctx, newCourse(t, "c-3", "Calculus", "t-2")))

	courses, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, courses, 3)
	assert.Equal(t, "c-2", courses[0].ID)
	assert.Equal(t, "c-1", courses[1].ID)
	assert.Equal(t, "c-3", courses[2].ID)
}
