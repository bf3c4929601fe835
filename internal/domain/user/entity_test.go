package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/academy-hub/academy-record-keeper/internal/domain/shared"
)

func validParams() NewUserParams {
	return NewUserParams{
		ID:       "u-1",
		Name:     "Alice Smith",
		Username: "alice",
		Password: "secret",
		Role:     RoleStudent,
	}
}

func TestNewUser_Valid(t *testing.T) {
	u, err := NewUser(validParams())

	assert.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, Username("alice"), u.Username)
	assert.Equal(t, RoleStudent, u.Role)
	assert.Equal(t, 0, u.EnrolledCourseCount())
	assert.False(t, u.CreatedAt.IsZero())
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*NewUserParams)
		wantErr error
	}{
		{"empty username", func(p *NewUserParams) { p.Username = "" }, ErrInvalidUsername},
		{"single char username", func(p *NewUserParams) { p.Username = "a" }, ErrInvalidUsername},
		{"username with space", func(p *NewUserParams) { p.Username = "al ice" }, ErrInvalidUsername},
		{"too long username", func(p *NewUserParams) { p.Username = Username(strings.Repeat("x", 51)) }, ErrInvalidUsername},
		{"empty password", func(p *NewUserParams) { p.Password = "" }, ErrInvalidPassword},
		{"empty name", func(p *NewUserParams) { p.Name = "  " }, ErrInvalidName},
		{"unknown role", func(p *NewUserParams) { p.Role = "janitor" }, ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			tt.mutate(&params)

			_, err := NewUser(params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRole_Capabilities(t *testing.T) {
	assert.True(t, RoleStudent.CanEnroll())
	assert.False(t, RoleTeacher.CanEnroll())
	assert.False(t, RoleAdministrator.CanEnroll())

	assert.True(t, RoleTeacher.CanTeach())
	assert.False(t, RoleStudent.CanTeach())

	assert.True(t, RoleAdministrator.CanViewAllUsers())
	assert.False(t, RoleTeacher.CanViewAllUsers())
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole(" Teacher ")
	assert.NoError(t, err)
	assert.Equal(t, RoleTeacher, role)

	_, err = ParseRole("principal")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUser_Authenticate(t *testing.T) {
	u, err := NewUser(validParams())
	assert.NoError(t, err)

	assert.True(t, u.Authenticate("alice", "secret"))

	// Любое посимвольное отклонение в любой из частей пары - отказ.
	assert.False(t, u.Authenticate("Alice", "secret"))
	assert.False(t, u.Authenticate("alice", "Secret"))
	assert.False(t, u.Authenticate("alice", "secret "))
	assert.False(t, u.Authenticate("alic", "secret"))
	assert.False(t, u.Authenticate("alice", ""))
}

func TestUser_LinkCourse(t *testing.T) {
	u, err := NewUser(validParams())
	assert.NoError(t, err)

	assert.NoError(t, u.LinkCourse("c-1"))
	assert.NoError(t, u.LinkCourse("c-2"))

	assert.ErrorIs(t, u.LinkCourse("c-1"), ErrCourseAlreadyLinked)

	assert.True(t, u.IsEnrolledIn("c-1"))
	assert.False(t, u.IsEnrolledIn("c-3"))
	assert.Equal(t, []string{"c-1", "c-2"}, u.EnrolledCourseIDs())
}

func TestUser_LinkCourse_NotAStudent(t *testing.T) {
	params := validParams()
	params.Role = RoleTeacher

	u, err := NewUser(params)
	assert.NoError(t, err)

	// Та же ошибка, что у курса при зачислении не-студента.
	assert.ErrorIs(t, u.LinkCourse("c-1"), shared.ErrNotAStudent)
	assert.Equal(t, 0, u.EnrolledCourseCount())
}

func TestUser_StringOmitsPassword(t *testing.T) {
	u, err := NewUser(validParams())
	assert.NoError(t, err)

	assert.NotContains(t, u.String(), "secret")
}

func TestUser_Clone(t *testing.T) {
	u, err := NewUser(validParams())
	assert.NoError(t, err)
	assert.NoError(t, u.LinkCourse("c-1"))

	clone := u.Clone()
	assert.NoError(t, clone.LinkCourse("c-2"))

	assert.Equal(t, 1, u.EnrolledCourseCount())
	assert.Equal(t, 2, clone.EnrolledCourseCount())
}
