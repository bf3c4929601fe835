// Package user содержит доменную модель пользователя учебного реестра.
// Это ядро бизнес-логики - здесь нет внешних зависимостей.
package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/academy-hub/academy-record-keeper/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Username представляет уникальное имя учётной записи.
// Сравнение всегда точное, с учётом регистра.
type Username string

// IsValid проверяет корректность имени учётной записи.
func (u Username) IsValid() bool {
	s := string(u)
	return len(s) >= 2 && len(s) <= 50 && !strings.ContainsAny(s, " \t\n\r")
}

// String возвращает строковое представление имени учётной записи.
func (u Username) String() string {
	return string(u)
}

// Password представляет пароль как непрозрачную строку.
// Проверка подлинности - это точное сравнение, не криптографическая операция.
type Password string

// IsValid проверяет, что пароль не пустой.
func (p Password) IsValid() bool {
	return len(p) > 0
}

// Matches выполняет точное посимвольное сравнение.
func (p Password) Matches(other Password) bool {
	return p == other
}

// ══════════════════════════════════════════════════════════════════════════════
// ENUMS
// ══════════════════════════════════════════════════════════════════════════════

// Role определяет роль пользователя в системе.
// Набор ролей закрытый: роль задаёт набор возможностей, а не иерархию типов.
type Role string

const (
	// RoleStudent - студент: записывается на курсы и получает оценки.
	RoleStudent Role = "student"
	// RoleTeacher - преподаватель: владеет курсами и выставляет оценки.
	RoleTeacher Role = "teacher"
	// RoleAdministrator - администратор: читает полный список пользователей.
	RoleAdministrator Role = "administrator"
)

// IsValid проверяет, что роль корректна.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdministrator:
		return true
	default:
		return false
	}
}

// CanEnroll возвращает true, если пользователь может записываться на курсы.
func (r Role) CanEnroll() bool {
	return r == RoleStudent
}

// CanTeach возвращает true, если пользователь может владеть курсами.
func (r Role) CanTeach() bool {
	return r == RoleTeacher
}

// CanViewAllUsers возвращает true, если пользователю доступен полный список пользователей.
func (r Role) CanViewAllUsers() bool {
	return r == RoleAdministrator
}

// String возвращает строковое представление роли.
func (r Role) String() string {
	return string(r)
}

// ParseRole разбирает строку в Role.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: USER
// ══════════════════════════════════════════════════════════════════════════════

// User - учётная запись в реестре: студент, преподаватель или администратор.
// Роль - закрытый вариант, дополнительное состояние есть только у студента
// (упорядоченный набор обратных ссылок на курсы, куда он записан).
type User struct {
	// ID - внутренний уникальный идентификатор (UUID в строковом формате).
	ID string

	// Name - отображаемое имя.
	Name string

	// Username - уникальное имя учётной записи.
	Username Username

	// Password - пароль (точное сравнение).
	Password Password

	// Role - роль пользователя.
	Role Role

	// enrolledCourseIDs - упорядоченный набор ID курсов, куда записан студент.
	// Заполняется только для роли student, всегда через курс (Course.RegisterStudent).
	enrolledCourseIDs []string

	// CreatedAt - время регистрации.
	CreatedAt time.Time

	// UpdatedAt - время последнего обновления.
	UpdatedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrInvalidUsername - невалидное имя учётной записи.
	ErrInvalidUsername = errors.New("invalid username: must be 2-50 chars without whitespace")

	// ErrInvalidPassword - пустой пароль.
	ErrInvalidPassword = errors.New("invalid password: must not be empty")

	// ErrInvalidName - невалидное отображаемое имя.
	ErrInvalidName = errors.New("invalid name: must be 1-100 chars")

	// ErrInvalidRole - неизвестная роль.
	ErrInvalidRole = errors.New("invalid role: must be student, teacher or administrator")

	// ErrCourseAlreadyLinked - курс уже есть в наборе обратных ссылок студента.
	ErrCourseAlreadyLinked = errors.New("course is already linked to this student")
)

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NewUserParams содержит параметры для создания нового пользователя.
type NewUserParams struct {
	ID       string
	Name     string
	Username Username
	Password Password
	Role     Role
}

// NewUser создаёт нового пользователя с валидацией всех полей.
// Уникальность Username обеспечивает реестр, а не фабрика.
func NewUser(params NewUserParams) (*User, error) {
	if params.ID == "" {
		return nil, errors.New("user id is required")
	}

	name := strings.TrimSpace(params.Name)
	if len(name) == 0 || len(name) > 100 {
		return nil, ErrInvalidName
	}

	if !params.Username.IsValid() {
		return nil, ErrInvalidUsername
	}

	if !params.Password.IsValid() {
		return nil, ErrInvalidPassword
	}

	if !params.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	now := time.Now().UTC()

	return &User{
		ID:                params.ID,
		Name:              name,
		Username:          params.Username,
		Password:          params.Password,
		Role:              params.Role,
		enrolledCourseIDs: make([]string, 0),
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS (Business Logic)
// ══════════════════════════════════════════════════════════════════════════════

// Authenticate выполняет точную проверку пары (username, password).
func (u *User) Authenticate(username Username, password Password) bool {
	return u.Username == username && u.Password.Matches(password)
}

// LinkCourse добавляет курс в набор обратных ссылок студента.
// Вызывается только курсом в рамках атомарной операции записи.
// Возвращает shared.ErrNotAStudent - ту же ошибку, что и курс при
// попытке зачислить не-студента.
func (u *User) LinkCourse(courseID string) error {
	if !u.Role.CanEnroll() {
		return shared.ErrNotAStudent
	}

	for _, id := range u.enrolledCourseIDs {
		if id == courseID {
			return ErrCourseAlreadyLinked
		}
	}

	u.enrolledCourseIDs = append(u.enrolledCourseIDs, courseID)
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// IsEnrolledIn проверяет, записан ли студент на курс.
func (u *User) IsEnrolledIn(courseID string) bool {
	for _, id := range u.enrolledCourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}

// EnrolledCourseIDs возвращает копию набора ID курсов студента
// в порядке записи.
func (u *User) EnrolledCourseIDs() []string {
	ids := make([]string, len(u.enrolledCourseIDs))
	copy(ids, u.enrolledCourseIDs)
	return ids
}

// EnrolledCourseCount возвращает количество курсов студента.
func (u *User) EnrolledCourseCount() int {
	return len(u.enrolledCourseIDs)
}

// String возвращает строковое представление пользователя для логирования.
// Пароль намеренно не включается.
func (u *User) String() string {
	return fmt.Sprintf(
		"User{ID: %s, Username: %s, Role: %s, Courses: %d}",
		u.ID, u.Username, u.Role, len(u.enrolledCourseIDs),
	)
}

// Clone создаёт глубокую копию пользователя.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	clone := *u
	clone.enrolledCourseIDs = make([]string, len(u.enrolledCourseIDs))
	copy(clone.enrolledCourseIDs, u.enrolledCourseIDs)
	return &clone
}
