// Package course содержит доменную модель курса: состав (roster),
// журнал оценок и рассылку уведомлений записанным студентам.
package course

import (
	"github.com/academy-hub/academy-record-keeper/internal/domain/grading"
	"github.com/academy-hub/academy-record-keeper/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ROSTER
// Состав курса: кто записан и какие оценки получил.
// ══════════════════════════════════════════════════════════════════════════════

// RosterEntry - запись состава: студент и упорядоченная последовательность
// его оценок. Оценки только добавляются, редактирование и удаление
// не предусмотрены.
type RosterEntry struct {
	// StudentID - ID записанного студента.
	StudentID string

	// grades - последовательность оценок в порядке выставления.
	grades []grading.Entry
}

// Grades возвращает копию последовательности оценок.
func (e *RosterEntry) Grades() []grading.Entry {
	grades := make([]grading.Entry, len(e.grades))
	copy(grades, e.grades)
	return grades
}

// GradeCount возвращает количество выставленных оценок.
func (e *RosterEntry) GradeCount() int {
	return len(e.grades)
}

// Roster - состав курса. Инвариант: не более одной записи на студента.
type Roster struct {
	// entries - записи в порядке зачисления.
	entries []*RosterEntry

	// index - записи по ID студента для быстрого поиска.
	index map[string]*RosterEntry
}

// NewRoster создаёт пустой состав.
func NewRoster() *Roster {
	return &Roster{
		entries: make([]*RosterEntry, 0),
		index:   make(map[string]*RosterEntry),
	}
}

// Enroll добавляет пустую запись для студента.
// Повторное зачисление - явная ошибка, а не тихий no-op: исходное
// поведение с молчаливым поглощением признано скрытым дефектом.
func (r *Roster) Enroll(studentID string) error {
	if studentID == "" {
		return shared.NewDomainError("roster", "Enroll", shared.ErrInvalidID, "student id is required")
	}

	if _, ok := r.index[studentID]; ok {
		return shared.ErrAlreadyEnrolled
	}

	entry := &RosterEntry{
		StudentID: studentID,
		grades:    make([]grading.Entry, 0),
	}
	r.entries = append(r.entries, entry)
	r.index[studentID] = entry

	return nil
}

// AddGrade добавляет оценку в запись студента.
// Требует, чтобы студент уже был зачислен: выставление оценки
// незачисленному студенту - явная ошибка shared.ErrNotEnrolled.
func (r *Roster) AddGrade(studentID string, entry grading.Entry) error {
	if !entry.IsValid() {
		return shared.WrapError("roster", "AddGrade", shared.ErrNegativeValue, "invalid grade entry", grading.ErrNegativeWeight)
	}

	rec, ok := r.index[studentID]
	if !ok {
		return shared.ErrNotEnrolled
	}

	rec.grades = append(rec.grades, entry)
	return nil
}

// FinalGrade вычисляет итоговую оценку студента по указанной политике.
// Для незачисленного студента возвращает shared.ErrNotEnrolled;
// для зачисленного без оценок итог равен 0 - это политика агрегации,
// а не ошибка.
func (r *Roster) FinalGrade(studentID string, policy grading.Policy) (float64, error) {
	rec, ok := r.index[studentID]
	if !ok {
		return 0, shared.ErrNotEnrolled
	}

	return policy.Aggregate(rec.grades), nil
}

// IsEnrolled проверяет, есть ли у студента запись в составе.
func (r *Roster) IsEnrolled(studentID string) bool {
	_, ok := r.index[studentID]
	return ok
}

// StudentIDs возвращает ID зачисленных студентов в порядке зачисления.
func (r *Roster) StudentIDs() []string {
	ids := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		ids = append(ids, e.StudentID)
	}
	return ids
}

// Entry возвращает запись студента.
// Возвращает shared.ErrNotEnrolled, если записи нет.
func (r *Roster) Entry(studentID string) (*RosterEntry, error) {
	rec, ok := r.index[studentID]
	if !ok {
		return nil, shared.ErrNotEnrolled
	}
	return rec, nil
}

// Size возвращает количество зачисленных студентов.
func (r *Roster) Size() int {
	return len(r.entries)
}
