// Package grading содержит записи об оценках и политику агрегации
// итоговой оценки. Вычисления чистые, без состояния и побочных эффектов -
// политику можно разделять между курсами и вызывать конкурентно
// без синхронизации.
package grading

import (
	"errors"
	"strings"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Entry представляет одну запись об оценке: значение и вес.
type Entry struct {
	// Grade - значение оценки.
	Grade float64

	// Weight - неотрицательный вес оценки в итоговой агрегации.
	Weight float64
}

// IsValid проверяет, что вес неотрицательный.
func (e Entry) IsValid() bool {
	return e.Weight >= 0
}

// DefaultWeight - вес оценки, если он не указан явно.
const DefaultWeight = 1.0

// NewEntry создаёт запись об оценке с валидацией веса.
func NewEntry(grade, weight float64) (Entry, error) {
	e := Entry{Grade: grade, Weight: weight}
	if !e.IsValid() {
		return Entry{}, ErrNegativeWeight
	}
	return e, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// AGGREGATION POLICY
// Набор политик закрытый, диспетчеризация через switch - динамическая
// диспетчеризация для фиксированного набора вариантов не нужна.
// ══════════════════════════════════════════════════════════════════════════════

// Policy определяет способ агрегации записей об оценках в итоговую оценку.
type Policy string

const (
	// PolicyUnweightedMean - среднее арифметическое значений, вес игнорируется.
	PolicyUnweightedMean Policy = "unweighted_mean"

	// PolicyWeightedMean - взвешенное среднее: sum(grade*weight) / sum(weight).
	PolicyWeightedMean Policy = "weighted_mean"
)

// DefaultPolicy - политика по умолчанию для нового курса.
const DefaultPolicy = PolicyUnweightedMean

// IsValid проверяет, что политика корректна.
func (p Policy) IsValid() bool {
	switch p {
	case PolicyUnweightedMean, PolicyWeightedMean:
		return true
	default:
		return false
	}
}

// String возвращает строковое представление политики.
func (p Policy) String() string {
	return string(p)
}

// ParsePolicy разбирает строку в Policy.
func ParsePolicy(s string) (Policy, error) {
	policy := Policy(strings.ToLower(strings.TrimSpace(s)))
	if !policy.IsValid() {
		return "", ErrUnknownPolicy
	}
	return policy, nil
}

// Aggregate вычисляет итоговую оценку по записям.
// Для пустой последовательности обе политики возвращают 0 - это явная
// политика отображения "0.00" для ещё не оценённого студента, а не ошибка.
// Взвешенное среднее также возвращает 0 при нулевой сумме весов,
// чтобы исключить деление на ноль.
func (p Policy) Aggregate(entries []Entry) float64 {
	switch p {
	case PolicyWeightedMean:
		return weightedMean(entries)
	default:
		return unweightedMean(entries)
	}
}

// unweightedMean - среднее арифметическое значений оценок.
func unweightedMean(entries []Entry) float64 {
	if len(entries) == 0 {
		return 0
	}

	var sum float64
	for _, e := range entries {
		sum += e.Grade
	}
	return sum / float64(len(entries))
}

// weightedMean - взвешенное среднее значений оценок.
func weightedMean(entries []Entry) float64 {
	var weightedSum, totalWeight float64
	for _, e := range entries {
		weightedSum += e.Grade * e.Weight
		totalWeight += e.Weight
	}

	if totalWeight == 0 {
		return 0
	}
	return weightedSum / totalWeight
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrNegativeWeight - отрицательный вес оценки.
	ErrNegativeWeight = errors.New("invalid grade entry: weight must be non-negative")

	// ErrUnknownPolicy - неизвестная политика агрегации.
	ErrUnknownPolicy = errors.New("unknown grading policy: must be unweighted_mean or weighted_mean")
)
