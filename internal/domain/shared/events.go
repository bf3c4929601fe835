package shared

import (
	"time"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types. Each event represents something significant
// that happened in the record keeper.
const (
	// Directory events
	EventUserRegistered EventType = "user.registered"

	// Course events
	EventCourseCreated            EventType = "course.created"
	EventStudentEnrolled          EventType = "course.student_enrolled"
	EventGradeRecorded            EventType = "course.grade_recorded"
	EventCourseDescriptionUpdated EventType = "course.description_updated"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string

	// Payload returns the event data as a map for serialization.
	Payload() map[string]interface{}
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	Type        EventType `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	AggregateId string    `json:"aggregate_id"`
	Version     int       `json:"version"`
}

// EventType implements Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID implements Event interface.
func (e BaseEvent) AggregateID() string {
	return e.AggregateId
}

// NewBaseEvent creates a new base event.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		Type:        eventType,
		Timestamp:   time.Now(),
		AggregateId: aggregateID,
		Version:     1,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Directory Events
// ═══════════════════════════════════════════════════════════════════════════

// UserRegisteredEvent is emitted when a new user registers in the directory.
type UserRegisteredEvent struct {
	BaseEvent
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Payload implements Event interface.
func (e UserRegisteredEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"username": e.Username,
		"name":     e.Name,
		"role":     e.Role,
	}
}

// NewUserRegisteredEvent creates a new UserRegisteredEvent.
func NewUserRegisteredEvent(userID, username, name, role string) UserRegisteredEvent {
	return UserRegisteredEvent{
		BaseEvent: NewBaseEvent(EventUserRegistered, userID),
		Username:  username,
		Name:      name,
		Role:      role,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Course Events
// ═══════════════════════════════════════════════════════════════════════════

// CourseCreatedEvent is emitted when a course is created.
type CourseCreatedEvent struct {
	BaseEvent
	CourseName string `json:"course_name"`
	TeacherID  string `json:"teacher_id"`
}

// Payload implements Event interface.
func (e CourseCreatedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"course_name": e.CourseName,
		"teacher_id":  e.TeacherID,
	}
}

// NewCourseCreatedEvent creates a new CourseCreatedEvent.
func NewCourseCreatedEvent(courseID, courseName, teacherID string) CourseCreatedEvent {
	return CourseCreatedEvent{
		BaseEvent:  NewBaseEvent(EventCourseCreated, courseID),
		CourseName: courseName,
		TeacherID:  teacherID,
	}
}

// StudentEnrolledEvent is emitted when a student is enrolled in a course.
type StudentEnrolledEvent struct {
	BaseEvent
	CourseName string `json:"course_name"`
	StudentID  string `json:"student_id"`
	Username   string `json:"username"`
}

// Payload implements Event interface.
func (e StudentEnrolledEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"course_name": e.CourseName,
		"student_id":  e.StudentID,
		"username":    e.Username,
	}
}

// NewStudentEnrolledEvent creates a new StudentEnrolledEvent.
func NewStudentEnrolledEvent(courseID, courseName, studentID, username string) StudentEnrolledEvent {
	return StudentEnrolledEvent{
		BaseEvent:  NewBaseEvent(EventStudentEnrolled, courseID),
		CourseName: courseName,
		StudentID:  studentID,
		Username:   username,
	}
}

// GradeRecordedEvent is emitted when a grade is recorded for a student.
type GradeRecordedEvent struct {
	BaseEvent
	StudentID string  `json:"student_id"`
	Grade     float64 `json:"grade"`
	Weight    float64 `json:"weight"`
}

// Payload implements Event interface.
func (e GradeRecordedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"student_id": e.StudentID,
		"grade":      e.Grade,
		"weight":     e.Weight,
	}
}

// NewGradeRecordedEvent creates a new GradeRecordedEvent.
func NewGradeRecordedEvent(courseID, studentID string, grade, weight float64) GradeRecordedEvent {
	return GradeRecordedEvent{
		BaseEvent: NewBaseEvent(EventGradeRecorded, courseID),
		StudentID: studentID,
		Grade:     grade,
		Weight:    weight,
	}
}

// CourseDescriptionUpdatedEvent is emitted when a course description changes.
type CourseDescriptionUpdatedEvent struct {
	BaseEvent
	CourseName  string `json:"course_name"`
	Description string `json:"description"`
	Subscribers int    `json:"subscribers"`
}

// Payload implements Event interface.
func (e CourseDescriptionUpdatedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"course_name": e.CourseName,
		"description": e.Description,
		"subscribers": e.Subscribers,
	}
}

// NewCourseDescriptionUpdatedEvent creates a new CourseDescriptionUpdatedEvent.
func NewCourseDescriptionUpdatedEvent(courseID, courseName, description string, subscribers int) CourseDescriptionUpdatedEvent {
	return CourseDescriptionUpdatedEvent{
		BaseEvent:   NewBaseEvent(EventCourseDescriptionUpdated, courseID),
		CourseName:  courseName,
		Description: description,
		Subscribers: subscribers,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Event Bus Interfaces
// ═══════════════════════════════════════════════════════════════════════════

// EventHandler is a function that handles an event.
type EventHandler func(event Event) error

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	// Publish sends an event to subscribers.
	Publish(event Event) error
}

// EventSubscriber defines the interface for subscribing to events.
type EventSubscriber interface {
	// Subscribe registers a handler for an event type.
	Subscribe(eventType EventType, handler EventHandler) error

	// SubscribeAll registers a handler for all events.
	SubscribeAll(handler EventHandler) error
}

// EventBus combines publishing and subscribing.
type EventBus interface {
	EventPublisher
	EventSubscriber
}
