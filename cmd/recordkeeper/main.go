// Package main - точка входа учебного реестра.
//
// Интерактивного меню здесь нет: консольный драйвер - внешний
// коллаборатор и в ядро не входит. Бинарь собирает все слои,
// прогоняет демонстрационный сценарий через команды и запросы
// и пишет результат в структурированный журнал.
//
// Архитектура следует принципам Clean Architecture и DDD:
// - Domain: чистая бизнес-логика без внешних зависимостей
// - Application: оркестрация use cases (Commands/Queries)
// - Infrastructure: реестры в памяти, шина событий
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	// Application layer
	"github.com/academy-hub/academy-record-keeper/internal/application/command"
	"github.com/academy-hub/academy-record-keeper/internal/application/eventhandler"
	"github.com/academy-hub/academy-record-keeper/internal/application/query"

	// Infrastructure layer
	"github.com/academy-hub/academy-record-keeper/internal/infrastructure/messaging"
	"github.com/academy-hub/academy-record-keeper/internal/infrastructure/persistence/memory"

	// Packages
	"github.com/academy-hub/academy-record-keeper/config"
	"github.com/academy-hub/academy-record-keeper/pkg/logger"
)

func main() {
	// .env удобен в разработке; в остальных окружениях его может не быть.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	level := logger.ParseLevel(cfg.Logging.Level)
	if cfg.App.Debug {
		level = logger.LevelDebug
	}
	log := logger.New(os.Stdout, level).With(
		logger.String("app", cfg.App.Name),
		logger.String("env", string(cfg.App.Environment)),
	)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("record keeper failed", logger.Err(err))
		os.Exit(1)
	}
}

// run собирает слои и прогоняет демонстрационный сценарий.
func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	// ─────────────────────────────────────────────────────────────────────────
	// Infrastructure
	// ─────────────────────────────────────────────────────────────────────────

	bus := messaging.NewInMemoryEventBus(messaging.Config{
		AsyncMode:      cfg.Messaging.AsyncEvents,
		WorkerPoolSize: cfg.Messaging.WorkerPoolSize,
	})
	defer bus.Close()

	users := memory.NewUserRepository()
	courses := memory.NewCourseRepository()

	audit := eventhandler.NewAuditLogHandler(log)
	if err := audit.Register(bus); err != nil {
		return err
	}

	// ─────────────────────────────────────────────────────────────────────────
	// Application
	// ─────────────────────────────────────────────────────────────────────────

	registerUser := command.NewRegisterUserHandler(users, bus)
	createCourse := command.NewCreateCourseHandler(courses, bus, cfg.Grading.DefaultPolicy)
	enrollStudent := command.NewEnrollStudentHandler(courses, users, bus)
	recordGrade := command.NewRecordGradeHandler(courses, bus)
	authenticate := query.NewAuthenticateHandler(users)
	finalGrade := query.NewGetFinalGradeHandler(courses)

	// ─────────────────────────────────────────────────────────────────────────
	// Демонстрационный сценарий: преподаватель, курс, студент, две оценки.
	// ─────────────────────────────────────────────────────────────────────────

	teacher, err := registerUser.Handle(ctx, command.RegisterUserCommand{
		Role:     "teacher",
		Name:     "Ana",
		Username: "ana",
		Password: "pw",
	})
	if err != nil {
		return err
	}

	student, err := registerUser.Handle(ctx, command.RegisterUserCommand{
		Role:     "student",
		Name:     "Bob",
		Username: "bob",
		Password: "pw",
	})
	if err != nil {
		return err
	}

	algebra, err := createCourse.Handle(ctx, command.CreateCourseCommand{
		Name:        "Algebra",
		Description: "Linear equations and matrices",
		TeacherID:   teacher.User.ID,
	})
	if err != nil {
		return err
	}

	authn, err := authenticate.Handle(ctx, query.AuthenticateQuery{Username: "bob", Password: "pw"})
	if err != nil {
		return err
	}
	log.Info("student authenticated",
		logger.Operation("Authenticate"),
		logger.UserID(authn.User.ID),
		logger.Username(authn.User.Username.String()),
	)

	if _, err := enrollStudent.Handle(ctx, command.EnrollStudentCommand{
		CourseID:  algebra.Course.ID,
		StudentID: student.User.ID,
	}); err != nil {
		return err
	}

	for _, grade := range []float64{80, 100} {
		if _, err := recordGrade.Handle(ctx, command.RecordGradeCommand{
			CourseID:  algebra.Course.ID,
			StudentID: student.User.ID,
			Grade:     grade,
		}); err != nil {
			return err
		}
	}

	final, err := finalGrade.Handle(ctx, query.GetFinalGradeQuery{
		CourseID:  algebra.Course.ID,
		StudentID: student.User.ID,
	})
	if err != nil {
		return err
	}

	log.Info("final grade computed",
		logger.CourseID(final.CourseID),
		logger.CourseName(final.CourseName),
		logger.UserID(student.User.ID),
		logger.Username(student.User.Username.String()),
		logger.Grade(final.FinalGrade),
		logger.PolicyName(final.Policy),
	)

	log.Info("record keeper finished",
		logger.Int("events_published", int(bus.Metrics().PublishedTotal())),
	)

	return nil
}
