package main

import (
	"log"

	api "studyplan-backend/cmd/api"
	calUsecase "studyplan-backend/internal/calendar/usecase"
	prefsdomain "studyplan-backend/internal/preferences/domain"
	prefsRepo "studyplan-backend/internal/preferences/repository"
	prefsUsecase "studyplan-backend/internal/preferences/usecase"
	subjectdomain "studyplan-backend/internal/subject/domain"
	subjectRepo "studyplan-backend/internal/subject/repository"
	subjectUsecase "studyplan-backend/internal/subject/usecase"
	taskdomain "studyplan-backend/internal/task/domain"
	taskRepo "studyplan-backend/internal/task/repository"
	taskUsecase "studyplan-backend/internal/task/usecase"
	"studyplan-backend/pkg/config"
	"studyplan-backend/pkg/database"
	"studyplan-backend/pkg/gcal"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Select the backing store: GORM when a database is configured,
	// otherwise the volatile in-memory store.
	var (
		tasks    taskRepo.TaskRepository
		subjects subjectRepo.SubjectRepository
		prefs    prefsRepo.PreferencesRepository
	)

	db, err := database.Connect(cfg)
	switch err {
	case nil:
		if err := db.AutoMigrate(&taskdomain.Task{}, &subjectdomain.Subject{}, &prefsdomain.UserPreferences{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		tasks = taskRepo.NewGormTaskRepository(db)
		subjects = subjectRepo.NewGormSubjectRepository(db)
		prefs = prefsRepo.NewGormPreferencesRepository(db)
		log.Printf("Using database-backed store")
	case database.ErrNotConfigured:
		tasks = taskRepo.NewMemoryTaskRepository()
		subjects = subjectRepo.NewMemorySubjectRepository()
		prefs = prefsRepo.NewMemoryPreferencesRepository()
		log.Printf("Using in-memory store (data is process-lifetime only)")
	default:
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Google Calendar service
	gcalService := gcal.NewService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI)

	// Initialize use cases (dependency injection)
	taskUc := taskUsecase.NewTaskUsecase(tasks)
	subjectUc := subjectUsecase.NewSubjectUsecase(subjects)
	prefsUc := prefsUsecase.NewPreferencesUsecase(prefs)
	calUc := calUsecase.NewCalendarUsecase(gcalService, tasks, prefs)

	if cfg.SeedDemoData {
		seedSubjects(subjectUc)
	}

	// Initialize HTTP handler
	handler := api.NewHandler(taskUc, subjectUc, prefsUc, calUc)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// seedSubjects creates a few starter subjects for demos.
func seedSubjects(uc subjectUsecase.SubjectUsecase) {
	seeds := []struct{ name, color string }{
		{"Mathematics", "#ef4444"},
		{"Physics", "#3b82f6"},
		{"Chemistry", "#10b981"},
		{"Literature", "#8b5cf6"},
	}
	for _, s := range seeds {
		if _, err := uc.CreateSubject(s.name, s.color); err != nil {
			log.Printf("[WARN] failed to seed subject %s: %v", s.name, err)
		}
	}
}
