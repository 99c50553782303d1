package main

import (
	"context"
	"log"
	"os"
	"time"

	"qa-live-be/internal/entity"
	"qa-live-be/internal/repository/unitofwork"
	"qa-live-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds a demo QA session with a few questions and answers, so the thread
// endpoint has something to show against a fresh database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	color.Cyan("Seeding demo QA session...")

	if err := uow.Begin(ctx); err != nil {
		log.Fatal("Error: Failed to begin transaction:", err)
	}
	defer uow.Rollback()

	host := &entity.User{Id: uuid.New(), Name: "Demo Host", IsHost: true, CreatedAt: time.Now()}
	asker := &entity.User{Id: uuid.New(), Name: "Curious Carol", IsHost: false, CreatedAt: time.Now()}
	if err := uow.UserRepository().Create(ctx, host); err != nil {
		color.Red("Failed to create host: %v", err)
		return
	}
	if err := uow.UserRepository().Create(ctx, asker); err != nil {
		color.Red("Failed to create asker: %v", err)
		return
	}

	qa := &entity.QA{
		Id:        uuid.New(),
		HostId:    host.Id,
		Name:      "Demo QA Session",
		StartDate: time.Now(),
		EndDate:   time.Now().Add(2 * time.Hour),
		CreatedAt: time.Now(),
	}
	if err := uow.QARepository().Create(ctx, qa); err != nil {
		color.Red("Failed to create QA: %v", err)
		return
	}

	questions := []string{
		"What inspired this project?",
		"Is there a roadmap for the next release?",
		"How can we contribute?",
	}
	var firstQuestion *entity.Question
	for i, text := range questions {
		q := &entity.Question{
			Id:          uuid.New(),
			QaId:        qa.Id,
			UserId:      asker.Id,
			Text:        text,
			DateCreated: time.Now().Add(time.Duration(i) * time.Second),
		}
		if err := uow.QuestionRepository().Create(ctx, q); err != nil {
			color.Red("Failed to create question: %v", err)
			return
		}
		if firstQuestion == nil {
			firstQuestion = q
		}
	}

	answerText := "Great question! It started as a weekend experiment."
	answer := &entity.Answer{
		Id:              uuid.New(),
		QuestionId:      firstQuestion.Id,
		AnsweringUserId: host.Id,
		Text:            &answerText,
		DateCreated:     time.Now(),
	}
	if err := uow.AnswerRepository().Create(ctx, answer); err != nil {
		color.Red("Failed to create answer: %v", err)
		return
	}

	if err := uow.Commit(); err != nil {
		color.Red("Failed to commit seed data: %v", err)
		return
	}

	color.Green("Seed complete.")
	color.Yellow("QA id: %s", qa.Id)
}
