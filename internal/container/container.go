package container

import (
	"context"
	"log"
	"os"

	"github.com/mlefevre/quizzlab/internal/aiquiz"
	"github.com/mlefevre/quizzlab/internal/auth"
	"github.com/mlefevre/quizzlab/internal/config"
	"github.com/mlefevre/quizzlab/internal/trivia"
	"github.com/mlefevre/quizzlab/internal/user"
)

type Container struct {
	UserContainer   *user.UserContainer
	TriviaContainer *trivia.TriviaContainer
	AIQuizContainer *aiquiz.AIQuizContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	ctx := context.Background()
	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.Migrate(config.DB); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	triviaContainer := trivia.NewTriviaContainer(config.DB)

	aiQuizContainer, err := aiquiz.NewAIQuizContainer(ctx)
	if err != nil {
		log.Fatalf("failed to init AI provider: %v", err)
	}

	return &Container{
		UserContainer:   userContainer,
		TriviaContainer: triviaContainer,
		AIQuizContainer: aiQuizContainer,
	}
}
