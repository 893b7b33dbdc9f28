package trivia

import "gorm.io/gorm"

type TriviaContainer struct {
	Handler *Handler
}

func NewTriviaContainer(db *gorm.DB) *TriviaContainer {
	repo := NewRepository(db)
	service := NewService(db, repo)
	handler := NewHandler(service)

	return &TriviaContainer{
		Handler: handler,
	}
}
