package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mlefevre/quizzlab/internal/aiquiz"
	"github.com/mlefevre/quizzlab/internal/middlewares"
	"github.com/mlefevre/quizzlab/internal/trivia"
	"github.com/mlefevre/quizzlab/internal/user"
)

type RouterConfig struct {
	UserHandler   *user.Handler
	TriviaHandler *trivia.Handler
	AIQuizHandler *aiquiz.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CORS)

	r.Mount("/user", user.Routes(cfg.UserHandler))
	r.Mount("/quizz/generate-ai", aiquiz.Routes(cfg.AIQuizHandler))
	r.Mount("/quizz", trivia.Routes(cfg.TriviaHandler))

	return r
}
