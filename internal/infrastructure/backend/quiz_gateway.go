package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	"github.com/rafikey/rafikey-admin/internal/domain/repository"
)

// QuizGateway serves gamification quizzes from the bot backend.
type QuizGateway struct {
	Bot *Client
}

func NewQuizGateway(bot *Client) *QuizGateway { return &QuizGateway{Bot: bot} }

func (g *QuizGateway) List(ctx context.Context, token string) ([]entity.Quiz, error) {
	var out []entity.Quiz
	if err := g.Bot.GetJSON(ctx, "/gamification/quizzes", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *QuizGateway) Questions(ctx context.Context, token string, quizID int64) ([]entity.Question, error) {
	var out []entity.Question
	if err := g.Bot.GetJSON(ctx, quizPath(quizID)+"/questions", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *QuizGateway) Create(ctx context.Context, token string, in entity.NewQuiz) error {
	return g.Bot.SendJSON(ctx, http.MethodPost, "/gamification/admin/quizzes", token, in, nil)
}

func (g *QuizGateway) Delete(ctx context.Context, token string, id int64) error {
	return g.Bot.SendJSON(ctx, http.MethodDelete, quizPath(id), token, nil, nil)
}

func quizPath(id int64) string { return "/gamification/quizzes/" + strconv.FormatInt(id, 10) }

var _ repository.QuizRepository = (*QuizGateway)(nil)
