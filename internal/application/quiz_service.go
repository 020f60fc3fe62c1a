package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	repo "github.com/rafikey/rafikey-admin/internal/domain/repository"
)

type QuizService struct {
	Repo   repo.QuizRepository
	Logger *logrus.Logger
}

func NewQuizService(r repo.QuizRepository, logger *logrus.Logger) *QuizService {
	return &QuizService{Repo: r, Logger: logger}
}

func (s *QuizService) List(ctx context.Context, actor entity.Actor) ([]entity.Quiz, error) {
	return s.Repo.List(ctx, actor.Token)
}

func (s *QuizService) Questions(ctx context.Context, actor entity.Actor, quizID int64) ([]entity.Question, error) {
	if !actor.Role.CanManageContent() {
		return nil, ErrPermissionDenied
	}
	return s.Repo.Questions(ctx, actor.Token, quizID)
}

// Create trims the payload and renumbers questions 1..n in submitted order.
func (s *QuizService) Create(ctx context.Context, actor entity.Actor, in entity.NewQuiz) error {
	if !actor.Role.CanManageContent() {
		return ErrPermissionDenied
	}
	in = PrepareQuiz(in)
	if err := s.Repo.Create(ctx, actor.Token, in); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"title": in.Title, "questions": len(in.Questions)}).Info("quiz created")
	}
	return nil
}

func (s *QuizService) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	if !actor.Role.CanManageContent() {
		return ErrPermissionDenied
	}
	if err := s.Repo.Delete(ctx, actor.Token, id); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("quiz_id", id).Info("quiz deleted")
	}
	return nil
}

func PrepareQuiz(in entity.NewQuiz) entity.NewQuiz {
	out := entity.NewQuiz{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Questions:   make([]entity.NewQuestion, len(in.Questions)),
	}
	for i, q := range in.Questions {
		opts := make([]entity.QuizOption, len(q.Options))
		for j, o := range q.Options {
			opts[j] = entity.QuizOption{Text: strings.TrimSpace(o.Text), IsCorrect: o.IsCorrect}
		}
		out.Questions[i] = entity.NewQuestion{
			Text:     strings.TrimSpace(q.Text),
			Order:    i + 1,
			Options:  opts,
			Feedback: strings.TrimSpace(q.Feedback),
		}
	}
	return out
}
