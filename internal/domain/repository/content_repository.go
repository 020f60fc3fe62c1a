package repository

import (
	"context"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
)

type ClinicRepository interface {
	List(ctx context.Context, token string, f entity.ClinicFilter) ([]entity.Clinic, error)
	Create(ctx context.Context, token string, in entity.ClinicInput) (*entity.Clinic, error)
	Update(ctx context.Context, token string, id int64, in entity.ClinicInput) (*entity.Clinic, error)
	Delete(ctx context.Context, token string, id int64) error
}

type QuizRepository interface {
	List(ctx context.Context, token string) ([]entity.Quiz, error)
	Questions(ctx context.Context, token string, quizID int64) ([]entity.Question, error)
	Create(ctx context.Context, token string, in entity.NewQuiz) error
	Delete(ctx context.Context, token string, id int64) error
}
