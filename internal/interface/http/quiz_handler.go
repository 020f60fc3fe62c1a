package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rafikey/rafikey-admin/internal/application"
	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	"github.com/rafikey/rafikey-admin/internal/interface/middleware"
	"github.com/rafikey/rafikey-admin/pkg/helpers"
	"github.com/rafikey/rafikey-admin/pkg/response"
	"github.com/rafikey/rafikey-admin/pkg/validation"
	"github.com/rafikey/rafikey-admin/pkg/views"
)

const msgIncompleteQuiz = "Please fill all fields, add at least 2 options per question, and mark a correct answer for each question."

type QuizHandler struct {
	Svc    *application.QuizService
	Logger *logrus.Logger
}

func NewQuizHandler(svc *application.QuizService, logger *logrus.Logger) *QuizHandler {
	return &QuizHandler{Svc: svc, Logger: logger}
}

type optionRequest struct {
	Text      string `json:"text" binding:"required,notblank"`
	IsCorrect bool   `json:"is_correct"`
}

type questionRequest struct {
	Text     string          `json:"text" binding:"required,notblank"`
	Order    int             `json:"order"`
	Feedback string          `json:"feedback"`
	Options  []optionRequest `json:"options" binding:"required,min=2,hascorrect,dive"`
}

type createQuizRequest struct {
	Title       string            `json:"title" binding:"required,notblank"`
	Description string            `json:"description"`
	Questions   []questionRequest `json:"questions" binding:"required,min=1,dive"`
}

func (r createQuizRequest) quiz() entity.NewQuiz {
	q := entity.NewQuiz{Title: r.Title, Description: r.Description}
	for _, qr := range r.Questions {
		nq := entity.NewQuestion{Text: qr.Text, Order: qr.Order, Feedback: qr.Feedback}
		for _, o := range qr.Options {
			nq.Options = append(nq.Options, entity.QuizOption{Text: o.Text, IsCorrect: o.IsCorrect})
		}
		q.Questions = append(q.Questions, nq)
	}
	return q
}

type quizzesPage struct {
	Quizzes []entity.Quiz
	Error   string
}

func (h *QuizHandler) Page(c *gin.Context) {
	var p quizzesPage
	quizzes, err := h.Svc.List(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		helpers.LogWarn(h.Logger, "list quizzes failed", err, nil)
		p.Error = pageError(err, "Failed to fetch quizzes")
	}
	p.Quizzes = quizzes
	renderPage(c, http.StatusOK, views.Gamification, "Gamification", p)
}

func (h *QuizHandler) Questions(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	qs, err := h.Svc.Questions(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		failure(c, err, "Failed to fetch questions")
		return
	}
	if qs == nil {
		qs = []entity.Question{}
	}
	response.Success(c, http.StatusOK, qs, "questions", nil)
}

func (h *QuizHandler) Create(c *gin.Context) {
	var req createQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, msgIncompleteQuiz, validation.ToDetails(err))
		return
	}
	if err := h.Svc.Create(c.Request.Context(), middleware.ActorFrom(c), req.quiz()); err != nil {
		failure(c, err, "Failed to create quiz")
		return
	}
	response.Success[any](c, http.StatusCreated, nil, "Quiz created successfully!", nil)
}

func (h *QuizHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		failure(c, err, "Failed to delete quiz")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"id": id}, "Quiz deleted successfully", nil)
}
