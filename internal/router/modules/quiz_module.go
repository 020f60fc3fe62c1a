package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/rafikey/rafikey-admin/internal/interface/http"
)

type QuizModule struct {
	Handler *handlers.QuizHandler
}

func NewQuizModule(h *handlers.QuizHandler) *QuizModule {
	return &QuizModule{Handler: h}
}

func (m *QuizModule) Register(rg *gin.RouterGroup) {
	d := rg.Group(DashboardPrefix + "/gamification")
	d.GET("", m.Handler.Page)
	d.GET("/quizzes/:id/questions", m.Handler.Questions)
	d.POST("/quizzes", m.Handler.Create)
	d.DELETE("/quizzes/:id", m.Handler.Delete)
}
