package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"
)

// DebugModule publishes expvar counters. It sits behind the edge gate.
type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rg.GET("/debug/vars", gin.WrapH(expvar.Handler()))
}
