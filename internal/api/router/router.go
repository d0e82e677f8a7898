package router

import (
	"context"

	"resume-agent-go/internal/api/handler"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(
	h *server.Hertz,
	resumeHandler *handler.ResumeHandler,
	candidateHandler *handler.CandidateHandler,
	qaHandler *handler.QAHandler,
) {
	api := h.Group("/api/v1")

	api.POST("/resume/upload", resumeHandler.HandleResumeUpload)

	api.GET("/candidates", candidateHandler.HandleListCandidates)
	api.GET("/candidates/:uuid", candidateHandler.HandleGetCandidate)

	api.POST("/candidates/:uuid/qa", qaHandler.HandleAsk)

	// 健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
