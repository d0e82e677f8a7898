package handler

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"resume-agent-go/internal/config"
	"resume-agent-go/internal/logger"
	"resume-agent-go/internal/qa"
	"resume-agent-go/internal/storage"
	"resume-agent-go/internal/storage/models"
	"resume-agent-go/internal/tracing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var qaTracer = otel.Tracer("resume-agent-go/api/qa")

// QAHandler 针对候选人画像回答自然语言问题
type QAHandler struct {
	cfg       *config.Config
	storage   *storage.Storage
	qaService *qa.Service
}

// NewQAHandler 创建问答处理器
func NewQAHandler(cfg *config.Config, st *storage.Storage, svc *qa.Service) *QAHandler {
	return &QAHandler{cfg: cfg, storage: st, qaService: svc}
}

type askRequest struct {
	Question string `json:"question"`
}

// HandleAsk 回答针对某候选人的问题
// 回答流程：严格规则→LLM（如启用）→宽松规则→固定兜底文案，永不失败
func (h *QAHandler) HandleAsk(ctx context.Context, c *app.RequestContext) {
	candidateUUID := c.Param("uuid")
	if candidateUUID == "" {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "缺少候选人UUID"})
		return
	}

	var req askRequest
	if err := json.Unmarshal(c.Request.Body(), &req); err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "请求体不是合法JSON: " + err.Error()})
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "question不能为空"})
		return
	}

	ctx, span := qaTracer.Start(ctx, "QAHandler.HandleAsk",
		trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()
	span.SetAttributes(
		attribute.String("candidate.uuid", candidateUUID),
		attribute.String("qa.question", tracing.SafeQuestion(question)),
	)

	candidate, err := h.storage.MySQL.GetCandidateByUUID(ctx, candidateUUID)
	if err != nil {
		if storage.IsRecordNotFound(err) {
			tracing.RecordHTTPError(span, err, consts.StatusNotFound)
			c.JSON(consts.StatusNotFound, utils.H{"error": "候选人不存在"})
			return
		}
		tracing.RecordError(span, err, tracing.ErrorTypeDB)
		logger.Error().Err(err).Str("candidate_uuid", candidateUUID).Msg("查询候选人失败")
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "查询候选人失败"})
		return
	}

	profile := candidate.Profile()
	if h.storage.Redis != nil {
		if cached, cerr := h.storage.Redis.GetCachedCandidateProfile(ctx, candidateUUID); cerr == nil {
			profile = cached
		}
	}

	answer, source := h.qaService.Ask(ctx, question, profile)
	span.SetAttributes(attribute.String("qa.answer_source", string(source)))

	// 审计记录写失败不影响回答
	record := &models.QARecord{
		CandidateUUID: candidateUUID,
		Question:      question,
		Answer:        answer,
		AnswerSource:  string(source),
		CreatedAt:     time.Now(),
	}
	if err := h.storage.MySQL.CreateQARecord(ctx, record); err != nil {
		logger.Warn().Err(err).Str("candidate_uuid", candidateUUID).Msg("写入问答记录失败")
	}

	logger.Info().
		Str("candidate_uuid", candidateUUID).
		Str("source", string(source)).
		Msg("问答请求处理完成")

	c.JSON(consts.StatusOK, utils.H{
		"candidate_uuid": candidateUUID,
		"question":       question,
		"answer":         answer,
		"source":         string(source),
	})
}
