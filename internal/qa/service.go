package qa

import (
	"context"

	"resume-agent-go/internal/logger"
	"resume-agent-go/internal/types"
)

// minLLMAnswerLen LLM答案低于此长度视为无效
const minLLMAnswerLen = 5

// AnswerSource 标记答案来自哪个阶段
type AnswerSource string

const (
	SourceRule     AnswerSource = "rule"
	SourceLLM      AnswerSource = "llm"
	SourceFallback AnswerSource = "fallback"
)

// Service 简历问答服务：严格规则 → LLM → 宽松规则 → 固定失败语
// answerer可为nil，此时跳过LLM阶段
type Service struct {
	answerer Answerer
}

// NewService 创建问答服务
func NewService(answerer Answerer) *Service {
	return &Service{answerer: answerer}
}

// Ask 回答关于候选人画像的问题，永不返回error，兜底为固定失败语
func (s *Service) Ask(ctx context.Context, question string, profile types.CandidateProfile) (string, AnswerSource) {
	// 第一阶段：严格规则匹配
	if answer, ok := Match(question, profile, ModeStrict); ok {
		logger.Debug().Str("source", string(SourceRule)).Msg("严格规则命中")
		return answer, SourceRule
	}

	// 第二阶段：LLM
	if s.answerer != nil {
		answer, err := s.answerer.Answer(ctx, question, profile)
		if err != nil {
			logger.Warn().Err(err).Msg("LLM问答失败，回退规则匹配")
		} else if len(answer) > minLLMAnswerLen {
			return answer, SourceLLM
		}
	}

	// 第三阶段：宽松规则匹配
	if answer, ok := Match(question, profile, ModeLoose); ok {
		logger.Debug().Str("source", string(SourceRule)).Msg("宽松规则命中")
		return answer, SourceRule
	}

	return FailureMessage, SourceFallback
}
