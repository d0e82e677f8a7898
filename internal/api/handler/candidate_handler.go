package handler

import (
	"context"
	"strconv"

	"resume-agent-go/internal/config"
	"resume-agent-go/internal/constants"
	"resume-agent-go/internal/logger"
	"resume-agent-go/internal/storage"
	"resume-agent-go/internal/storage/models"
	"resume-agent-go/internal/types"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CandidateHandler 提供候选人列表与详情查询
type CandidateHandler struct {
	cfg     *config.Config
	storage *storage.Storage
}

// NewCandidateHandler 创建候选人查询处理器
func NewCandidateHandler(cfg *config.Config, st *storage.Storage) *CandidateHandler {
	return &CandidateHandler{cfg: cfg, storage: st}
}

// candidateSummary 列表项，不携带完整画像
type candidateSummary struct {
	CandidateUUID    string `json:"candidate_uuid"`
	OriginalFilename string `json:"original_filename"`
	ProcessingStatus string `json:"processing_status"`
	ParserVersion    string `json:"parser_version,omitempty"`
	UploadedAt       string `json:"uploaded_at"`
}

// HandleListCandidates 按上传时间倒序分页返回候选人
func (h *CandidateHandler) HandleListCandidates(ctx context.Context, c *app.RequestContext) {
	offset := 0
	limit := 20

	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	candidates, total, err := h.storage.MySQL.ListCandidates(ctx, offset, limit)
	if err != nil {
		logger.Error().Err(err).Msg("查询候选人列表失败")
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "查询候选人列表失败"})
		return
	}

	items := make([]candidateSummary, 0, len(candidates))
	for _, cand := range candidates {
		items = append(items, candidateSummary{
			CandidateUUID:    cand.CandidateUUID,
			OriginalFilename: cand.OriginalFilename,
			ProcessingStatus: cand.ProcessingStatus,
			ParserVersion:    cand.ParserVersion,
			UploadedAt:       cand.UploadedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	c.JSON(consts.StatusOK, utils.H{
		"total":  total,
		"offset": offset,
		"limit":  limit,
		"items":  items,
	})
}

// HandleGetCandidate 返回单个候选人的元信息与解析画像
// 画像优先走Redis缓存，未命中再读MySQL并回填缓存
func (h *CandidateHandler) HandleGetCandidate(ctx context.Context, c *app.RequestContext) {
	candidateUUID := c.Param("uuid")
	if candidateUUID == "" {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "缺少候选人UUID"})
		return
	}

	candidate, err := h.storage.MySQL.GetCandidateByUUID(ctx, candidateUUID)
	if err != nil {
		if storage.IsRecordNotFound(err) {
			c.JSON(consts.StatusNotFound, utils.H{"error": "候选人不存在"})
			return
		}
		logger.Error().Err(err).Str("candidate_uuid", candidateUUID).Msg("查询候选人失败")
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "查询候选人失败"})
		return
	}

	profile := h.loadProfile(ctx, candidate)

	c.JSON(consts.StatusOK, utils.H{
		"candidate_uuid":    candidate.CandidateUUID,
		"original_filename": candidate.OriginalFilename,
		"processing_status": candidate.ProcessingStatus,
		"parser_version":    candidate.ParserVersion,
		"parse_error":       candidate.ParseError,
		"uploaded_at":       candidate.UploadedAt,
		"profile":           profile,
	})
}

// loadProfile 读取候选人画像，缓存未命中时从库里的JSON列兜底并回填
func (h *CandidateHandler) loadProfile(ctx context.Context, candidate *models.Candidate) types.CandidateProfile {
	if h.storage.Redis != nil {
		if cached, err := h.storage.Redis.GetCachedCandidateProfile(ctx, candidate.CandidateUUID); err == nil {
			return cached
		}
	}

	profile := candidate.Profile()

	if h.storage.Redis != nil && candidate.ProcessingStatus == constants.StatusParsed {
		if err := h.storage.Redis.CacheCandidateProfile(ctx, candidate.CandidateUUID, profile, constants.ProfileCacheDuration); err != nil {
			logger.Warn().Err(err).Str("candidate_uuid", candidate.CandidateUUID).Msg("回填画像缓存失败")
		}
	}

	return profile
}
