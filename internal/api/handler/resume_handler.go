package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"resume-agent-go/internal/config"
	"resume-agent-go/internal/constants"
	"resume-agent-go/internal/logger"
	"resume-agent-go/internal/parser"
	"resume-agent-go/internal/storage"
	"resume-agent-go/internal/storage/models"
	"resume-agent-go/internal/tracing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/gofrs/uuid/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var resumeTracer = otel.Tracer("resume-agent-go/api/resume")

// ResumeHandler 处理简历上传与解析消费
type ResumeHandler struct {
	cfg       *config.Config
	storage   *storage.Storage
	extractor parser.TextExtractor
	parser    *parser.ResumeParser
}

// NewResumeHandler 创建简历处理器
func NewResumeHandler(cfg *config.Config, st *storage.Storage, extractor parser.TextExtractor, rp *parser.ResumeParser) *ResumeHandler {
	return &ResumeHandler{
		cfg:       cfg,
		storage:   st,
		extractor: extractor,
		parser:    rp,
	}
}

// HandleResumeUpload 接收上传的简历文件，做大小/扩展名校验与文件级MD5去重，
// 新文件入MinIO并发布解析消息；重复文件直接返回已有候选人
func (h *ResumeHandler) HandleResumeUpload(ctx context.Context, c *app.RequestContext) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "缺少file字段: " + err.Error()})
		return
	}

	maxSize := h.cfg.Upload.MaxSizeBytes
	if maxSize <= 0 {
		maxSize = constants.MaxUploadSizeBytes
	}
	if fileHeader.Size > maxSize {
		c.JSON(consts.StatusRequestEntityTooLarge, utils.H{
			"error": fmt.Sprintf("文件过大: %d 字节，上限 %d 字节", fileHeader.Size, maxSize),
		})
		return
	}

	fileExt := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !constants.AllowedResumeExtensions[fileExt] {
		c.JSON(consts.StatusBadRequest, utils.H{
			"error": fmt.Sprintf("不支持的文件类型: %q，仅接受 .pdf/.docx/.txt", fileExt),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "打开上传文件失败: " + err.Error()})
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "读取上传文件失败: " + err.Error()})
		return
	}

	fileMD5 := storage.ComputeMD5(fileBytes)

	// 文件级去重：同一份字节流只接收一次
	if h.storage.Redis != nil {
		exists, derr := h.storage.Redis.CheckAndAddRawFileMD5(ctx, fileMD5)
		if derr != nil {
			// Redis故障时放行，靠candidates表的file_md5唯一索引兜底
			logger.Warn().Err(derr).Msg("文件MD5去重检查失败，继续上传流程")
		} else if exists {
			h.respondDuplicate(ctx, c, fileMD5)
			return
		}
	}

	candidateUUID, err := uuid.NewV7()
	if err != nil {
		h.rollbackFileMD5(ctx, fileMD5)
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "生成候选人UUID失败: " + err.Error()})
		return
	}
	candidateID := candidateUUID.String()

	objectKey, err := h.storage.MinIO.UploadResumeFile(ctx, candidateID, fileExt,
		bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		h.rollbackFileMD5(ctx, fileMD5)
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "上传原始文件失败: " + err.Error()})
		return
	}

	now := time.Now()
	candidate := &models.Candidate{
		CandidateUUID:       candidateID,
		OriginalFilename:    fileHeader.Filename,
		FileExt:             fileExt,
		FileMD5:             fileMD5,
		OriginalFilePathOSS: objectKey,
		ProcessingStatus:    constants.StatusPendingParse,
		ParserVersion:       h.cfg.ActiveParserVersion,
		UploadedAt:          now,
	}
	if err := h.storage.MySQL.CreateCandidate(ctx, candidate); err != nil {
		h.rollbackFileMD5(ctx, fileMD5)
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "写入候选人记录失败: " + err.Error()})
		return
	}

	if h.storage.Redis != nil {
		if err := h.storage.Redis.SetFileMD5Mapping(ctx, fileMD5, candidateID); err != nil {
			logger.Warn().Err(err).Str("file_md5", fileMD5).Msg("记录MD5到UUID映射失败")
		}
	}

	msg := storage.ResumeUploadedMessage{
		CandidateUUID:       candidateID,
		UploadedAt:          now,
		OriginalFilename:    fileHeader.Filename,
		FileExt:             fileExt,
		OriginalFilePathOSS: objectKey,
		RawFileMD5:          fileMD5,
	}
	err = h.storage.RabbitMQ.PublishJSON(ctx,
		h.cfg.RabbitMQ.ResumeEventsExchange,
		h.cfg.RabbitMQ.UploadedRoutingKey,
		msg,
		true) // 持久化消息
	if err != nil {
		// 记录已落库，消息发布失败仅告警，留待状态巡检补发
		logger.Error().Err(err).Str("candidate_uuid", candidateID).Msg("发布简历上传消息失败")
	}

	logger.Info().
		Str("candidate_uuid", candidateID).
		Str("filename", fileHeader.Filename).
		Str("file_md5", fileMD5).
		Msg("简历上传成功")

	c.JSON(consts.StatusOK, utils.H{
		"candidate_uuid": candidateID,
		"status":         constants.StatusPendingParse,
		"duplicate":      false,
	})
}

// respondDuplicate 对重复文件返回已有候选人的UUID与状态
func (h *ResumeHandler) respondDuplicate(ctx context.Context, c *app.RequestContext, fileMD5 string) {
	existingUUID := ""
	if mapped, err := h.storage.Redis.GetFileMD5Mapping(ctx, fileMD5); err == nil {
		existingUUID = mapped
	}

	status := ""
	if existingUUID == "" {
		if cand, err := h.storage.MySQL.FindCandidateByFileMD5(ctx, fileMD5); err == nil {
			existingUUID = cand.CandidateUUID
			status = cand.ProcessingStatus
		}
	} else {
		if cand, err := h.storage.MySQL.GetCandidateByUUID(ctx, existingUUID); err == nil {
			status = cand.ProcessingStatus
		}
	}

	logger.Info().Str("file_md5", fileMD5).Str("candidate_uuid", existingUUID).Msg("收到重复文件，跳过上传")

	c.JSON(consts.StatusOK, utils.H{
		"candidate_uuid": existingUUID,
		"status":         status,
		"duplicate":      true,
	})
}

func (h *ResumeHandler) rollbackFileMD5(ctx context.Context, fileMD5 string) {
	if h.storage.Redis == nil {
		return
	}
	if err := h.storage.Redis.RemoveRawFileMD5(ctx, fileMD5); err != nil {
		logger.Warn().Err(err).Str("file_md5", fileMD5).Msg("回滚文件MD5失败")
	}
}

// StartResumeParseConsumer 声明交换机/队列并启动解析消费者
// 消费失败时Nack不重新入队，失败原因已持久化在candidates表
func (h *ResumeHandler) StartResumeParseConsumer(ctx context.Context) (<-chan struct{}, error) {
	mq := h.storage.RabbitMQ
	cfg := h.cfg.RabbitMQ

	if err := mq.EnsureExchange(cfg.ResumeEventsExchange, "direct", true); err != nil {
		return nil, fmt.Errorf("声明交换机失败: %w", err)
	}
	if err := mq.EnsureQueue(cfg.RawResumeQueue, true); err != nil {
		return nil, fmt.Errorf("声明队列失败: %w", err)
	}
	if err := mq.BindQueue(cfg.RawResumeQueue, cfg.ResumeEventsExchange, cfg.UploadedRoutingKey); err != nil {
		return nil, fmt.Errorf("绑定队列失败: %w", err)
	}

	handlerFunc := func(body []byte) bool {
		var msg storage.ResumeUploadedMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			// 无法解析的消息确认掉，避免死循环
			logger.Error().Err(err).Msg("解析上传消息失败，丢弃")
			return true
		}
		return h.processResume(ctx, msg)
	}

	return mq.StartConsumer(ctx, cfg.RawResumeQueue, cfg.PrefetchCount, handlerFunc)
}

// processResume 执行 下载→提取→规整→文本去重→结构化解析→落库缓存 的完整流水线
// 返回true表示消息应被ack，包括已定论的失败（失败状态进库）
func (h *ResumeHandler) processResume(ctx context.Context, msg storage.ResumeUploadedMessage) bool {
	ctx, span := resumeTracer.Start(ctx, "ResumeHandler.processResume",
		trace.WithSpanKind(trace.SpanKindConsumer))
	defer span.End()
	span.SetAttributes(
		attribute.String("candidate.uuid", msg.CandidateUUID),
		attribute.String("resume.file_ext", msg.FileExt),
	)

	log := logger.Logger.With().Str("candidate_uuid", msg.CandidateUUID).Logger()
	start := time.Now()

	fileBytes, err := h.storage.MinIO.GetResumeFile(ctx, msg.OriginalFilePathOSS)
	if err != nil {
		log.Error().Err(err).Str("object_key", msg.OriginalFilePathOSS).Msg("下载原始简历失败")
		tracing.RecordErrorWithInfo(span, err, tracing.ErrorTypeStorage,
			attribute.String("object.key", msg.OriginalFilePathOSS))
		h.markFailed(ctx, msg.CandidateUUID, fmt.Errorf("下载原始文件失败: %w", err))
		return true
	}

	rawText, err := h.extractor.ExtractText(ctx, fileBytes, msg.OriginalFilename)
	if err != nil {
		log.Error().Err(err).Msg("提取简历文本失败")
		tracing.RecordErrorWithInfo(span, err, tracing.ErrorTypeParse,
			attribute.String("resume.filename", tracing.TruncateString(msg.OriginalFilename, tracing.DefaultMaxLength)))
		h.markFailed(ctx, msg.CandidateUUID, fmt.Errorf("文本提取失败: %w", err))
		return true
	}

	normalized := parser.Normalize(rawText)
	span.SetAttributes(attribute.String("resume.text_preview", tracing.SafeResumeContent(normalized)))

	textMD5 := storage.ComputeTextMD5(normalized)

	// 文本级去重：不同文件可能提取出同一份内容
	if h.storage.Redis != nil && strings.TrimSpace(normalized) != "" {
		exists, derr := h.storage.Redis.CheckAndAddParsedTextMD5(ctx, textMD5)
		if derr != nil {
			log.Warn().Err(derr).Msg("文本MD5去重检查失败，继续解析")
		} else if exists {
			log.Info().Str("text_md5", textMD5).Msg("解析文本内容重复，标记为DUPLICATE")
			if err := h.storage.MySQL.UpdateCandidateStatus(ctx, msg.CandidateUUID, constants.StatusDuplicate); err != nil {
				log.Error().Err(err).Msg("更新重复状态失败")
			}
			return true
		}
	}

	parsedTextPath, err := h.storage.MinIO.UploadParsedText(ctx, msg.CandidateUUID, normalized)
	if err != nil {
		log.Warn().Err(err).Msg("上传解析文本失败，不阻塞后续解析")
		parsedTextPath = ""
	}

	profile, parseErr := h.parser.Parse(normalized)
	if parseErr != nil {
		// 解析器兜住了内部panic并返回空画像，状态记为失败但画像照常落库
		log.Error().Err(parseErr).Msg("规则解析发生内部故障")
		tracing.RecordParseFault(span, parseErr, msg.CandidateUUID)
		h.markFailed(ctx, msg.CandidateUUID, parseErr)
		return true
	}

	parserVersion := h.cfg.ActiveParserVersion
	if parserVersion == "" {
		parserVersion = constants.DefaultParserVer
	}

	err = h.storage.MySQL.SaveParsedProfile(ctx, msg.CandidateUUID, profile,
		textMD5, parsedTextPath, parserVersion, constants.StatusParsed)
	if err != nil {
		log.Error().Err(err).Msg("保存解析档案失败")
		tracing.RecordError(span, err, tracing.ErrorTypeDB)
		return true
	}

	if h.storage.Redis != nil {
		if err := h.storage.Redis.CacheCandidateProfile(ctx, msg.CandidateUUID, profile, constants.ProfileCacheDuration); err != nil {
			log.Warn().Err(err).Msg("缓存候选人档案失败")
		}
	}

	log.Info().
		Dur("elapsed", time.Since(start)).
		Str("status", constants.StatusParsed).
		Msg("简历解析完成")
	return true
}

func (h *ResumeHandler) markFailed(ctx context.Context, candidateUUID string, cause error) {
	if err := h.storage.MySQL.MarkParseFailed(ctx, candidateUUID, constants.StatusParseFailed, cause); err != nil {
		logger.Error().Err(err).Str("candidate_uuid", candidateUUID).Msg("标记解析失败状态出错")
	}
}
