package constants

import "time"

const (
	// DefaultParserVer 当前解析器版本，随提取规则变更递增
	DefaultParserVer = "1.0"

	// 上传限制
	MaxUploadSizeBytes = 10 * 1024 * 1024

	// 候选人画像缓存时长
	ProfileCacheDuration = 24 * time.Hour
)

// 允许上传的简历文件扩展名
var AllowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// 候选人处理状态
const (
	StatusPendingParse = "PENDING_PARSE"
	StatusParsed       = "PARSED"
	StatusParseFailed  = "PARSE_FAILED"
	StatusDuplicate    = "DUPLICATE"
)
