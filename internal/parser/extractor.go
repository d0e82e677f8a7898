package parser

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"code.sajari.com/docconv"

	"resume-agent-go/internal/logger"
)

// TextExtractor 把上传的简历文件转成纯文本
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte, filename string) (string, error)
}

// 确保ResumeTextExtractor实现了TextExtractor接口
var _ TextExtractor = (*ResumeTextExtractor)(nil)

// ResumeTextExtractor 按扩展名分发的文本提取器
// PDF走eino解析器，Word类文档走docconv，txt原样解码
type ResumeTextExtractor struct {
	pdf *EinoPDFTextExtractor
}

// NewResumeTextExtractor 创建文本提取器
func NewResumeTextExtractor(ctx context.Context) (*ResumeTextExtractor, error) {
	pdfExtractor, err := NewEinoPDFTextExtractor(ctx)
	if err != nil {
		return nil, fmt.Errorf("初始化PDF提取器失败: %w", err)
	}
	return &ResumeTextExtractor{pdf: pdfExtractor}, nil
}

// ExtractText 根据文件扩展名提取纯文本
func (e *ResumeTextExtractor) ExtractText(ctx context.Context, data []byte, filename string) (string, error) {
	ext := strings.ToLower(fileExt(filename))

	switch ext {
	case ".pdf":
		return e.pdf.ExtractTextFromBytes(ctx, data, filename)
	case ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.Convert(bytes.NewReader(data), docconv.MimeTypeByExtension(filename), true)
		if err != nil {
			return "", fmt.Errorf("提取文档文本失败 %s: %w", filename, err)
		}
		logger.Debug().Str("filename", filename).Int("chars", len(res.Body)).Msg("文档文本提取完成")
		return res.Body, nil
	case ".txt":
		return string(data), nil
	default:
		return "", fmt.Errorf("不支持的文件类型: %s", ext)
	}
}

func fileExt(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return filename[idx:]
}
