package qa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"

	"resume-agent-go/internal/logger"
	"resume-agent-go/internal/types"
)

// Answerer LLM问答协作方接口：规则未命中的问题交给外部模型回答
// 作为外部协作方建模，规则匹配器本身不依赖它
type Answerer interface {
	Answer(ctx context.Context, question string, profile types.CandidateProfile) (string, error)
}

const (
	defaultLLMAPIURL = "https://dashscope.aliyuncs.com/compatible-mode/v1/chat/completions"
	defaultLLMModel  = "qwen-turbo"

	qaSystemPrompt = "You are a helpful assistant answering questions about job candidates. Be concise and direct."
)

// LLMClientConfig OpenAI兼容问答客户端配置
type LLMClientConfig struct {
	APIKey      string
	Model       string
	APIURL      string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// LLMClient 基于OpenAI兼容接口的问答客户端
type LLMClient struct {
	cfg        LLMClientConfig
	httpClient *http.Client
}

// chatCompletionRequest OpenAI兼容请求体，消息沿用eino的schema.Message
type chatCompletionRequest struct {
	Model       string            `json:"model"`
	Messages    []*schema.Message `json:"messages"`
	Temperature float64           `json:"temperature,omitempty"`
	MaxTokens   int               `json:"max_tokens,omitempty"`
}

type chatChoice struct {
	Index        int    `json:"index"`
	FinishReason string `json:"finish_reason"`
	Message      struct {
		Role    string  `json:"role"`
		Content *string `json:"content"`
	} `json:"message"`
}

type chatCompletionResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

// NewLLMClient 创建问答LLM客户端
func NewLLMClient(cfg LLMClientConfig) (*LLMClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("API密钥不能为空")
	}
	if cfg.Model == "" {
		cfg.Model = defaultLLMModel
	}
	if cfg.APIURL == "" {
		cfg.APIURL = defaultLLMAPIURL
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.3
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 200
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &LLMClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Answer 用画像拼装上下文并向模型提问
func (c *LLMClient) Answer(ctx context.Context, question string, profile types.CandidateProfile) (string, error) {
	prompt := fmt.Sprintf(`Answer this question about a job candidate concisely.

Candidate Information:
%s

Question: %s

Provide a clear, direct answer based only on the information above. Keep it brief (1-2 sentences).`,
		PrepareContext(profile), question)

	reqPayload := chatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []*schema.Message{
			schema.SystemMessage(qaSystemPrompt),
			schema.UserMessage(prompt),
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}

	jsonData, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("序列化请求体失败: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("创建HTTP请求失败: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("发送HTTP请求失败: %w", err)
	}
	defer httpResp.Body.Close()

	bodyBytes, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("读取响应体失败: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API请求失败，状态 %s: %s", httpResp.Status, string(bodyBytes))
	}

	var resp chatCompletionResponse
	if err := json.Unmarshal(bodyBytes, &resp); err != nil {
		return "", fmt.Errorf("反序列化API响应失败: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == nil {
		return "", fmt.Errorf("API返回空选项")
	}

	answer := strings.TrimSpace(*resp.Choices[0].Message.Content)
	logger.Debug().Str("model", c.cfg.Model).Int("answer_len", len(answer)).Msg("LLM问答完成")
	return answer, nil
}

// PrepareContext 把画像压平成供模型使用的上下文文本，空字段不输出
func PrepareContext(p types.CandidateProfile) string {
	var parts []string

	if p.Introduction != "" {
		if name := NameFromIntroduction(p.Introduction); name != "" {
			parts = append(parts, "Name: "+name)
		}
		parts = append(parts, "Contact: "+p.Introduction)
	}

	if !p.Education.IsEmpty() {
		var edu []string
		if p.Education.Degree != "" {
			edu = append(edu, p.Education.Degree)
		}
		if p.Education.Institution != "" {
			edu = append(edu, "from "+p.Education.Institution)
		}
		if p.Education.Field != "" {
			edu = append(edu, "in "+p.Education.Field)
		}
		if p.Education.Year != "" {
			edu = append(edu, "("+p.Education.Year+")")
		}
		parts = append(parts, "Education: "+strings.Join(edu, " "))
	}

	if !p.Experience.IsEmpty() {
		var exp []string
		if p.Experience.TotalYears != "" {
			exp = append(exp, "total_years: "+p.Experience.TotalYears)
		}
		if p.Experience.Companies != "" {
			exp = append(exp, "companies: "+p.Experience.Companies)
		}
		if p.Experience.Positions != "" {
			exp = append(exp, "positions: "+p.Experience.Positions)
		}
		parts = append(parts, "Experience: "+strings.Join(exp, ", "))
	}

	if len(p.Skills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(capSlice(p.Skills, 20), ", "))
	}
	if len(p.Projects) > 0 {
		parts = append(parts, "Projects: "+strings.Join(capSlice(p.Projects, 8), ", "))
	}
	if len(p.Hobbies) > 0 {
		parts = append(parts, "Hobbies: "+strings.Join(capSlice(p.Hobbies, 15), ", "))
	}
	if len(p.Certifications) > 0 {
		parts = append(parts, "Certifications: "+strings.Join(capSlice(p.Certifications, 10), ", "))
	}

	return strings.Join(parts, "\n")
}

func capSlice(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
