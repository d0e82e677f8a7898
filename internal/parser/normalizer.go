package parser // 简历文本的规则解析组件：归一化、分节定位与各字段抽取

import (
	"regexp"
	"strings"
)

// glyphReplacements PDF文本提取常见的乱码修复表
// LaTeX生成的PDF经文本提取后，连字、符号和特殊空格经常被还原成错误字符，
// 不先修复的话下游所有基于模式的抽取器在真实PDF上都会明显退化
// 按顺序执行替换，未命中的输入原样通过
var glyphReplacements = []struct {
	old string
	new string
}{
	// 邮箱前的符号噪声
	{"ï", ""},
	{"# ", ""},
	{"§ ", ""},
	{"¶ ", ""},

	// 弯引号
	{"“", `"`},
	{"”", `"`},
	{"‘", "'"},
	{"’", "'"},

	// 特殊空白
	{" ", " "}, // 不间断空格
	{"​", ""},  // 零宽空格

	// 连接号变体
	{"–", "-"}, // en-dash
	{"—", "-"}, // em-dash
}

var (
	// 邮箱@前被插入了多余字母p的损坏模式，尽力修复；可能误伤恰好匹配的正常文本
	corruptedAtRe = regexp.MustCompile(`(?i)([a-z])p@([a-z])`)
	multiSpaceRe  = regexp.MustCompile(` +`)
	spacedAtRe    = regexp.MustCompile(`\s*@\s*`)
)

// Normalize 清理文本提取产生的乱码，纯函数，永不失败
func Normalize(raw string) string {
	text := raw
	for _, r := range glyphReplacements {
		text = strings.ReplaceAll(text, r.old, r.new)
	}

	text = corruptedAtRe.ReplaceAllString(text, "$1@$2")
	text = multiSpaceRe.ReplaceAllString(text, " ")
	text = spacedAtRe.ReplaceAllString(text, "@")

	return text
}
