package parser

import (
	"regexp"
	"sync"
)

// 分节定位：按标题关键词在全文中找到语义章节的大致文本范围。
// 返回空字符串表示"未找到该章节"（与"找到但内容为空"属同一哨兵值），
// 调用方需要回退到全文或文档前缀搜索。

var (
	sectionReCache   = make(map[string]*regexp.Regexp)
	sectionReCacheMu sync.Mutex
)

// sectionHeadingRe 为单个关键词构造章节标题匹配模式：
// 关键词允许可选的复数s，标题行以冒号/空白结尾换行，
// 章节内容一直延伸到下一个空行或文档结尾。
// 注意不能按"全大写行"截断：正文行也可能以大写开头（如机构名缩写）
func sectionHeadingRe(keyword string) *regexp.Regexp {
	sectionReCacheMu.Lock()
	defer sectionReCacheMu.Unlock()

	if re, ok := sectionReCache[keyword]; ok {
		return re
	}
	re := regexp.MustCompile(`(?i:\b` + regexp.QuoteMeta(keyword) + `s?\b)[\s:]*\n(?s:(.+?))(?:\n\n|\z)`)
	sectionReCache[keyword] = re
	return re
}

// FindSection 按关键词优先级查找章节内容，未命中返回空字符串，绝不报错
func FindSection(text string, keywords []string) string {
	for _, keyword := range keywords {
		re := sectionHeadingRe(keyword)
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}
