package parser

import (
	"regexp"
	"strings"
)

// Hit 一次模式命中的结构化结果
type Hit struct {
	// Value 命中并经过后处理的文本
	Value string
	// Tag 命中规则的标识，便于测试断言优先级
	Tag string
}

// Matcher 单条抽取规则：在文本上产生零或一个结构化命中
// 各字段抽取器把散落的模式字面量收敛成有序的规则表，
// 使优先级与回退顺序显式化且可独立测试
type Matcher interface {
	Match(text string) (Hit, bool)
}

type regexMatcher struct {
	tag  string
	re   *regexp.Regexp
	post func(string) string
}

func (m regexMatcher) Match(text string) (Hit, bool) {
	g := m.re.FindStringSubmatch(text)
	if g == nil {
		return Hit{}, false
	}
	value := g[0]
	if len(g) > 1 {
		value = g[1]
	}
	value = strings.TrimSpace(value)
	if m.post != nil {
		value = m.post(value)
	}
	if value == "" {
		return Hit{}, false
	}
	return Hit{Value: value, Tag: m.tag}, true
}

// NewRegexMatcher 构造基于正则的规则；有捕获组时取第一个捕获组，否则取整体匹配
func NewRegexMatcher(tag, pattern string, post func(string) string) Matcher {
	return regexMatcher{tag: tag, re: regexp.MustCompile(pattern), post: post}
}

// FirstHit 按表内顺序求值，返回第一条命中的规则结果
func FirstHit(text string, matchers []Matcher) (Hit, bool) {
	for _, m := range matchers {
		if hit, ok := m.Match(text); ok {
			return hit, true
		}
	}
	return Hit{}, false
}
