package parser

import (
	"regexp"
	"strings"

	"resume-agent-go/internal/types"
)

// 未定位到教育章节时，退回全文前缀搜索的长度上限
const educationPrefixLen = 2000

var educationSectionKeywords = []string{"education", "academic", "qualification"}

// degreeMatchers 学位名称规则表，按优先级排列，第一条命中即停
// 捕获学位关键词之后同行的5~80个字符作为学位全称
var degreeMatchers = []Matcher{
	NewRegexMatcher("bachelor", `(?i)(Bachelor[^\n]{5,80})`, nil),
	NewRegexMatcher("master", `(?i)(Master[^\n]{5,80})`, nil),
	NewRegexMatcher("btech", `(?i)(B\.?Tech[^\n]{5,80})`, nil),
	NewRegexMatcher("mtech", `(?i)(M\.?Tech[^\n]{5,80})`, nil),
	NewRegexMatcher("mba", `(?i)(MBA[^\n]{5,80})`, nil),
	NewRegexMatcher("phd", `(?i)(PhD[^\n]{5,80})`, nil),
	NewRegexMatcher("be", `(?i)(B\.?E\.?[^\n]{5,80})`, nil),
	NewRegexMatcher("me", `(?i)(M\.?E\.?[^\n]{5,80})`, nil),
}

var (
	// 院校：以University/Institute/College/School结尾的大写开头短语，行内匹配
	institutionRe = regexp.MustCompile(`\b([A-Z][A-Za-z &]*(?:University|Institute|College|School)[A-Za-z &]*)`)
	yearRe        = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// studyFields 专业领域固定表，按优先级检查，文档提到多个时只取第一个
var studyFields = []string{
	"Computer Science",
	"Computer Engineering",
	"Information Technology",
	"Electronics",
	"Mechanical",
	"Civil",
	"Business",
	"Data Science",
	"Engineering",
}

// ExtractEducation 抽取教育经历
// 优先在教育章节内搜索，未定位到章节时退回全文前2000字符
func ExtractEducation(text string) types.Education {
	var edu types.Education

	searchText := FindSection(text, educationSectionKeywords)
	if searchText == "" {
		if len(text) > educationPrefixLen {
			searchText = text[:educationPrefixLen]
		} else {
			searchText = text
		}
	}

	if hit, ok := FirstHit(searchText, degreeMatchers); ok {
		edu.Degree = hit.Value
	}

	if m := institutionRe.FindStringSubmatch(searchText); m != nil {
		edu.Institution = strings.TrimSpace(m[1])
	}

	// 年份：范围1900-2099的4位年份；出现多个时最后一个视为毕业年份，首尾记为duration
	years := yearRe.FindAllString(searchText, -1)
	if len(years) > 0 {
		edu.Year = years[len(years)-1]
		if len(years) > 1 {
			edu.Duration = years[0] + " - " + years[len(years)-1]
		}
	}

	lowerText := strings.ToLower(searchText)
	for _, field := range studyFields {
		if strings.Contains(lowerText, strings.ToLower(field)) {
			edu.Field = field
			break
		}
	}

	return edu
}
