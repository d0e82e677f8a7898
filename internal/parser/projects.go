package parser

import (
	"regexp"
	"strings"
)

// MaxProjects 项目列表条数上限
const MaxProjects = 10

// 章节内未命中标题模式时，全文 Built/Developed 兜底模式的条数上限
const maxActionProjects = 5

var projectSectionKeywords = []string{"project", "portfolio"}

var (
	// 项目标题通常紧跟竖线分隔的技术栈或GitHub链接
	projectTitleRe = regexp.MustCompile(`(?i)([^\n•\-]{10,}?)(?:\||GitHub)`)
	projectChunkRe = regexp.MustCompile(`(?m)\n\s*\n|^[•\-*]\s*`)
	// 全文兜底："Built/Developed/Created/Implemented <短语>" 到句号或 using/with 为止
	projectActionRe = regexp.MustCompile(`(?i)(?:Built|Developed|Created|Implemented)\s+([^.]{20,100}?)(?:\.|using|with)`)
)

// ExtractProjects 抽取项目列表
// 保留文档内首次出现顺序、不排序：简历中项目顺序往往有含义
// （倒序时间或按相关度排列），这是与证书/技能排序的有意差异
func ExtractProjects(text string) []string {
	var projects []string
	seen := make(map[string]struct{})
	add := func(title string) {
		if _, ok := seen[title]; ok {
			return
		}
		seen[title] = struct{}{}
		projects = append(projects, title)
	}

	if section := FindSection(text, projectSectionKeywords); section != "" {
		// 首选：竖线或GitHub前面的标题
		for _, m := range projectTitleRe.FindAllStringSubmatch(section, -1) {
			title := strings.TrimSpace(m[1])
			if len(title) > 10 {
				add(title)
			}
		}

		// 回退：按空行或项目符号切块，取每块首行
		if len(projects) == 0 {
			for _, chunk := range projectChunkRe.Split(section, -1) {
				firstLine := chunk
				if i := strings.IndexByte(chunk, '\n'); i >= 0 {
					firstLine = chunk[:i]
				}
				firstLine = strings.TrimSpace(firstLine)
				if len(firstLine) > 10 && len(firstLine) < 150 &&
					!strings.HasPrefix(strings.ToLower(firstLine), "project") {
					add(firstLine)
				}
			}
		}
	}

	// 章节未定位到或章节内一无所获时，全文搜索动词引导的项目描述
	if len(projects) == 0 {
		matches := projectActionRe.FindAllStringSubmatch(text, -1)
		for i, m := range matches {
			if i >= maxActionProjects {
				break
			}
			add(strings.TrimSpace(m[1]))
		}
	}

	if len(projects) > MaxProjects {
		projects = projects[:MaxProjects]
	}
	return projects
}
