package parser

import (
	"regexp"
	"strings"

	"resume-agent-go/internal/types"
)

var experienceSectionKeywords = []string{"experience", "employment", "work"}

const (
	maxCompanies = 3
	maxPositions = 3
)

var (
	expYearsRe = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of)?\s*(?:experience|exp)`)
	// 公司名：跟在 at/@ 后面、到换行/逗号/竖线或 " as " 为止的大写开头短语
	companyRe = regexp.MustCompile(`(?:at|@)\s+([A-Z][A-Za-z0-9\s&.,]+?)(?:\s*[\n,|]|\s+as\s+)`)
	// 职位：可选资历前缀 + 可选方向 + 必须的角色名词的组合模式
	positionRe = regexp.MustCompile(`(?i)\b(Senior|Junior|Lead|Principal)?\s*(Software|Full[- ]?Stack|Backend|Frontend|Data|ML|AI|Cloud|DevOps)?\s*(Engineer|Developer|Architect|Analyst|Scientist|Manager|Consultant)\b`)
)

// dedupeInOrder 保序去重，保证同样输入产出字节一致
func dedupeInOrder(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// ExtractExperience 抽取工作经历：总年限、公司列表、职位列表
// 优先在经历章节内搜索，未定位到章节时在全文搜索
func ExtractExperience(text string) types.Experience {
	var exp types.Experience

	searchText := FindSection(text, experienceSectionKeywords)
	if searchText == "" {
		searchText = text
	}

	if m := expYearsRe.FindStringSubmatch(searchText); m != nil {
		exp.TotalYears = m[1] + " years"
	}

	var companies []string
	for _, m := range companyRe.FindAllStringSubmatch(searchText, -1) {
		companies = append(companies, strings.TrimSpace(m[1]))
		if len(companies) >= maxCompanies {
			break
		}
	}
	if len(companies) > 0 {
		exp.Companies = strings.Join(dedupeInOrder(companies), ", ")
	}

	var positions []string
	for _, m := range positionRe.FindAllStringSubmatch(searchText, -1) {
		var words []string
		for _, g := range m[1:] {
			if g != "" {
				words = append(words, g)
			}
		}
		title := strings.TrimSpace(strings.Join(words, " "))
		if title != "" {
			positions = append(positions, title)
		}
		if len(positions) >= maxPositions {
			break
		}
	}
	if len(positions) > 0 {
		exp.Positions = strings.Join(dedupeInOrder(positions), ", ")
	}

	return exp
}
