package parser

import (
	"regexp"
	"sort"
	"strings"
)

// wholeWordRes 整词匹配词表项的预编译正则，键为规范展示写法
var wholeWordRes = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp)
	for _, group := range skillVocabularies {
		if !group.wholeWord {
			continue
		}
		for _, term := range group.terms {
			res[term] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		}
	}
	return res
}()

// ExtractSkills 在全文上对固定词表做存在性检测（技能常散落在正文各处，不限定章节）
// 结果为所有命中词的并集，按字典序排序；未命中的词不产生任何输出，无模糊匹配
func ExtractSkills(text string) []string {
	found := make(map[string]struct{})
	lowerText := strings.ToLower(text)

	for _, group := range skillVocabularies {
		for _, term := range group.terms {
			if group.wholeWord {
				if wholeWordRes[term].MatchString(text) {
					found[term] = struct{}{}
				}
			} else if strings.Contains(lowerText, strings.ToLower(term)) {
				found[term] = struct{}{}
			}
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}
