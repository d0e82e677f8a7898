package parser

import (
	"regexp"
	"sort"
	"strings"
)

// MaxHobbies 爱好列表条数上限
const MaxHobbies = 15

var hobbySectionKeywords = []string{"hobbies", "interests", "personal", "activities"}

var (
	hobbySplitRe     = regexp.MustCompile(`[,•\-\n|]`)
	hobbyNumberingRe = regexp.MustCompile(`^[\d.\s]+`)
)

// 章节条目长度边界
const (
	hobbyMinLen = 3
	hobbyMaxLen = 60
)

// 条目本身是章节标签词时丢弃
var hobbyLabelWords = []string{"hobbies", "interests", "activities", "personal"}

// 词表兜底时，命中点前后各取这么多字符作为上下文窗口
const hobbyContextRadius = 50

// 上下文窗口中出现这些词说明命中处于职业语境而非个人爱好语境
// 这是启发式消歧，不是语义分类，两个方向都可能出错
var professionalContextWords = []string{"project", "developed", "built", "worked"}

// hobbyRes 词表项的整词匹配正则，进程启动时编译一次
var hobbyRes = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(commonHobbies))
	for _, hobby := range commonHobbies {
		res[hobby] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(hobby) + `\b`)
	}
	return res
}()

// ExtractHobbies 抽取兴趣爱好
// 优先切分爱好章节；未定位到章节时用固定词表在全文兜底，
// 且仅接受出现在非职业语境中的命中
func ExtractHobbies(text string) []string {
	found := make(map[string]struct{})

	if section := FindSection(text, hobbySectionKeywords); section != "" {
		for _, item := range hobbySplitRe.Split(section, -1) {
			item = strings.TrimSpace(hobbyNumberingRe.ReplaceAllString(item, ""))
			if len(item) <= hobbyMinLen || len(item) >= hobbyMaxLen {
				continue
			}
			if containsLabelWord(item) {
				continue
			}
			found[item] = struct{}{}
		}
	}

	if len(found) == 0 {
		for _, hobby := range commonHobbies {
			loc := hobbyRes[hobby].FindStringIndex(text)
			if loc == nil {
				continue
			}
			if inProfessionalContext(text, loc[0], loc[1]) {
				continue
			}
			found[hobby] = struct{}{}
		}
	}

	hobbies := make([]string, 0, len(found))
	for h := range found {
		hobbies = append(hobbies, h)
	}
	sort.Strings(hobbies)
	if len(hobbies) > MaxHobbies {
		hobbies = hobbies[:MaxHobbies]
	}
	return hobbies
}

func containsLabelWord(item string) bool {
	lower := strings.ToLower(item)
	for _, label := range hobbyLabelWords {
		if strings.Contains(lower, label) {
			return true
		}
	}
	return false
}

// inProfessionalContext 检查命中点周围的窗口是否处于职业语境
func inProfessionalContext(text string, start, end int) bool {
	from := start - hobbyContextRadius
	if from < 0 {
		from = 0
	}
	to := end + hobbyContextRadius
	if to > len(text) {
		to = len(text)
	}
	window := strings.ToLower(text[from:to])
	for _, word := range professionalContextWords {
		if strings.Contains(window, word) {
			return true
		}
	}
	return false
}
