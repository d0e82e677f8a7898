package qa // 基于规则的候选人问答：问题意图分类 + 模板化回答

import (
	"fmt"
	"strings"

	"resume-agent-go/internal/types"
)

// Mode 匹配精度档位
type Mode int

const (
	// ModeStrict 严格模式，首轮尝试使用：name意图额外要求问题短于30字符，
	// 避免较长的复合问题仅因顺带提到"name"而被误触发
	ModeStrict Mode = iota
	// ModeLoose 宽松模式，LLM兜底也失败后的最后手段：去掉上述长度限制
	ModeLoose
)

// FailureMessage 规则与LLM全部失败后的固定失败文案
const FailureMessage = "Unable to generate answer. Please try rephrasing your question."

// nameQuestionMaxLen 严格模式下name意图的问题长度上限
const nameQuestionMaxLen = 30

// intent 一个问题意图：关键词表命中即选中，意图间按固定优先级排列且不互斥，
// 同时命中多个类别的问题只按最先匹配的意图回答
type intent struct {
	name     string
	keywords []string
	answer   func(profile types.CandidateProfile) (string, bool)
}

// intents 意图表，顺序即优先级
var intents = []intent{
	{
		name:     "name",
		keywords: []string{"name", "called", "who is", "candidate name", "their name"},
		answer:   answerName,
	},
	{
		name:     "skills",
		keywords: []string{"skills", "skill", "technologies", "tech stack", "knows", "proficient"},
		answer:   answerSkills,
	},
	{
		name:     "hobbies",
		keywords: []string{"hobbies", "hobby", "interests", "interest", "free time", "likes to do"},
		answer:   answerHobbies,
	},
	{
		name:     "education",
		keywords: []string{"education", "degree", "university", "college", "studied", "graduated"},
		answer:   answerEducation,
	},
	{
		name:     "experience",
		keywords: []string{"experience", "worked", "work", "job", "career", "years of experience"},
		answer:   answerExperience,
	},
	{
		name:     "projects",
		keywords: []string{"projects", "project", "built", "developed", "created"},
		answer:   answerProjects,
	},
	{
		name:     "certifications",
		keywords: []string{"certification", "certified", "certificate"},
		answer:   answerCertifications,
	},
	{
		name:     "contact",
		keywords: []string{"email", "contact", "phone", "reach"},
		answer:   answerContact,
	},
}

// Match 对问题做意图分类并渲染模板化回答
// 返回false表示无规则命中，调用方据此接入LLM兜底链路
// 意图命中但对应字段为空时视为未命中，继续尝试后续意图
// （certifications是唯一例外：命中关键词但列表为空本身就是可回答的情况）
func Match(question string, profile types.CandidateProfile, mode Mode) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(question))

	for _, it := range intents {
		if !containsAny(q, it.keywords) {
			continue
		}
		if it.name == "name" && mode == ModeStrict && len(q) >= nameQuestionMaxLen {
			continue
		}
		if answer, ok := it.answer(profile); ok {
			return answer, true
		}
	}
	return "", false
}

func containsAny(q string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

// NameFromIntroduction 从introduction联系行中提取姓名
// 形如 "Jane Doe | Email: jane@x.com" 取竖线前的部分
func NameFromIntroduction(intro string) string {
	var name string
	if i := strings.Index(intro, "|"); i >= 0 {
		name = intro[:i]
	} else if i := strings.Index(intro, "Email:"); i >= 0 {
		name = intro[:i]
	} else {
		name = intro
	}
	return strings.TrimSpace(name)
}

func answerName(p types.CandidateProfile) (string, bool) {
	if p.Introduction == "" {
		return "", false
	}
	name := NameFromIntroduction(p.Introduction)
	if name == "" || len(name) >= 50 {
		return "", false
	}
	return fmt.Sprintf("The candidate's name is %s.", name), true
}

func answerSkills(p types.CandidateProfile) (string, bool) {
	if len(p.Skills) == 0 {
		return "", false
	}
	if len(p.Skills) <= 5 {
		return fmt.Sprintf("The candidate's skills include: %s.", strings.Join(p.Skills, ", ")), true
	}
	shown := p.Skills
	if len(shown) > 10 {
		shown = shown[:10]
	}
	return fmt.Sprintf("The candidate has skills in: %s. Plus %d more skills.",
		strings.Join(shown, ", "), len(p.Skills)-10), true
}

func answerHobbies(p types.CandidateProfile) (string, bool) {
	if len(p.Hobbies) == 0 {
		return "", false
	}
	return fmt.Sprintf("The candidate's hobbies and interests include: %s.",
		strings.Join(p.Hobbies, ", ")), true
}

func answerEducation(p types.CandidateProfile) (string, bool) {
	var parts []string
	if p.Education.Degree != "" {
		parts = append(parts, p.Education.Degree)
	}
	if p.Education.Institution != "" {
		parts = append(parts, "from "+p.Education.Institution)
	}
	if p.Education.Year != "" {
		parts = append(parts, "in "+p.Education.Year)
	}
	if len(parts) == 0 {
		return "", false
	}
	return fmt.Sprintf("The candidate's education: %s.", strings.Join(parts, " ")), true
}

func answerExperience(p types.CandidateProfile) (string, bool) {
	var parts []string
	if p.Experience.TotalYears != "" {
		parts = append(parts, p.Experience.TotalYears+" of experience")
	}
	if p.Experience.Companies != "" {
		parts = append(parts, "at companies including "+p.Experience.Companies)
	}
	if p.Experience.Positions != "" {
		parts = append(parts, "in roles such as "+p.Experience.Positions)
	}
	if len(parts) == 0 {
		return "", false
	}
	return fmt.Sprintf("The candidate has %s.", strings.Join(parts, ", ")), true
}

func answerProjects(p types.CandidateProfile) (string, bool) {
	if len(p.Projects) == 0 {
		return "", false
	}
	if len(p.Projects) <= 3 {
		return fmt.Sprintf("The candidate has worked on projects including: %s.",
			strings.Join(p.Projects, ", ")), true
	}
	shown := p.Projects
	if len(shown) > 5 {
		shown = shown[:5]
	}
	return fmt.Sprintf("The candidate has worked on %d projects including: %s.",
		len(p.Projects), strings.Join(shown, ", ")), true
}

// answerCertifications 唯一把"命中关键词但列表为空"也视为可回答情况的意图，
// 与其他意图的有意不对称
func answerCertifications(p types.CandidateProfile) (string, bool) {
	if len(p.Certifications) == 0 {
		return "The candidate has no certifications listed.", true
	}
	return fmt.Sprintf("The candidate has certifications in: %s.",
		strings.Join(p.Certifications, ", ")), true
}

func answerContact(p types.CandidateProfile) (string, bool) {
	if p.Introduction == "" {
		return "", false
	}
	return "Contact information: " + p.Introduction, true
}
