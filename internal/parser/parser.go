package parser

import (
	"fmt"

	"resume-agent-go/internal/logger"
	"resume-agent-go/internal/types"
)

// ParseFault 解析过程中捕获到的意外内部故障
// 解析操作的对外契约是"总是成功"：调用方拿到的仍是完整的空画像，
// 故障本身作为结果的一部分返回，由调用方记录日志，绝不越过解析边界传播
type ParseFault struct {
	Stage string
	Err   error
}

func (f *ParseFault) Error() string {
	return fmt.Sprintf("解析简历在 %s 阶段发生内部故障: %v", f.Stage, f.Err)
}

func (f *ParseFault) Unwrap() error {
	return f.Err
}

// ResumeParser 基于规则的简历解析器
// 纯同步无状态：只读取输入参数和包内只读常量表，可被任意数量的调用方并发使用
type ResumeParser struct{}

// NewResumeParser 创建规则解析器
func NewResumeParser() *ResumeParser {
	return &ResumeParser{}
}

// Parse 将归一化后的简历文本解析为候选人画像
// 任何字段抽取不到信号时落到该字段的空默认值；任何意外panic被兜住并
// 替换为全空画像加非nil的*ParseFault，画像本身始终可用
func (p *ResumeParser) Parse(text string) (profile types.CandidateProfile, err error) {
	defer func() {
		if r := recover(); r != nil {
			profile = types.EmptyProfile()
			err = &ParseFault{Stage: "extract", Err: fmt.Errorf("%v", r)}
		}
	}()

	profile = Assemble(
		ExtractContactInfo(text),
		ExtractEducation(text),
		ExtractExperience(text),
		ExtractSkills(text),
		ExtractCertifications(text),
		ExtractProjects(text),
		ExtractHobbies(text),
	)

	logger.Debug().
		Int("skills", len(profile.Skills)).
		Int("projects", len(profile.Projects)).
		Int("certifications", len(profile.Certifications)).
		Int("hobbies", len(profile.Hobbies)).
		Msg("简历规则解析完成")

	return profile, nil
}

// Assemble 将各字段抽取结果合并为规范画像
// 纯合并，不含额外逻辑：保证七个字段全部存在并应用规范空值
// （切片字段永不为nil），幂等——相同输入总是产出字节一致的画像
func Assemble(
	introduction string,
	education types.Education,
	experience types.Experience,
	skills []string,
	certifications []string,
	projects []string,
	hobbies []string,
) types.CandidateProfile {
	if skills == nil {
		skills = []string{}
	}
	if certifications == nil {
		certifications = []string{}
	}
	if projects == nil {
		projects = []string{}
	}
	if hobbies == nil {
		hobbies = []string{}
	}
	return types.CandidateProfile{
		Introduction:   introduction,
		Education:      education,
		Experience:     experience,
		Skills:         skills,
		Certifications: certifications,
		Projects:       projects,
		Hobbies:        hobbies,
	}
}
