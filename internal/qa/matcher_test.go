package qa

import (
	"context"
	"errors"
	"testing"

	"resume-agent-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullProfile() types.CandidateProfile {
	return types.CandidateProfile{
		Introduction: "Jane Doe | Email: jane.doe@example.com | Phone: +1 555-000-1111",
		Education: types.Education{
			Degree:      "Bachelor of Technology in Computer Science",
			Institution: "Indian Institute of Technology",
			Year:        "2022",
		},
		Experience: types.Experience{
			TotalYears: "5 years",
			Companies:  "Google, Amazon",
			Positions:  "Senior Software Engineer",
		},
		Skills:         []string{"Go", "Python", "Docker"},
		Certifications: []string{"AWS Certified Solutions Architect"},
		Projects:       []string{"Resume Parser Service", "Realtime Chat Application"},
		Hobbies:        []string{"Hiking", "Photography"},
	}
}

func TestMatchNameIntent(t *testing.T) {
	answer, ok := Match("What is their name?", fullProfile(), ModeStrict)
	require.True(t, ok)
	assert.Equal(t, "The candidate's name is Jane Doe.", answer)
}

func TestMatchNameStrictLengthGate(t *testing.T) {
	p := fullProfile()
	// 30字符以上且仅因顺带出现"name"的问题，严格模式拒答name意图
	long := "Please tell me the name of every project they built"

	answer, ok := Match(long, p, ModeStrict)
	// name被跳过后projects意图接住
	require.True(t, ok)
	assert.Contains(t, answer, "projects")

	// 宽松模式下同一问题按name意图回答
	answer, ok = Match(long, p, ModeLoose)
	require.True(t, ok)
	assert.Equal(t, "The candidate's name is Jane Doe.", answer)
}

func TestMatchIntentPriority(t *testing.T) {
	// skills排在education之前，同时命中两类关键词时按skills回答
	answer, ok := Match("What skills did they gain at university?", fullProfile(), ModeStrict)
	require.True(t, ok)
	assert.Contains(t, answer, "skills")
	assert.NotContains(t, answer, "education")
}

func TestMatchEmptyFieldFallsThrough(t *testing.T) {
	p := fullProfile()
	p.Skills = []string{}

	// skills命中但为空，继续尝试后续意图；education关键词救场
	answer, ok := Match("What skills from their degree?", p, ModeStrict)
	require.True(t, ok)
	assert.Contains(t, answer, "education")
}

func TestMatchCertificationsEmptySpecialCase(t *testing.T) {
	p := fullProfile()
	p.Certifications = []string{}

	// certifications是唯一把空列表也视为可回答的意图
	answer, ok := Match("Any certifications?", p, ModeStrict)
	require.True(t, ok)
	assert.Equal(t, "The candidate has no certifications listed.", answer)
}

func TestMatchNoIntent(t *testing.T) {
	_, ok := Match("What is the meaning of life?", fullProfile(), ModeLoose)
	assert.False(t, ok)
}

func TestMatchSkillsTruncation(t *testing.T) {
	p := fullProfile()
	p.Skills = []string{"A1", "B2", "C3", "D4", "E5", "F6", "G7", "H8", "I9", "J10", "K11", "L12"}

	answer, ok := Match("What are their skills?", p, ModeStrict)
	require.True(t, ok)
	// 超过10条时展示前10条并注明剩余数量
	assert.Contains(t, answer, "Plus 2 more skills.")
	assert.NotContains(t, answer, "K11")
}

func TestNameFromIntroduction(t *testing.T) {
	assert.Equal(t, "Jane Doe", NameFromIntroduction("Jane Doe | Email: jane@x.com"))
	assert.Equal(t, "Jane Doe", NameFromIntroduction("Jane Doe Email: jane@x.com"))
	assert.Equal(t, "Jane Doe", NameFromIntroduction("Jane Doe"))
	assert.Equal(t, "", NameFromIntroduction(""))
}

// stubAnswerer 测试用LLM替身
type stubAnswerer struct {
	answer string
	err    error
	calls  int
}

func (s *stubAnswerer) Answer(ctx context.Context, question string, profile types.CandidateProfile) (string, error) {
	s.calls++
	return s.answer, s.err
}

func TestServiceRuleShortCircuitsLLM(t *testing.T) {
	stub := &stubAnswerer{answer: "should not be used"}
	svc := NewService(stub)

	answer, source := svc.Ask(context.Background(), "What is their name?", fullProfile())
	assert.Equal(t, SourceRule, source)
	assert.Equal(t, "The candidate's name is Jane Doe.", answer)
	// 严格规则命中时完全不触碰LLM
	assert.Equal(t, 0, stub.calls)
}

func TestServiceLLMAnswerAccepted(t *testing.T) {
	stub := &stubAnswerer{answer: "The candidate is open to relocation."}
	svc := NewService(stub)

	answer, source := svc.Ask(context.Background(), "Are they open to relocation?", fullProfile())
	assert.Equal(t, SourceLLM, source)
	assert.Equal(t, stub.answer, answer)
}

func TestServiceShortLLMAnswerRejected(t *testing.T) {
	// 5字符及以下的LLM答案视为无效，落到宽松规则
	stub := &stubAnswerer{answer: "Yes"}
	svc := NewService(stub)

	long := "Considering everything, what would you say the name of this person is"
	answer, source := svc.Ask(context.Background(), long, fullProfile())
	assert.Equal(t, SourceRule, source)
	assert.Equal(t, "The candidate's name is Jane Doe.", answer)
	assert.Equal(t, 1, stub.calls)
}

func TestServiceLLMErrorFallsBack(t *testing.T) {
	stub := &stubAnswerer{err: errors.New("upstream timeout")}
	svc := NewService(stub)

	answer, source := svc.Ask(context.Background(), "Tell me something unanswerable", fullProfile())
	assert.Equal(t, SourceFallback, source)
	assert.Equal(t, FailureMessage, answer)
}

func TestServiceWithoutAnswerer(t *testing.T) {
	svc := NewService(nil)

	answer, source := svc.Ask(context.Background(), "What is their name?", fullProfile())
	assert.Equal(t, SourceRule, source)
	assert.NotEmpty(t, answer)

	answer, source = svc.Ask(context.Background(), "Unmatchable question xyz", fullProfile())
	assert.Equal(t, SourceFallback, source)
	assert.Equal(t, FailureMessage, answer)
}
