package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleResume 覆盖全部七个字段的典型简历文本
const sampleResume = `John Smith
john.smith@example.com
+1 555-123-4567

EDUCATION
Bachelor of Technology in Computer Science
Indian Institute of Technology
2018 - 2022

EXPERIENCE
5+ years of experience in backend systems
Worked at Google as Senior Software Engineer
Previously at Amazon, owning payment services

SKILLS
Python, Go, JavaScript, Docker, Machine Learning

PROJECTS
Resume Parser Service | Python, FastAPI
Realtime Chat Application | GitHub

CERTIFICATIONS
- AWS Certified Solutions Architect
- Certified Kubernetes Administrator

HOBBIES
Reading, Photography, Hiking
`

func TestParseFullResume(t *testing.T) {
	p := NewResumeParser()
	profile, err := p.Parse(sampleResume)
	require.NoError(t, err)

	// 联系信息拼装为 姓名 | Email | Phone
	assert.Contains(t, profile.Introduction, "John Smith")
	assert.Contains(t, profile.Introduction, "Email: john.smith@example.com")
	assert.Contains(t, profile.Introduction, "Phone: ")

	assert.Equal(t, "Bachelor of Technology in Computer Science", profile.Education.Degree)
	assert.Equal(t, "Indian Institute of Technology", profile.Education.Institution)
	assert.Equal(t, "2022", profile.Education.Year)
	assert.Equal(t, "2018 - 2022", profile.Education.Duration)
	assert.Equal(t, "Computer Science", profile.Education.Field)

	assert.Equal(t, "5 years", profile.Experience.TotalYears)
	assert.Contains(t, profile.Experience.Companies, "Google")
	assert.Contains(t, profile.Experience.Companies, "Amazon")
	assert.Contains(t, profile.Experience.Positions, "Senior Software Engineer")

	assert.Contains(t, profile.Skills, "Python")
	assert.Contains(t, profile.Skills, "Go")
	assert.Contains(t, profile.Skills, "Docker")
	assert.Contains(t, profile.Skills, "Machine Learning")

	assert.Contains(t, profile.Projects, "Resume Parser Service")
	assert.Contains(t, profile.Projects, "Realtime Chat Application")

	assert.Contains(t, profile.Certifications, "AWS Certified Solutions Architect")
	assert.Contains(t, profile.Certifications, "Certified Kubernetes Administrator")

	assert.Contains(t, profile.Hobbies, "Reading")
	assert.Contains(t, profile.Hobbies, "Photography")
	assert.Contains(t, profile.Hobbies, "Hiking")
}

func TestParseIdempotent(t *testing.T) {
	p := NewResumeParser()
	first, err := p.Parse(sampleResume)
	require.NoError(t, err)
	second, err := p.Parse(sampleResume)
	require.NoError(t, err)

	// 相同输入必须产出完全一致的画像
	assert.Equal(t, first, second)
}

func TestParseEmptyInput(t *testing.T) {
	p := NewResumeParser()
	profile, err := p.Parse("")
	require.NoError(t, err)

	// 空输入产出规范空画像：哨兵联系信息 + 非nil空切片
	assert.Equal(t, NoContactSentinel, profile.Introduction)
	assert.Empty(t, profile.Education.Degree)
	assert.Empty(t, profile.Experience.TotalYears)
	assert.NotNil(t, profile.Skills)
	assert.NotNil(t, profile.Certifications)
	assert.NotNil(t, profile.Projects)
	assert.NotNil(t, profile.Hobbies)
	assert.Empty(t, profile.Skills)
}

func TestParseMinimalResume(t *testing.T) {
	text := "Jane Doe\njanep@gmail.com\n\nEducation\nBachelor of Technology in Computer Science\nXYZ University\n2020\n\nSkills\nPython, React, AWS\n"

	p := NewResumeParser()
	profile, err := p.Parse(text)
	require.NoError(t, err)

	// 损坏邮箱 janep@ 被修复为 jane@
	assert.Contains(t, profile.Introduction, "jane@gmail.com")
	assert.Contains(t, profile.Introduction, "Jane Doe")

	assert.True(t, strings.HasPrefix(profile.Education.Degree, "Bachelor"))
	assert.Equal(t, "XYZ University", profile.Education.Institution)
	assert.Equal(t, "2020", profile.Education.Year)

	assert.Equal(t, []string{"AWS", "Python", "React"}, profile.Skills)
}

func TestExtractSkillsCaseInsensitiveDedup(t *testing.T) {
	// 同一技能的不同大小写只产出一个规范写法条目
	skills := ExtractSkills("Python python PYTHON and more Python")
	assert.Equal(t, []string{"Python"}, skills)
}

func TestParseGibberishNeverFails(t *testing.T) {
	p := NewResumeParser()
	inputs := []string{
		"@@@@ ##### $$$$$",
		"\n\n\n\n",
		"短文本",
		"a",
	}
	for _, input := range inputs {
		profile, err := p.Parse(input)
		require.NoError(t, err)
		assert.NotNil(t, profile.Skills)
	}
}

func TestNormalizeGlyphRepairs(t *testing.T) {
	// PDF提取噪声：符号前缀、弯引号、多余空格、被拆散的@
	in := "ï john.doep@example.com\n“quoted”  text @ gmail"
	out := Normalize(in)

	assert.NotContains(t, out, "ï")
	assert.Contains(t, out, "john.doe@example.com")
	assert.Contains(t, out, `"quoted"`)
	assert.NotContains(t, out, "  ")
	assert.Contains(t, out, "text@gmail")
}

func TestFindSection(t *testing.T) {
	text := "SKILLS\nPython, Go\n\nEXPERIENCE\nWorked somewhere\n"

	// 关键词大小写不敏感，允许复数s
	assert.Equal(t, "Python, Go", FindSection(text, []string{"skill"}))
	// 未命中返回空串而非错误
	assert.Equal(t, "", FindSection(text, []string{"hobbies"}))
	// 按关键词优先级取第一个命中
	assert.Equal(t, "Python, Go", FindSection(text, []string{"nonexistent", "skill"}))
}

func TestFindSectionCapitalizedContentLines(t *testing.T) {
	// 正文行以大写开头（机构名、缩写）不算下一个章节标题，
	// 章节只在空行或文档结尾处截止
	text := "Education\nBachelor of Technology in Computer Science\nXYZ University\n2020\n\nSkills\nPython\n"
	got := FindSection(text, []string{"education"})
	assert.Equal(t, "Bachelor of Technology in Computer Science\nXYZ University\n2020", got)
}

func TestExtractContactInfoSentinel(t *testing.T) {
	assert.Equal(t, NoContactSentinel, ExtractContactInfo(""))
	assert.Equal(t, NoContactSentinel, ExtractContactInfo("   \n  \n"))
}

func TestExtractContactInfoNameHeuristics(t *testing.T) {
	// 含数字的行不是姓名，扫描继续到下一行
	got := ExtractContactInfo("42 Main Street 12345\nJane Doe\njane@example.com")
	assert.Contains(t, got, "Jane Doe")
	assert.Contains(t, got, "Email: jane@example.com")

	// 超过4个词的行不是姓名
	got = ExtractContactInfo("An Extremely Long Headline Sentence Here\njane@example.com")
	assert.NotContains(t, got, "Headline")
	assert.Contains(t, got, "Email: jane@example.com")
}

func TestExtractContactInfoEmailRepair(t *testing.T) {
	// 已知损坏前缀被剥掉
	got := ExtractContactInfo("pthereal@gmail.com")
	assert.Contains(t, got, "Email: thereal@gmail.com")
}

func TestExtractEducationPrefixFallback(t *testing.T) {
	// 无education章节标题时在文档前缀中搜索
	text := "Jane Doe\nMaster of Science in Data Science, Stanford University, 2020\n"
	edu := ExtractEducation(text)

	assert.Contains(t, edu.Degree, "Master of Science")
	assert.Equal(t, "Stanford University", edu.Institution)
	assert.Equal(t, "2020", edu.Year)
	assert.Empty(t, edu.Duration) // 只有一个年份时不产生区间
	assert.Equal(t, "Data Science", edu.Field)
}

func TestExtractEducationDegreePriority(t *testing.T) {
	// Bachelor规则先于Master求值，两者都在时取Bachelor
	text := "EDUCATION\nBachelor of Engineering in Mechanical\nMaster of Business Administration\n"
	edu := ExtractEducation(text)
	assert.Contains(t, edu.Degree, "Bachelor")
}

func TestExtractExperienceCaps(t *testing.T) {
	// 公司与职位各截断到3条，且保序去重
	text := `EXPERIENCE
Worked at Alpha Corp as Software Engineer
Then at Beta Labs as Backend Developer
Then at Gamma Inc as Data Analyst
Then at Delta Ltd as Cloud Architect
`
	exp := ExtractExperience(text)
	assert.Contains(t, exp.Companies, "Alpha Corp")
	assert.NotContains(t, exp.Companies, "Delta")

	assert.Contains(t, exp.Positions, "Software Engineer")
	assert.NotContains(t, exp.Positions, "Architect")
}

func TestExtractSkillsSortedUnion(t *testing.T) {
	text := "Proficient with Docker and Python. Shipped Go services. Into Machine Learning."
	skills := ExtractSkills(text)

	assert.Equal(t, []string{"Docker", "Go", "Machine Learning", "Python"}, skills)
}

func TestExtractSkillsWholeWordBoundary(t *testing.T) {
	// "Going"不应命中Go，"Javascript"以规范大小写命中JavaScript
	skills := ExtractSkills("Going to the javascript meetup")
	assert.NotContains(t, skills, "Go")
	assert.Contains(t, skills, "JavaScript")
}

func TestExtractCertificationsEmpty(t *testing.T) {
	certs := ExtractCertifications("No relevant content here")
	assert.NotNil(t, certs)
	assert.Empty(t, certs)
}

func TestExtractCertificationsCap(t *testing.T) {
	certs := ExtractCertifications(sampleResume)
	assert.LessOrEqual(t, len(certs), MaxCertifications)
	assert.Contains(t, certs, "AWS Certified Solutions Architect")
}

func TestExtractCertificationsOverCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("CERTIFICATIONS\n")
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&b, "- Redwood Practitioner Badge %02d\n", i)
	}
	// 重复条目只计一次
	b.WriteString("- Redwood Practitioner Badge 01\n")

	certs := ExtractCertifications(b.String())
	require.Len(t, certs, MaxCertifications)
	assert.Equal(t, "Redwood Practitioner Badge 01", certs[0])
	assert.Equal(t, "Redwood Practitioner Badge 15", certs[14])
	assert.NotContains(t, certs, "Redwood Practitioner Badge 20")
}

func TestExtractProjectsPreservesOrder(t *testing.T) {
	text := "PROJECTS\nResume Parser Service | Python\nRealtime Chat Application | GitHub\n\n"
	projects := ExtractProjects(text)

	require.Len(t, projects, 2)
	assert.Equal(t, "Resume Parser Service", projects[0])
	assert.Equal(t, "Realtime Chat Application", projects[1])
}

func TestExtractProjectsOverCapKeepsInsertionOrder(t *testing.T) {
	var b strings.Builder
	b.WriteString("PROJECTS\n")
	b.WriteString("Flux Pipeline 01 | Go\n")
	b.WriteString("Flux Pipeline 02 | Go\n")
	b.WriteString("Flux Pipeline 03 | Go\n")
	// 重复标题不占第二个名额
	b.WriteString("Flux Pipeline 01 | Go\n")
	for i := 4; i <= 12; i++ {
		fmt.Fprintf(&b, "Flux Pipeline %02d | Go\n", i)
	}

	projects := ExtractProjects(b.String())
	require.Len(t, projects, MaxProjects)
	for i := 0; i < MaxProjects; i++ {
		assert.Equal(t, fmt.Sprintf("Flux Pipeline %02d", i+1), projects[i])
	}
}

func TestExtractProjectsActionFallback(t *testing.T) {
	// 无项目章节时用 Built/Developed 等动词短语兜底
	text := "Summary\nBuilt a real-time analytics dashboard for fleet monitoring using Go."
	projects := ExtractProjects(text)

	require.NotEmpty(t, projects)
	assert.Contains(t, projects[0], "analytics dashboard")
}

func TestExtractHobbiesOverCap(t *testing.T) {
	items := make([]string, 0, 21)
	for i := 1; i <= 20; i++ {
		items = append(items, fmt.Sprintf("Pastime %02d", i))
	}
	items = append(items, "Pastime 01") // 重复条目只计一次
	text := "HOBBIES\n" + strings.Join(items, ", ") + "\n"

	hobbies := ExtractHobbies(text)
	require.Len(t, hobbies, MaxHobbies)
	assert.Equal(t, "Pastime 01", hobbies[0])
	assert.Equal(t, "Pastime 15", hobbies[14])
	assert.NotContains(t, hobbies, "Pastime 20")
}

func TestExtractHobbiesSection(t *testing.T) {
	text := "HOBBIES\nReading, Photography, Hiking\n\n"
	hobbies := ExtractHobbies(text)

	// 章节条目按字典序返回
	assert.Equal(t, []string{"Hiking", "Photography", "Reading"}, hobbies)
}

func TestExtractHobbiesWordlistFallback(t *testing.T) {
	hobbies := ExtractHobbies("I enjoy Photography and Chess on weekends.")
	assert.Contains(t, hobbies, "Photography")
	assert.Contains(t, hobbies, "Chess")
}

func TestExtractHobbiesProfessionalContextExcluded(t *testing.T) {
	// 职业语境中的词表命中被丢弃："Gaming"紧邻"developed"
	hobbies := ExtractHobbies("Developed a Gaming platform backend at work.")
	assert.NotContains(t, hobbies, "Gaming")
}

func TestFirstHitPriority(t *testing.T) {
	matchers := []Matcher{
		NewRegexMatcher("first", `(alpha)`, nil),
		NewRegexMatcher("second", `(beta)`, nil),
	}

	hit, ok := FirstHit("beta then alpha", matchers)
	require.True(t, ok)
	// 规则表顺序优先于文本内出现顺序
	assert.Equal(t, "first", hit.Tag)
	assert.Equal(t, "alpha", hit.Value)

	_, ok = FirstHit("nothing matches", matchers)
	assert.False(t, ok)
}
