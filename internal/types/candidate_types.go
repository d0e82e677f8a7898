package types

// CandidateProfile 一份简历文档解析后的规范化候选人画像
// 七个顶层字段在任何情况下都必须存在（空值用空字符串/空切片表示，绝不为null），
// 下游存储和问答模块依赖字段的存在性
type CandidateProfile struct {
	// Introduction 联系信息行，由姓名/邮箱/电话用 " | " 拼接而成；无任何信息时为 "No contact info"
	Introduction string `json:"introduction"`
	// Education 教育经历（单条，取文档中优先级最高的一条）
	Education Education `json:"education"`
	// Experience 工作经历汇总
	Experience Experience `json:"experience"`
	// Skills 技能集合，大小写归一去重后按字典序排序
	Skills []string `json:"skills"`
	// Certifications 证书列表，去重排序，最多15条
	Certifications []string `json:"certifications"`
	// Projects 项目列表，保留文档内首次出现顺序（不排序），最多10条
	Projects []string `json:"projects"`
	// Hobbies 兴趣爱好，去重排序，最多15条
	Hobbies []string `json:"hobbies"`
}

// Education 教育经历字段，缺失的子字段规范化为空字符串
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Field       string `json:"field"`
	Year        string `json:"year"`
	// Duration 仅当文档中出现多个年份时填充，形如 "2016 - 2020"
	Duration string `json:"duration,omitempty"`
}

// IsEmpty 教育经历是否完全为空
func (e Education) IsEmpty() bool {
	return e.Degree == "" && e.Institution == "" && e.Field == "" && e.Year == "" && e.Duration == ""
}

// Experience 工作经历字段，companies/positions 为逗号拼接的去重短列表
type Experience struct {
	TotalYears string `json:"total_years"`
	Companies  string `json:"companies"`
	Positions  string `json:"positions"`
}

// IsEmpty 工作经历是否完全为空
func (e Experience) IsEmpty() bool {
	return e.TotalYears == "" && e.Companies == "" && e.Positions == ""
}

// EmptyProfile 返回全空的画像结构，切片字段为非nil空切片以保证JSON序列化为 [] 而非 null
func EmptyProfile() CandidateProfile {
	return CandidateProfile{
		Skills:         []string{},
		Certifications: []string{},
		Projects:       []string{},
		Hobbies:        []string{},
	}
}
