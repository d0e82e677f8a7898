package parser

// 技能与爱好的固定词表。静态数据，进程启动时构建一次，只读不改。

// skillVocabularies 技能词表按类别分组，组内为规范展示写法
// wholeWord=true 的组用整词匹配，false 的组用子串匹配（AI/ML等术语常带空格或斜杠）
var skillVocabularies = []struct {
	name      string
	wholeWord bool
	terms     []string
}{
	{
		name:      "languages",
		wholeWord: true,
		terms: []string{
			"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Go", "Rust",
			"Ruby", "PHP", "Swift", "Kotlin", "Scala", "R", "C",
		},
	},
	{
		name:      "frameworks",
		wholeWord: true,
		terms: []string{
			"React", "Angular", "Vue", "Next.js", "Node.js", "Django", "Flask",
			"FastAPI", "Spring", "Express", "Laravel", "Rails", "Streamlit",
		},
	},
	{
		name:      "databases",
		wholeWord: true,
		terms: []string{
			"MongoDB", "PostgreSQL", "MySQL", "Redis", "Elasticsearch", "Cassandra",
			"DynamoDB", "Oracle", "SQL", "SQLite", "MariaDB",
		},
	},
	{
		name:      "cloud_tools",
		wholeWord: true,
		terms: []string{
			"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "Git", "GitHub",
			"GitLab", "CI/CD", "Terraform", "Ansible", "Linux", "Nginx", "Apache",
		},
	},
	{
		name:      "ai_ml",
		wholeWord: false,
		terms: []string{
			"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "NLP",
			"Computer Vision", "Data Science", "Scikit-learn", "Keras", "OpenCV",
			"Pandas", "NumPy",
		},
	},
	{
		name:      "other_tech",
		wholeWord: false,
		terms: []string{
			"REST API", "GraphQL", "Microservices", "Agile", "Scrum", "DevOps",
			"MLOps", "DataOps",
		},
	},
}

// commonHobbies 兜底的常见爱好词表，仅当未定位到爱好章节时使用
var commonHobbies = []string{
	"Reading", "Writing", "Gaming", "Music", "Sports", "Travel", "Traveling", "Photography",
	"Cooking", "Fitness", "Yoga", "Meditation", "Art", "Drawing", "Painting",
	"Blogging", "Volunteering", "Dancing", "Singing", "Guitar", "Piano",
	"Running", "Cycling", "Swimming", "Hiking", "Chess", "Cricket", "Football",
	"Basketball", "Tennis", "Badminton", "Movies", "Films", "TV Shows",
	"Anime", "Manga", "Video Games", "Board Games", "Gardening", "Baking",
	"AI/ML Research", "Automation", "Backend Development", "Open Source",
}

// certProviderKeywords 证书厂商/体系关键词，配合 "Certified <kw>" / "<kw> Certified" 探测
var certProviderKeywords = []string{
	"AWS", "Azure", "Google Cloud", "GCP", "PMP", "CISSP", "CompTIA",
	"Kubernetes", "Oracle", "Salesforce", "Cisco", "ITIL", "Scrum",
}
