package constants

// Redis Key 前缀和格式常量
// 统一命名规范: app:{module}:{entity}:{unique_id}
const (
	// AppPrefix 是所有Redis Key的统一应用前缀
	AppPrefix = "app"

	// FileModulePrefix 文件模块
	FileModulePrefix = "file"
	// CandidateModulePrefix 候选人模块
	CandidateModulePrefix = "candidate"

	// EntityDedupSet 去重集合实体
	EntityDedupSet = "dedup_set"
	// EntityTextDedupSet 解析文本去重集合实体
	EntityTextDedupSet = "text_dedup_set"
	// EntityMD5ToUUID MD5到UUID的映射实体
	EntityMD5ToUUID = "md5_to_uuid"
	// EntityProfile 候选人画像实体
	EntityProfile = "profile"

	// KeyFileMD5Set 原始文件MD5集合，用于秒级去重 (SET)
	// 格式: app:file:dedup_set
	KeyFileMD5Set = AppPrefix + ":" + FileModulePrefix + ":" + EntityDedupSet

	// KeyTextMD5Set 规范化文本MD5集合，用于内容级去重 (SET)
	// 格式: app:file:text_dedup_set
	KeyTextMD5Set = AppPrefix + ":" + FileModulePrefix + ":" + EntityTextDedupSet

	// KeyFileMD5ToCandidateUUID MD5到候选人UUID的映射 (STRING)
	// 格式: app:file:md5_to_uuid:{md5}
	KeyFileMD5ToCandidateUUID = AppPrefix + ":" + FileModulePrefix + ":" + EntityMD5ToUUID + ":%s"

	// KeyCandidateProfile 候选人画像缓存 (STRING, JSON)
	// 格式: app:candidate:profile:{candidateUUID}
	KeyCandidateProfile = AppPrefix + ":" + CandidateModulePrefix + ":" + EntityProfile + ":%s"
)
