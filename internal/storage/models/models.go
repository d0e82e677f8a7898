package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"resume-agent-go/internal/types"
)

// Candidate 候选人主表，一次上传对应一条记录
type Candidate struct {
	CandidateUUID    string `gorm:"type:char(36);primaryKey"`
	OriginalFilename string `gorm:"type:varchar(255)"`
	FileExt          string `gorm:"type:varchar(10)"`

	// 去重用的两级MD5: 原始文件字节与规范化文本
	FileMD5    string `gorm:"type:char(32);uniqueIndex:idx_candidates_file_md5"`
	RawTextMD5 string `gorm:"type:char(32);index:idx_candidates_raw_text_md5"`

	// 对象存储路径
	OriginalFilePathOSS string `gorm:"type:varchar(1024)"`
	ParsedTextPathOSS   string `gorm:"type:varchar(1024)"`

	// 解析产物，JSON形式的候选人画像
	ProfileJSON datatypes.JSON `gorm:"type:json"`

	ProcessingStatus string `gorm:"type:varchar(50);default:'PENDING_PARSE';index:idx_candidates_processing_status"`
	ParserVersion    string `gorm:"type:varchar(50)"`
	ParseError       string `gorm:"type:text"`

	UploadedAt time.Time `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);index:idx_candidates_uploaded_at"`
	CreatedAt  time.Time `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt  time.Time `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// Profile 反序列化画像字段，解析前的记录返回空画像
func (c *Candidate) Profile() types.CandidateProfile {
	if len(c.ProfileJSON) == 0 {
		return types.EmptyProfile()
	}
	var profile types.CandidateProfile
	if err := json.Unmarshal(c.ProfileJSON, &profile); err != nil {
		return types.EmptyProfile()
	}
	return profile
}

// SetProfile 序列化画像到JSON字段
func (c *Candidate) SetProfile(profile types.CandidateProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	c.ProfileJSON = datatypes.JSON(data)
	return nil
}

// QARecord 问答日志表，记录每次提问与答案来源
type QARecord struct {
	RecordID      uint64    `gorm:"primaryKey;autoIncrement"`
	CandidateUUID string    `gorm:"type:char(36);not null;index:idx_qa_records_candidate_uuid"`
	Question      string    `gorm:"type:text;not null"`
	Answer        string    `gorm:"type:text"`
	AnswerSource  string    `gorm:"type:varchar(20)"` // rule / llm / fallback
	CreatedAt     time.Time `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`

	Candidate *Candidate `gorm:"foreignKey:CandidateUUID;references:CandidateUUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (QARecord) TableName() string {
	return "qa_records"
}

// StringToJSON Helper function to convert string to datatypes.JSON
func StringToJSON(s string) datatypes.JSON {
	return datatypes.JSON(s)
}

// MapToJSON Helper function to convert map[string]interface{} to datatypes.JSON
func MapToJSON(m map[string]interface{}) (datatypes.JSON, error) {
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}
