package storage

import "time"

// ResumeUploadedMessage 简历上传完成事件，驱动后台解析流水线
type ResumeUploadedMessage struct {
	CandidateUUID       string    `json:"candidate_uuid"`
	UploadedAt          time.Time `json:"uploaded_at"`
	OriginalFilename    string    `json:"original_filename"`
	FileExt             string    `json:"file_ext"`
	OriginalFilePathOSS string    `json:"original_file_path_oss"` // MinIO中的对象键
	RawFileMD5          string    `json:"raw_file_md5,omitempty"` // 原始文件MD5，失败时回滚去重集合用
}
