package storage

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMD5(t *testing.T) {
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", ComputeMD5([]byte("hello")))
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", ComputeMD5(nil))

	// 文本级与字节级对同一内容一致
	assert.Equal(t, ComputeMD5([]byte("résumé")), ComputeTextMD5("résumé"))
}

func TestResumeUploadedMessageJSON(t *testing.T) {
	msg := ResumeUploadedMessage{
		CandidateUUID:       "0190a000-0000-7000-8000-000000000001",
		UploadedAt:          time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		OriginalFilename:    "resume.pdf",
		FileExt:             ".pdf",
		OriginalFilePathOSS: "resume/0190a000-0000-7000-8000-000000000001/original.pdf",
	}

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	// 消费方按snake_case字段反序列化，键名属于消息契约
	assert.Contains(t, string(data), `"candidate_uuid"`)
	assert.Contains(t, string(data), `"original_file_path_oss"`)
	// 空MD5不出现在消息里
	assert.NotContains(t, string(data), "raw_file_md5")

	var decoded ResumeUploadedMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, msg, decoded)
}
