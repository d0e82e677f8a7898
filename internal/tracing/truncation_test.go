package tracing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskPII(t *testing.T) {
	assert.Equal(t, "", MaskPII(""))
	assert.Equal(t, "*", MaskPII("a"))
	assert.Equal(t, "a*", MaskPII("ab"))
	assert.Equal(t, "a**d", MaskPII("abcd"))
	// 长值保留首尾各2字符
	assert.Equal(t, "ja**************om", MaskPII("jane.doe@gmail.com"))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))

	long := strings.Repeat("x", 50)
	got := TruncateString(long, 21)
	assert.Contains(t, got, "...")
	assert.LessOrEqual(t, len([]rune(got)), 21)
}

func TestSafeAttributeValueMasksSensitiveNames(t *testing.T) {
	got := SafeAttributeValue("user.email", "jane.doe@gmail.com", DefaultMaxLength)
	assert.NotContains(t, got, "jane.doe")

	got = SafeAttributeValue("request.path", "/api/v1/candidates", DefaultMaxLength)
	assert.Equal(t, "/api/v1/candidates", got)
}

func TestSafeQuestion(t *testing.T) {
	q := strings.Repeat("why ", 100)
	got := SafeQuestion(q)
	assert.LessOrEqual(t, len([]rune(got)), MaxQuestionLength)
}

func TestSafeLengthLimits(t *testing.T) {
	sql := "SELECT * FROM candidates WHERE " + strings.Repeat("processing_status = 'PARSED' AND ", 40) + "1=1"
	assert.LessOrEqual(t, len([]rune(SafeSQL(sql))), MaxSQLLength)

	key := "app:candidate:" + strings.Repeat("a", 200)
	assert.LessOrEqual(t, len([]rune(SafeRedisKey(key))), MaxRedisLength)

	content := strings.Repeat("Experienced backend engineer. ", 30)
	assert.LessOrEqual(t, len([]rune(SafeResumeContent(content))), MaxResumeLength)

	// 上限内的值原样返回
	assert.Equal(t, "app:file:md5_set", SafeRedisKey("app:file:md5_set"))
}
