package parser

import (
	"regexp"
	"sort"
	"strings"
)

// MaxCertifications 证书列表条数上限
const MaxCertifications = 15

var certSectionKeywords = []string{"certification", "certificate", "license", "credential"}

// 章节行过滤边界
const (
	certLineMaxLen = 150
	certLineMinLen = 8
)

var certSectionHeaderPrefixes = []string{"certification", "certificate", "license"}

var certBulletRe = regexp.MustCompile(`^[•\-*\d.)]+\s*`)

// certPatternRes 全文范围的证书名称形状模式，按序扫描并收集所有命中
var certPatternRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(AWS Certified[A-Za-z\s\-]*?)(?:\n|,|\||$)`),
	regexp.MustCompile(`(?i)(Azure[A-Za-z\s\-]*?Certified[A-Za-z\s\-]*?)(?:\n|,|\||$)`),
	regexp.MustCompile(`(?i)(Google Cloud[A-Za-z\s\-]*?)(?:\n|,|\||$)`),
	regexp.MustCompile(`(?i)(Certified[A-Za-z\s\-]*?)(?:\n|,|\||$)`),
	regexp.MustCompile(`([A-Z][A-Za-z\s]*Certificate[A-Za-z\s]*?)(?:\n|,|\||$)`),
}

// certKeywordRes 厂商关键词探测正则，进程启动时编译一次
var certKeywordRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(certProviderKeywords))
	for _, kw := range certProviderKeywords {
		quoted := regexp.QuoteMeta(kw)
		res = append(res, regexp.MustCompile(`(?i)(?:Certified\s+`+quoted+`|`+quoted+`\s+Certified)[A-Za-z\s\-]*`))
	}
	return res
}()

// ExtractCertifications 三路来源合并抽取证书：
// 证书章节逐行过滤、全文证书名称形状模式、厂商关键词探测
// 合并去重排序后截断到15条
func ExtractCertifications(text string) []string {
	certs := make(map[string]struct{})

	// 来源1：证书章节逐行
	if section := FindSection(text, certSectionKeywords); section != "" {
		for _, line := range strings.Split(section, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || len(line) >= certLineMaxLen {
				continue
			}
			if isCertSectionHeader(line) {
				continue
			}
			line = certBulletRe.ReplaceAllString(line, "")
			if len(line) > certLineMinLen {
				certs[line] = struct{}{}
			}
		}
	}

	// 来源2：全文证书名称形状模式
	for _, re := range certPatternRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			clean := strings.TrimSpace(m[1])
			if len(clean) > certLineMinLen && len(clean) < 100 {
				certs[clean] = struct{}{}
			}
		}
	}

	// 来源3：厂商关键词探测
	for _, re := range certKeywordRes {
		for _, m := range re.FindAllString(text, -1) {
			clean := strings.TrimSpace(m)
			if len(clean) > 5 {
				certs[clean] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(certs))
	for c := range certs {
		out = append(out, c)
	}
	sort.Strings(out)
	if len(out) > MaxCertifications {
		out = out[:MaxCertifications]
	}
	return out
}

func isCertSectionHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, prefix := range certSectionHeaderPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
