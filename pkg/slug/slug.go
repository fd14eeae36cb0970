// Package slug 从标题生成 URL 安全的唯一标识
package slug

import (
	"strings"
	"unicode"
)

// Make 生成 slug：小写、非字母数字转连字符、折叠并去除首尾连字符
func Make(s string) string {
	var b strings.Builder
	lastHyphen := true // 抑制开头的连字符
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			// 非 ASCII 字母数字原样保留，交给数据库按 UTF-8 存储
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
