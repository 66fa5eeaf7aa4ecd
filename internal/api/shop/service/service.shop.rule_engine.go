package shopsvc

import (
	"sort"
	"strings"

	shopmodels "chat_commerce/internal/api/shop/models"
)

// MatchReply chọn câu trả lời cho một tin nhắn dựa trên danh sách rule của trang.
// Hàm thuần: không truy cập DB, chỉ làm việc trên slice rule đã fetch sẵn.
//
// Cách chọn:
//   - Rule được duyệt theo priority tăng dần, rule khớp đầu tiên thắng.
//   - exact: so sánh bằng, không phân biệt hoa thường, đã trim.
//   - contains: chuỗi con, không phân biệt hoa thường.
//   - Không rule nào khớp: trả reply của rule fallback đầu tiên (theo priority).
//   - Không có fallback: trả chuỗi rỗng (nghĩa là không trả lời).
func MatchReply(rules []shopmodels.ReplyRule, text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))

	sorted := make([]shopmodels.ReplyRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	var fallback *shopmodels.ReplyRule
	for i := range sorted {
		rule := &sorted[i]
		if !rule.Enabled {
			continue
		}
		keyword := strings.ToLower(strings.TrimSpace(rule.Keyword))
		switch rule.MatchType {
		case shopmodels.MatchTypeExact:
			if normalized == keyword {
				return rule.Reply
			}
		case shopmodels.MatchTypeContains:
			if keyword != "" && strings.Contains(normalized, keyword) {
				return rule.Reply
			}
		case shopmodels.MatchTypeFallback:
			if fallback == nil {
				fallback = rule
			}
		}
	}

	if fallback != nil {
		return fallback.Reply
	}
	return ""
}
