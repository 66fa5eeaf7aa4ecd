// Package shopsvc - Test MatchReply: exact/contains/fallback, priority, không rule nào khớp.
package shopsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	shopmodels "chat_commerce/internal/api/shop/models"
)

func rule(keyword, reply, matchType string, priority int) shopmodels.ReplyRule {
	return shopmodels.ReplyRule{
		PageId:    "page-1",
		Keyword:   keyword,
		Reply:     reply,
		MatchType: matchType,
		Priority:  priority,
		Enabled:   true,
	}
}

func TestMatchReply_ExactCaseInsensitive(t *testing.T) {
	rules := []shopmodels.ReplyRule{
		rule("giá", "Bảng giá đây ạ", shopmodels.MatchTypeExact, 1),
	}
	assert.Equal(t, "Bảng giá đây ạ", MatchReply(rules, "GIÁ"))
	assert.Equal(t, "Bảng giá đây ạ", MatchReply(rules, "  giá  "))
	assert.Equal(t, "", MatchReply(rules, "giá bao nhiêu"))
}

func TestMatchReply_ContainsSubstring(t *testing.T) {
	rules := []shopmodels.ReplyRule{
		rule("ship", "Shop có freeship đơn trên 300k nhé", shopmodels.MatchTypeContains, 1),
	}
	assert.Equal(t, "Shop có freeship đơn trên 300k nhé", MatchReply(rules, "có SHIP về tỉnh không"))
	assert.Equal(t, "", MatchReply(rules, "xin chào"))
}

func TestMatchReply_PriorityAscendingFirstWins(t *testing.T) {
	rules := []shopmodels.ReplyRule{
		rule("giá", "Trả lời ưu tiên thấp", shopmodels.MatchTypeContains, 20),
		rule("giá", "Trả lời ưu tiên cao", shopmodels.MatchTypeContains, 5),
	}
	assert.Equal(t, "Trả lời ưu tiên cao", MatchReply(rules, "cho hỏi giá"))
}

func TestMatchReply_ExactBeatsContainsWhenHigherPriority(t *testing.T) {
	rules := []shopmodels.ReplyRule{
		rule("giá", "Exact reply", shopmodels.MatchTypeExact, 1),
		rule("giá", "Contains reply", shopmodels.MatchTypeContains, 2),
	}
	assert.Equal(t, "Exact reply", MatchReply(rules, "giá"))
	// Không khớp exact thì rule contains vẫn bắt được
	assert.Equal(t, "Contains reply", MatchReply(rules, "hỏi giá chút"))
}

func TestMatchReply_FallbackWhenNoMatch(t *testing.T) {
	rules := []shopmodels.ReplyRule{
		rule("giá", "Bảng giá", shopmodels.MatchTypeExact, 1),
		rule("", "Chào bạn, shop giúp gì được ạ?", shopmodels.MatchTypeFallback, 100),
	}
	assert.Equal(t, "Chào bạn, shop giúp gì được ạ?", MatchReply(rules, "alo"))
}

func TestMatchReply_FirstFallbackByPriority(t *testing.T) {
	rules := []shopmodels.ReplyRule{
		rule("", "Fallback 2", shopmodels.MatchTypeFallback, 50),
		rule("", "Fallback 1", shopmodels.MatchTypeFallback, 10),
	}
	assert.Equal(t, "Fallback 1", MatchReply(rules, "bất kỳ"))
}

func TestMatchReply_NoRules(t *testing.T) {
	assert.Equal(t, "", MatchReply(nil, "xin chào"))
	assert.Equal(t, "", MatchReply([]shopmodels.ReplyRule{}, ""))
}

func TestMatchReply_DisabledRuleSkipped(t *testing.T) {
	disabled := rule("giá", "Không được trả lời", shopmodels.MatchTypeExact, 1)
	disabled.Enabled = false
	rules := []shopmodels.ReplyRule{disabled}
	assert.Equal(t, "", MatchReply(rules, "giá"))
}

func TestMatchReply_EmptyContainsKeywordNeverMatches(t *testing.T) {
	// Keyword rỗng với contains sẽ khớp mọi text nếu không chặn
	rules := []shopmodels.ReplyRule{
		rule("", "Không được khớp", shopmodels.MatchTypeContains, 1),
	}
	assert.Equal(t, "", MatchReply(rules, "xin chào"))
}
