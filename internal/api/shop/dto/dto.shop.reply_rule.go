package shopdto

// ReplyRuleCreateInput dữ liệu đầu vào khi tạo reply rule
type ReplyRuleCreateInput struct {
	PageId    string `json:"pageId" validate:"required"`
	Keyword   string `json:"keyword" validate:"required_unless=MatchType fallback,no_xss"`
	Reply     string `json:"reply" validate:"required,no_xss"`
	MatchType string `json:"matchType" validate:"required,oneof=exact contains fallback"`
	Priority  int    `json:"priority" validate:"gte=0"`
	Enabled   bool   `json:"enabled"`
}

// ReplyRuleUpdateInput dữ liệu đầu vào khi cập nhật reply rule
type ReplyRuleUpdateInput struct {
	Keyword   string `json:"keyword" validate:"omitempty,no_xss"`
	Reply     string `json:"reply" validate:"omitempty,no_xss"`
	MatchType string `json:"matchType" validate:"omitempty,oneof=exact contains fallback"`
	Priority  *int   `json:"priority" validate:"omitempty,gte=0"`
	Enabled   *bool  `json:"enabled"`
}
