package models

// SearchCondition 本地库检索条件，用于 list / export
type SearchCondition struct {
	Sources []string
	Keyword string // 标题 LIKE 匹配
	MinSeed int
	Limit   int
	Offset  int
}
