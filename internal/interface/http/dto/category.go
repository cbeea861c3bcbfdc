package dto

// CategoryRequest HTTP创建/更新分类请求
type CategoryRequest struct {
	Title *string `json:"title" binding:"omitempty,max=100" example:"Fictional Literature"`
}

// TitleOrEmpty 创建时未提交title按空串处理，由领域规则报校验错误
func (r *CategoryRequest) TitleOrEmpty() string {
	if r.Title == nil {
		return ""
	}
	return *r.Title
}
