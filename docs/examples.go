package docs

import "strings"

// 文档模板中的示例ID占位符
const (
	categoryPlaceholder = "__EXAMPLE_CATEGORY_ID__"
	userPlaceholder     = "__EXAMPLE_USER_ID__"
)

// Examples 文档示例中使用的真实记录ID（来自启动时写入的初始数据）
type Examples struct {
	CategoryID string
	UserID     string
}

// ApplyExamples 把示例ID写入文档模板，可重复调用
// 未提供的ID保留占位符
func ApplyExamples(ex Examples) {
	replacements := make([]string, 0, 4)
	if ex.CategoryID != "" {
		replacements = append(replacements, categoryPlaceholder, ex.CategoryID)
	}
	if ex.UserID != "" {
		replacements = append(replacements, userPlaceholder, ex.UserID)
	}
	SwaggerInfo.SwaggerTemplate = strings.NewReplacer(replacements...).Replace(docTemplate)
}
