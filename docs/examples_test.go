package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyExamples(t *testing.T) {
	t.Cleanup(func() { SwaggerInfo.SwaggerTemplate = docTemplate })

	ApplyExamples(Examples{CategoryID: "cat-1", UserID: "user-1"})
	doc := SwaggerInfo.ReadDoc()
	assert.Contains(t, doc, `"example": "cat-1"`)
	assert.Contains(t, doc, `"example": "user-1"`)
	assert.NotContains(t, doc, categoryPlaceholder)

	// 再次调用基于原始模板替换
	ApplyExamples(Examples{CategoryID: "cat-2"})
	doc = SwaggerInfo.ReadDoc()
	assert.Contains(t, doc, `"example": "cat-2"`)
	assert.NotContains(t, doc, "cat-1")
	assert.Contains(t, doc, userPlaceholder)
}

func TestDocIsValidJSON(t *testing.T) {
	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &parsed))
	paths, ok := parsed["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/book/{id}")
	assert.Contains(t, paths, "/api/category")
}
