package handler

import (
	"github.com/gin-gonic/gin"

	appcategory "github.com/xiebiao/bookcatalog/internal/application/category"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// CategoryHandler 分类HTTP处理器
type CategoryHandler struct {
	createUseCase *appcategory.CreateCategoryUseCase
	getUseCase    *appcategory.GetCategoryUseCase
	listUseCase   *appcategory.ListCategoriesUseCase
	updateUseCase *appcategory.UpdateCategoryUseCase
	deleteUseCase *appcategory.DeleteCategoryUseCase
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(
	createUseCase *appcategory.CreateCategoryUseCase,
	getUseCase *appcategory.GetCategoryUseCase,
	listUseCase *appcategory.ListCategoriesUseCase,
	updateUseCase *appcategory.UpdateCategoryUseCase,
	deleteUseCase *appcategory.DeleteCategoryUseCase,
) *CategoryHandler {
	return &CategoryHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create 创建分类
// @Summary      创建分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CategoryRequest true "分类信息"
// @Success      200 {object} category.Category
// @Failure      400 {object} response.Response "参数错误"
// @Failure      403 {object} response.Response "未登录或Token无效"
// @Failure      409 {object} response.Response "分类名称已存在"
// @Router       /api/category [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appcategory.CreateRequest{
		Identity: middleware.GetIdentity(c),
		Title:    req.TitleOrEmpty(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Get 查询分类
// @Summary      查询分类
// @Description  分类不存在时返回null（200）
// @Tags         分类
// @Produce      json
// @Param        id path string true "分类ID"
// @Success      200 {object} category.Category
// @Failure      400 {object} response.Response "ID格式不正确"
// @Router       /api/category/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	result, err := h.getUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// List 分类列表
// @Summary      分类列表
// @Tags         分类
// @Produce      json
// @Param        page   query int    false "页码（从1开始）"
// @Param        limit  query int    false "每页数量"
// @Param        sort   query string false "排序字段，默认-createdAt"
// @Param        fields query string false "返回字段，逗号分隔；全部以-开头时为排除字段"
// @Param        title  query string false "按名称精确过滤"
// @Success      200 {array} category.Category
// @Failure      400 {object} response.Response "参数错误或页码超出范围"
// @Router       /api/category [get]
func (h *CategoryHandler) List(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Update 更新分类
// @Summary      更新分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string              true "分类ID"
// @Param        request body dto.CategoryRequest true "需要修改的字段"
// @Success      200 {object} category.Category
// @Failure      400 {object} response.Response "参数错误"
// @Failure      403 {object} response.Response "未登录或Token无效"
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/category/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), appcategory.UpdateRequest{
		Identity: middleware.GetIdentity(c),
		ID:       c.Param("id"),
		Title:    req.Title,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Delete 删除分类
// @Summary      删除分类
// @Description  不级联删除图书，引用该分类的图书读取时category为null
// @Tags         分类
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "分类ID"
// @Success      200 {object} category.Category
// @Failure      400 {object} response.Response "ID格式不正确"
// @Failure      403 {object} response.Response "未登录或Token无效"
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/category/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	result, err := h.deleteUseCase.Execute(c.Request.Context(), appcategory.DeleteRequest{
		Identity: middleware.GetIdentity(c),
		ID:       c.Param("id"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
