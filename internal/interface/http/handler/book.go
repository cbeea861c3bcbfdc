package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createUseCase *appbook.CreateBookUseCase
	getUseCase    *appbook.GetBookUseCase
	listUseCase   *appbook.ListBooksUseCase
	updateUseCase *appbook.UpdateBookUseCase
	deleteUseCase *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createUseCase *appbook.CreateBookUseCase,
	getUseCase *appbook.GetBookUseCase,
	listUseCase *appbook.ListBooksUseCase,
	updateUseCase *appbook.UpdateBookUseCase,
	deleteUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create 创建图书
// @Summary      创建图书
// @Description  slug由title生成；category只校验ID格式，不检查分类是否存在
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200 {object} book.View
// @Failure      400 {object} response.Response "参数错误"
// @Failure      403 {object} response.Response "未登录或Token无效"
// @Router       /api/book [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Identity: middleware.GetIdentity(c),
		Fields:   req.ToFields(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Get 查询单本图书
// @Summary      查询图书
// @Description  图书不存在时返回null（200），分类已删除时category为null
// @Tags         图书
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} book.View
// @Failure      400 {object} response.Response "ID格式不正确"
// @Router       /api/book/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	result, err := h.getUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// List 图书列表
// @Summary      图书列表
// @Description  过滤：field=value 或 field[gte|gt|lte|lt]=value；sort=-price,title；fields=title,price；page/limit分页
// @Tags         图书
// @Produce      json
// @Param        page   query int    false "页码（从1开始），超出范围返回400"
// @Param        limit  query int    false "每页数量"
// @Param        sort   query string false "排序字段，-前缀表示降序，默认-createdAt"
// @Param        fields query string false "返回字段，逗号分隔；全部以-开头时为排除字段"
// @Param        price[gte] query number false "价格下限"
// @Success      200 {array} book.View
// @Failure      400 {object} response.Response "参数错误或页码超出范围"
// @Router       /api/book [get]
func (h *BookHandler) List(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Update 更新图书
// @Summary      更新图书
// @Description  部分更新，合并后的完整记录需通过校验；带title时重新生成slug
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string          true "图书ID"
// @Param        request body dto.BookRequest true "需要修改的字段"
// @Success      200 {object} book.View
// @Failure      400 {object} response.Response "参数错误"
// @Failure      403 {object} response.Response "未登录或Token无效"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/book/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		Identity: middleware.GetIdentity(c),
		ID:       c.Param("id"),
		Fields:   req.ToFields(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Delete 删除图书
// @Summary      删除图书
// @Description  返回被删除的图书；不存在时返回404（与查询返回null不同）
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "图书ID"
// @Success      200 {object} book.View
// @Failure      400 {object} response.Response "ID格式不正确"
// @Failure      403 {object} response.Response "未登录或Token无效"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/book/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	result, err := h.deleteUseCase.Execute(c.Request.Context(), appbook.DeleteBookRequest{
		Identity: middleware.GetIdentity(c),
		ID:       c.Param("id"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
