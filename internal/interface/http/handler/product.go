package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/babystore/internal/application/ledger"
	"github.com/xiebiao/babystore/internal/domain/product"
	"github.com/xiebiao/babystore/internal/interface/http/dto"
	apperrors "github.com/xiebiao/babystore/pkg/errors"
	"github.com/xiebiao/babystore/pkg/response"
)

// ProductHandler 商品HTTP处理器
type ProductHandler struct {
	ledger *ledger.Ledger
}

// NewProductHandler 创建商品处理器
func NewProductHandler(l *ledger.Ledger) *ProductHandler {
	return &ProductHandler{ledger: l}
}

// ListProducts 商品列表
// @Summary      商品列表
// @Description  按名称升序返回商品，in_stock=true时只返回有库存的商品(销售下拉框)
// @Tags         商品
// @Produce      json
// @Param        in_stock query bool false "只看有库存"
// @Success      200 {object} response.Response{data=[]dto.ProductResponse}
// @Router       /api/v1/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var req dto.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperrors.Newf(apperrors.ErrCodeBindError, "参数格式错误: %v", err))
		return
	}

	products, err := h.ledger.ListProducts(c.Request.Context(), product.Filter{InStockOnly: req.InStock})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewProductList(products))
}

// GetProduct 商品详情
// @Summary      商品详情
// @Tags         商品
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response{data=dto.ProductResponse}
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.ledger.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewProductResponse(p))
}

// AddProduct 新增商品
// @Summary      新增商品
// @Tags         商品
// @Accept       json
// @Produce      json
// @Param        request body dto.ProductRequest true "商品信息"
// @Success      200 {object} response.Response{data=dto.IDResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/products [post]
func (h *ProductHandler) AddProduct(c *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.ledger.AddProduct(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.IDResponse{ID: id})
}

// UpdateProduct 编辑商品
// @Summary      编辑商品
// @Description  整体替换商品的可编辑字段
// @Tags         商品
// @Accept       json
// @Produce      json
// @Param        id path int true "商品ID"
// @Param        request body dto.ProductRequest true "商品信息"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.ledger.UpdateProduct(c.Request.Context(), id, req.ToInput()); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.IDResponse{ID: id})
}

// DeleteProduct 删除商品(幂等)
// @Summary      删除商品
// @Tags         商品
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.ledger.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
