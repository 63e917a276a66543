package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/babystore/internal/application/ledger"
	"github.com/xiebiao/babystore/internal/interface/http/dto"
	"github.com/xiebiao/babystore/pkg/response"
)

// SaleHandler 销售HTTP处理器
type SaleHandler struct {
	ledger *ledger.Ledger
}

// NewSaleHandler 创建销售处理器
func NewSaleHandler(l *ledger.Ledger) *SaleHandler {
	return &SaleHandler{ledger: l}
}

// ListSales 销售列表
// @Summary      销售列表
// @Description  最新的销售在前
// @Tags         销售
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.SaleResponse}
// @Router       /api/v1/sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	sales, err := h.ledger.ListSales(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewSaleList(sales))
}

// RecordSale 记一笔销售
// @Summary      记一笔销售
// @Description  在一个事务内写入销售记录、扣减库存、累加顾客消费
// @Tags         销售
// @Accept       json
// @Produce      json
// @Param        request body dto.RecordSaleRequest true "销售信息"
// @Success      200 {object} response.Response{data=dto.IDResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "商品不存在"
// @Failure      409 {object} response.Response "库存不足(data.available为可用数量)"
// @Failure      500 {object} response.Response "存储故障，已回滚"
// @Router       /api/v1/sales [post]
func (h *SaleHandler) RecordSale(c *gin.Context) {
	var req dto.RecordSaleRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.ledger.RecordSale(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.IDResponse{ID: id})
}
