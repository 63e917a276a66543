package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/babystore/internal/application/ledger"
	"github.com/xiebiao/babystore/internal/interface/http/dto"
	"github.com/xiebiao/babystore/pkg/response"
)

// CustomerHandler 顾客HTTP处理器
type CustomerHandler struct {
	ledger *ledger.Ledger
}

// NewCustomerHandler 创建顾客处理器
func NewCustomerHandler(l *ledger.Ledger) *CustomerHandler {
	return &CustomerHandler{ledger: l}
}

// ListCustomers 顾客列表
// @Summary      顾客列表
// @Tags         顾客
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.CustomerResponse}
// @Router       /api/v1/customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.ledger.ListCustomers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewCustomerList(customers))
}

// GetCustomer 顾客详情
// @Summary      顾客详情
// @Tags         顾客
// @Produce      json
// @Param        id path int true "顾客ID"
// @Success      200 {object} response.Response{data=dto.CustomerResponse}
// @Failure      404 {object} response.Response "顾客不存在"
// @Router       /api/v1/customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	cust, err := h.ledger.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewCustomerResponse(cust))
}

// AddCustomer 新增顾客
// @Summary      新增顾客
// @Tags         顾客
// @Accept       json
// @Produce      json
// @Param        request body dto.CustomerRequest true "顾客信息"
// @Success      200 {object} response.Response{data=dto.IDResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/customers [post]
func (h *CustomerHandler) AddCustomer(c *gin.Context) {
	var req dto.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.ledger.AddCustomer(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.IDResponse{ID: id})
}

// UpdateCustomer 编辑顾客
// @Summary      编辑顾客
// @Description  累计消费只能由销售修改
// @Tags         顾客
// @Accept       json
// @Produce      json
// @Param        id path int true "顾客ID"
// @Param        request body dto.CustomerRequest true "顾客信息"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "顾客不存在"
// @Router       /api/v1/customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.ledger.UpdateCustomer(c.Request.Context(), id, req.ToInput()); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.IDResponse{ID: id})
}

// DeleteCustomer 删除顾客(幂等)
// @Summary      删除顾客
// @Tags         顾客
// @Produce      json
// @Param        id path int true "顾客ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.ledger.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
