package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/babystore/internal/application/ledger"
	"github.com/xiebiao/babystore/internal/interface/http/dto"
	"github.com/xiebiao/babystore/pkg/response"
)

// DashboardHandler 仪表盘与表单选项
type DashboardHandler struct {
	ledger *ledger.Ledger
}

// NewDashboardHandler 创建仪表盘处理器
func NewDashboardHandler(l *ledger.Ledger) *DashboardHandler {
	return &DashboardHandler{ledger: l}
}

// Dashboard 仪表盘汇总
// @Summary      仪表盘
// @Description  商品数、顾客数、销售总额、低库存商品数、最近销售
// @Tags         仪表盘
// @Produce      json
// @Success      200 {object} response.Response{data=dto.DashboardResponse}
// @Router       /api/v1/dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	summary, err := h.ledger.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewDashboardResponse(summary))
}

// Options 商品表单可选项
// @Summary      表单选项
// @Tags         仪表盘
// @Produce      json
// @Success      200 {object} response.Response{data=ledger.CatalogOptions}
// @Router       /api/v1/options [get]
func (h *DashboardHandler) Options(c *gin.Context) {
	response.Success(c, h.ledger.Options())
}
