package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/khoahotran/foliohub/internal/application/usecase/portfolio"
	"github.com/khoahotran/foliohub/pkg/apperror"
)

type PortfolioHandler struct {
	portfolioUseCase *portfolioUC.PortfolioUseCase
}

func NewPortfolioHandler(uc *portfolioUC.PortfolioUseCase) *PortfolioHandler {
	return &PortfolioHandler{portfolioUseCase: uc}
}

// GetPortfolio is the public endpoint: no auth, profile plus visible
// sections for the requested username.
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		c.Error(apperror.NewInvalidInput("Username is required", nil))
		return
	}

	input := portfolioUC.GetPortfolioInput{Username: username}
	output, err := h.portfolioUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, successEnvelope(ToPortfolioDTO(output.Portfolio), "Portfolio fetched successfully"))
}
