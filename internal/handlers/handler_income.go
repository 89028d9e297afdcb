package handlers

import (
	"net/http"

	portssvc "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/services"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/dto"
	"github.com/gin-gonic/gin"
)

type incomeHandler struct {
	incomeService portssvc.IncomeSvcFacade
}

// RegisterIncomeRoutes registers routes related to incomes.
func RegisterIncomeRoutes(rg *gin.RouterGroup, incomeService portssvc.IncomeSvcFacade) {
	h := &incomeHandler{incomeService: incomeService}

	incomes := rg.Group("/incomes")
	{
		incomes.POST("", h.createIncome)
		incomes.GET("/:id", h.getIncome)
		incomes.PUT("/:id", h.updateIncome)
		incomes.DELETE("/:id", h.deleteIncome)
	}
}

// createIncome stores an income and, when paid, credits its account.
func (h *incomeHandler) createIncome(c *gin.Context) {
	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.incomeService.CreateIncome(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create income")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaveResultResponse(result, dto.ToIncomeResponse))
}

func (h *incomeHandler) getIncome(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	income, err := h.incomeService.GetIncomeByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve income")
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeResponse(income))
}

func (h *incomeHandler) updateIncome(c *gin.Context) {
	var req dto.UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.incomeService.UpdateIncome(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update income")
		return
	}

	c.JSON(http.StatusOK, dto.ToSaveResultResponse(result, dto.ToIncomeResponse))
}

// deleteIncome answers 400 when reversing a paid income would break the overdraft limit.
func (h *incomeHandler) deleteIncome(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.incomeService.DeleteIncome(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondWithError(c, err, "Failed to delete income")
		return
	}

	c.Status(http.StatusNoContent)
}
