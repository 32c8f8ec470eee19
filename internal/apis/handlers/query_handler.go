package handlers

import (
	"net/http"

	"askdb-ai/internal/apis/dtos"
	"askdb-ai/internal/services"

	"github.com/gin-gonic/gin"
)

type QueryHandler struct {
	queryService services.QueryService
}

func NewQueryHandler(queryService services.QueryService) *QueryHandler {
	return &QueryHandler{queryService: queryService}
}

// @Summary Ask a natural-language question
// @Description Translate a question to SQL, execute it and return the result
// @Accept json
// @Produce json
// @Param askQueryRequest body dtos.AskQueryRequest true "Ask query request"
// @Success 200 {object} dtos.Response

func (h *QueryHandler) Ask(c *gin.Context) {
	var req dtos.AskQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorMsg := err.Error()
		c.JSON(http.StatusBadRequest, dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	response, err := h.queryService.Ask(c.Request.Context(), &req)
	if err != nil {
		errorMsg := err.Error()
		c.JSON(http.StatusInternalServerError, dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	c.JSON(http.StatusOK, dtos.Response{
		Success: true,
		Data:    response,
	})
}

// @Summary Execute SQL directly
// @Description Sanitize and execute a SQL statement against the database
// @Accept json
// @Produce json
// @Param executeQueryRequest body dtos.ExecuteQueryRequest true "Execute query request"
// @Success 200 {object} dtos.Response

func (h *QueryHandler) Execute(c *gin.Context) {
	var req dtos.ExecuteQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorMsg := err.Error()
		c.JSON(http.StatusBadRequest, dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	response, err := h.queryService.Execute(c.Request.Context(), &req)
	if err != nil {
		errorMsg := err.Error()
		c.JSON(http.StatusInternalServerError, dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	c.JSON(http.StatusOK, dtos.Response{
		Success: true,
		Data:    response,
	})
}

// @Summary Get tables
// @Description List the database's tables and columns
// @Produce json
// @Success 200 {object} dtos.Response

func (h *QueryHandler) GetTables(c *gin.Context) {
	response, err := h.queryService.Tables(c.Request.Context())
	if err != nil {
		errorMsg := err.Error()
		c.JSON(http.StatusInternalServerError, dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	c.JSON(http.StatusOK, dtos.Response{
		Success: true,
		Data:    response,
	})
}
