package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/formkit/internal/application"
	"github.com/linskybing/formkit/internal/domain/form"
	"github.com/linskybing/formkit/pkg/response"
)

type FormHandler struct {
	service *application.FormService
}

func NewFormHandler(service *application.FormService) *FormHandler {
	return &FormHandler{service: service}
}

// GetFormByID godoc
// @Summary Get a form with its questions
// @Tags forms
// @Produce json
// @Param id path string true "Form ID (UUID)"
// @Success 200 {object} response.DataResponse{data=form.Form}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /forms/{id} [get]
func (h *FormHandler) GetFormByID(c *gin.Context) {
	f, err := h.service.GetForm(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: f})
}

// ListForms godoc
// @Summary List forms
// @Description Returns id, name and timestamps of every form, newest first.
// @Tags forms
// @Produce json
// @Success 200 {object} response.DataResponse{data=[]form.FormSummary}
// @Failure 500 {object} response.ErrorResponse
// @Router /forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	forms, err := h.service.ListForms()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: forms})
}

// CreateForm godoc
// @Summary Create a form
// @Tags forms
// @Accept json
// @Produce json
// @Param form body form.CreateFormDTO true "Form definition"
// @Success 201 {object} response.DataResponse{data=form.Form}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var input form.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	f, err := h.service.CreateForm(input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, response.DataResponse{Data: f})
}
