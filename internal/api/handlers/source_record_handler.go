package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/formkit/internal/application"
	"github.com/linskybing/formkit/internal/domain/record"
	"github.com/linskybing/formkit/pkg/response"
)

type SourceRecordHandler struct {
	service *application.SourceRecordService
}

func NewSourceRecordHandler(service *application.SourceRecordService) *SourceRecordHandler {
	return &SourceRecordHandler{service: service}
}

// CreateSourceRecord godoc
// @Summary Submit answers to a form
// @Description Every required question must have a non-empty answer whose question text matches the label exactly.
// @Tags source-records
// @Accept json
// @Produce json
// @Param formId path string true "Form ID (UUID)"
// @Param record body record.CreateSourceRecordDTO true "Responses"
// @Success 201 {object} response.DataResponse{data=record.SourceRecord}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /source-records/{formId} [post]
func (h *SourceRecordHandler) CreateSourceRecord(c *gin.Context) {
	var input record.CreateSourceRecordDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	rec, err := h.service.CreateSourceRecord(c.Param("formId"), input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, response.DataResponse{Data: rec})
}

// ListSourceRecords godoc
// @Summary List submissions of a form
// @Tags source-records
// @Produce json
// @Param formId path string true "Form ID (UUID)"
// @Success 200 {object} response.DataResponse{data=[]record.SourceRecord}
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /source-records/{formId} [get]
func (h *SourceRecordHandler) ListSourceRecords(c *gin.Context) {
	recs, err := h.service.ListSourceRecords(c.Param("formId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: recs})
}
