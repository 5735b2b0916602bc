package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/seungyeah/tootodo-be/internal/adapter/http/dto"
	"github.com/seungyeah/tootodo-be/internal/adapter/http/mapper"
	"github.com/seungyeah/tootodo-be/internal/adapter/http/middleware"
	"github.com/seungyeah/tootodo-be/internal/adapter/http/validation"
	"github.com/seungyeah/tootodo-be/internal/core/domain"
	"github.com/seungyeah/tootodo-be/internal/core/ports"
	"github.com/seungyeah/tootodo-be/pkg/apierrors"
)

type PropertyHandler struct {
	propertyService ports.PropertyService
}

func NewPropertyHandler(propertyService ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	taskID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPropertyPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreatePropertyInput(taskID, req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPropertyPayload, lang),
		)
		return
	}

	property, err := h.propertyService.CreateProperty(c.Request.Context(), userID, input)
	if err != nil {
		h.writePropertyError(c, lang, err, apierrors.MsgFailCreateProperty)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToPropertyItem(property))
}

func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	propertyID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPropertyID, lang),
		)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPropertyPayload, lang),
		)
		return
	}

	var req dto.UpdatePropertyRequest
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPropertyPayload, lang),
		)
		return
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPropertyPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdatePropertyInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPropertyPayload, lang),
		)
		return
	}

	property, err := h.propertyService.UpdateProperty(c.Request.Context(), propertyID, userID, input)
	if err != nil {
		h.writePropertyError(c, lang, err, apierrors.MsgFailUpdateProperty)
		return
	}

	c.JSON(http.StatusOK, mapper.ToPropertyItem(property))
}

func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	propertyID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPropertyID, lang),
		)
		return
	}

	if err := h.propertyService.DeleteProperty(c.Request.Context(), propertyID, userID); err != nil {
		h.writePropertyError(c, lang, err, apierrors.MsgFailDeleteProperty)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PropertyHandler) writePropertyError(c *gin.Context, lang string, err error, fallbackKey string) {
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
	case errors.Is(err, domain.ErrPropertyNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgPropertyNotFound, lang),
		)
	case errors.As(err, &validationErr):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPropertyPayload, lang),
		)
	default:
		zap.L().Error("property operation failed", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, fallbackKey, lang),
		)
	}
}
