package registrants

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cadastro/internal/shared/utils/response"
	"cadastro/pkg/logger"
)

type Controller struct {
	service Service
	log     *logger.Logger
}

func NewController(service Service) *Controller {
	return &Controller{
		service: service,
		log:     logger.GetDefault(),
	}
}

func (ctrl *Controller) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Malformed bodies fail the same required-field contract.
		response.Message(c, http.StatusBadRequest, msgRequired)
		return
	}

	_, err := ctrl.service.Register(c.Request.Context(), &req)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			response.Message(c, http.StatusBadRequest, verr.Message)
		case errors.Is(err, ErrDuplicateEmail):
			response.Message(c, http.StatusBadRequest, "Este email já está cadastrado.")
		default:
			ctrl.log.LogHTTPError(c, err, http.StatusInternalServerError)
			response.Message(c, http.StatusInternalServerError, "Erro interno do servidor.")
		}
		return
	}

	response.Message(c, http.StatusOK, "Cadastro realizado com sucesso!")
}

func (ctrl *Controller) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "O id deve ser um número inteiro.")
		return
	}

	registrant, err := ctrl.service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		ctrl.respondLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, registrant)
}

func (ctrl *Controller) GetByEmail(c *gin.Context) {
	registrant, err := ctrl.service.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		ctrl.respondLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, registrant)
}

func (ctrl *Controller) respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		response.Message(c, http.StatusNotFound, "Usuário não encontrado.")
		return
	}
	ctrl.log.LogHTTPError(c, err, http.StatusInternalServerError)
	response.Message(c, http.StatusInternalServerError, "Erro interno do servidor.")
}
