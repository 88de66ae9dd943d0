package registrants

import (
	"github.com/gin-gonic/gin"
)

// Router handles registrant-related routes
type Router struct {
	controller *Controller
}

func NewRouter(controller *Controller) *Router {
	return &Router{
		controller: controller,
	}
}

// SetupRoutes registers the registration and lookup routes. Paths live at the
// engine root to keep the original public contract.
func (rr *Router) SetupRoutes(engine *gin.Engine) {
	engine.POST("/cadastro", rr.controller.Register)

	usuario := engine.Group("/usuario")
	{
		usuario.GET("/id/:id", rr.controller.GetByID)
		usuario.GET("/email/:email", rr.controller.GetByEmail)
	}
}
