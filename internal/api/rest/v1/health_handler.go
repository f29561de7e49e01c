package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler defines the methods for handling the liveness endpoint in the API
type HealthHandler interface {
	Status(ctx *gin.Context)
}

// healthHandler struct holds the database handle pinged on each check
type healthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new instance of healthHandler
func NewHealthHandler(db *gorm.DB) HealthHandler {
	return &healthHandler{
		db: db,
	}
}

// Status godoc
// @Summary Health check
// @Description Reports whether the API is up and can reach its database
// @Tags Health
// @Produce json
// @Success 200 {object} InfoResponse
// @Failure 503 {object} ErrorResponse
// @Router /health [get]
func (handler *healthHandler) Status(ctx *gin.Context) {
	sqlDB, err := handler.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "database unreachable"
		ctx.JSON(http.StatusServiceUnavailable, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = "ok"
	ctx.JSON(http.StatusOK, infoResponse)
}
