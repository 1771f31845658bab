package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/M-Vasconez/fin/internal/core/domain"
	portssvc "github.com/M-Vasconez/fin/internal/core/ports/services"
	"github.com/M-Vasconez/fin/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerAccountRoutes(v1, services.AccountSvc, services.GoalSvc)
	registerTransferRoutes(v1, services.TransferSvc)
	registerGoalRoutes(v1, services.GoalSvc)
	registerTemplateRoutes(v1, services.TemplateSvc)
	registerTransactionRoutes(v1, services.ReportingSvc)
	registerSettingsRoutes(v1, services.SettingsSvc)
	registerReportingRoutes(v1, services.ReportingSvc)
	registerDataExchangeRoutes(v1, services.DataExchangeSvc)
}

// registerCustomValidators adds binding validators not covered by the
// built-in tags.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("dateformat", func(fl validator.FieldLevel) bool {
		switch domain.DateFormat(fl.Field().String()) {
		case domain.DateFormatDMY, domain.DateFormatMDY, domain.DateFormatYMD:
			return true
		}
		return false
	})
}
