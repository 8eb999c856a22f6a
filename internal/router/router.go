package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bahikhata/internal/config"
	"bahikhata/internal/handler"
	"bahikhata/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	taxH *handler.TaxHandler,
	returnsH *handler.ReturnsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	handler.RegisterBindings()

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Per-transaction tax computations
	tax := v1.Group("/tax")
	tax.POST("/gst", taxH.ComputeGST)
	tax.POST("/gstin/validate", taxH.ValidateGSTIN)
	tax.POST("/tds", taxH.ComputeTDS)
	tax.POST("/tcs", taxH.ComputeTCS)
	tax.GET("/ratecard", taxH.GetRateCard)

	// Statutory return composition
	returns := v1.Group("/returns")
	returns.POST("/gstr1", returnsH.GSTR1)
	returns.POST("/gstr3b", returnsH.GSTR3B)
	returns.POST("/form26q", returnsH.Form26Q)
	returns.POST("/form24q", returnsH.Form24Q)
	returns.POST("/ewaybill", returnsH.EWayBill)
	returns.POST("/certificate", returnsH.Certificate)

	return r
}
