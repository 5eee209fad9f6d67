package routes

import (
	"log"
	"net/http"

	_ "checkout_relay/docs" // swagger spec
	"checkout_relay/internal/adapter/http/handlers"
	"checkout_relay/pkg"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Handlers struct {
	Payment *handlers.PaymentHandler
	Webhook *handlers.WebhookHandler
}

type Options struct {
	ServiceName    string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter builds the HTTP surface: the two payment relays, the webhook
// receiver, /ping and the swagger UI.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	setMiddlewares(router, opts.ServiceName)

	router.NoMethod(func(c *gin.Context) {
		appErr := pkg.NewDomainErrorSimple("METHOD_NOT_ALLOWED", "Method not allowed", http.StatusMethodNotAllowed)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
	router.NoRoute(func(c *gin.Context) {
		appErr := pkg.NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	root := router.Group("")
	addPingRoutes(root)
	addPaymentRoutes(root, h.Payment, rateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
	addWebhookRoutes(root, h.Webhook)

	return router
}

func setMiddlewares(router *gin.Engine, serviceName string) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
	if serviceName != "" {
		router.Use(otelgin.Middleware(serviceName))
	}
	router.Use(cors())
}
