package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DrouetDanilo/Inventia/internal/config"
	"github.com/DrouetDanilo/Inventia/internal/handler"
	"github.com/DrouetDanilo/Inventia/internal/infra"
	"github.com/DrouetDanilo/Inventia/internal/middleware"
	"github.com/DrouetDanilo/Inventia/internal/repository"
	"github.com/DrouetDanilo/Inventia/internal/service"
	"github.com/DrouetDanilo/Inventia/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	offClient := infra.NewOpenFoodFactsClient(cfg.OpenFoodFactsURL)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	distribuidorRepo := repository.NewDistribuidorRepository(db)
	planRepo := repository.NewPlanRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	planSvc := service.NewPlanService(planRepo)
	catalogoSvc := service.NewCatalogoService(catalogoRepo, planRepo)
	productoSvc := service.NewProductoService(productoRepo, catalogoRepo)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo)
	resumenSvc := service.NewResumenService(catalogoRepo, productoRepo, ventaRepo, planRepo)
	distribuidorSvc := service.NewDistribuidorService(distribuidorRepo, catalogoRepo, dispatcher, cfg)
	asistenteSvc := service.NewAsistenteService(catalogoRepo, productoRepo, productoSvc, ventaSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)
	productosH := handler.NewProductosHandler(productoSvc, ventaSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	resumenH := handler.NewResumenHandler(resumenSvc)
	distribuidoresH := handler.NewDistribuidoresHandler(distribuidorSvc)
	planH := handler.NewPlanHandler(planSvc)
	asistenteH := handler.NewAsistenteHandler(asistenteSvc)
	scannerH := handler.NewScannerHandler(offClient, rdb, productoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/registro", middleware.LoginRateLimiter(), authH.Registro)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes — every record is scoped to the token's account
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		catalogo := v1.Group("/catalogo")
		{
			catalogo.POST("", catalogoH.Crear)
			catalogo.GET("", catalogoH.Listar)
			catalogo.GET("/marcas", catalogoH.Marcas)
		}

		productos := v1.Group("/productos")
		{
			productos.POST("", productosH.Ingresar)
			productos.GET("", productosH.Listar)
			productos.POST("/vender", productosH.Vender)
			productos.POST("/eliminar", productosH.Eliminar)
		}

		ventas := v1.Group("/ventas")
		{
			ventas.GET("", ventasH.Historial)
			ventas.GET("/resumen", ventasH.Resumen)
			ventas.GET("/export", ventasH.Export)
		}

		resumen := v1.Group("/resumen")
		{
			resumen.GET("", resumenH.Dashboard)
			resumen.GET("/reabastecer", resumenH.Reabastecer)
			resumen.GET("/mas-vendidos", resumenH.MasVendidos)
			resumen.GET("/reporte", resumenH.Reporte)
		}

		distribuidores := v1.Group("/distribuidores")
		{
			distribuidores.POST("", distribuidoresH.Crear)
			distribuidores.GET("", distribuidoresH.Listar)
			distribuidores.DELETE("/:id", distribuidoresH.Eliminar)
			distribuidores.POST("/:id/pedido", distribuidoresH.Pedido)
		}

		v1.GET("/plan", planH.Obtener)
		v1.PUT("/plan", planH.Cambiar)

		v1.POST("/asistente/comando", asistenteH.Comando)

		scanner := v1.Group("/scanner")
		{
			scanner.GET("/:codigo", scannerH.Prefill)
			scanner.POST("/ingreso", scannerH.Ingreso)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
