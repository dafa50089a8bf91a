package router

import (
	"time"

	"github.com/willinthon-tech/maquinas/internal/config"
	"github.com/willinthon-tech/maquinas/internal/handler"
	"github.com/willinthon-tech/maquinas/internal/infra"
	"github.com/willinthon-tech/maquinas/internal/middleware"
	"github.com/willinthon-tech/maquinas/internal/repository"
	"github.com/willinthon-tech/maquinas/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// rdb may be nil (no options cache); cacheCB guards the Redis calls.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, cacheCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.Origins()...))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.APIRateLimit, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	tablaRepo := repository.NewTablaRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	permisoRepo := repository.NewPermisoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	cache := service.NewOpcionesCache(rdb, cacheCB, time.Duration(cfg.OpcionesCacheTTLSeconds)*time.Second)
	tablaSvc := service.NewTablaService(tablaRepo, cache)
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	permisoSvc := service.NewPermisoService(permisoRepo)
	exportSvc := service.NewExportService(tablaRepo, cfg.ExportTitulo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	tablasH := handler.NewTablasHandler(tablaSvc)
	permisosH := handler.NewPermisosHandler(permisoSvc)
	exportarH := handler.NewExportarHandler(exportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, cacheCB))
	r.POST("/api/login", middleware.LoginRateLimiter(cfg.LoginRateLimit), authH.Login)

	var lectura, escritura []gin.HandlerFunc
	if cfg.AuthRequired {
		jwtMW := middleware.JWTAuth(cfg.JWTSecret)
		lectura = []gin.HandlerFunc{jwtMW}
		escritura = []gin.HandlerFunc{jwtMW, middleware.RequireRole(cfg.WriteRoles()...)}
	}

	api := r.Group("/api")
	leer := api.Group("", lectura...)
	{
		leer.GET("/validar/:tabla/:campo/:valor", tablasH.Validar)
		leer.GET("/permisos_sucursal/:id", permisosH.Obtener)
		leer.GET("/options/:tabla", tablasH.Opciones)
		leer.GET("/exportar/maquina", exportarH.Inventario)
		leer.GET("/:tabla", tablasH.Listar)
		leer.GET("/:tabla/:id", tablasH.ObtenerPorID)
	}
	escribir := api.Group("", escritura...)
	{
		escribir.POST("/asignar_sucursales", permisosH.Asignar)
		escribir.POST("/:tabla", tablasH.Crear)
		escribir.PUT("/:tabla/:id", tablasH.Actualizar)
		escribir.DELETE("/:tabla/:id", tablasH.Eliminar)
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
