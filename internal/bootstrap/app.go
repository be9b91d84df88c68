package bootstrap

import (
	"context"
	"database/sql"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/olivere/elastic/v7"

	"github.com/alyonazakharova/excel-constructor/internal/config"
	"github.com/alyonazakharova/excel-constructor/internal/database"
	"github.com/alyonazakharova/excel-constructor/internal/handler"
	"github.com/alyonazakharova/excel-constructor/internal/logger"
	"github.com/alyonazakharova/excel-constructor/internal/source"
	"github.com/alyonazakharova/excel-constructor/pkg/sheetbuilder"
)

type App struct {
	Echo *echo.Echo
	DB   *sql.DB
	ES   *elastic.Client
}

func NewApp() *App {
	return &App{Echo: echo.New()}
}

// Initialize wires config, logging, optional datasets, and routes. The
// Postgres and Elasticsearch datasets are best-effort: if a store is not
// reachable the server still serves the ad-hoc export endpoints.
func (a *App) Initialize(ctx context.Context) error {
	config.LoadEnvConfig()
	logger.Init(config.DefaultEnvConfig.LOG_FILE_PATH)
	logger.Info(ctx, "Environment variables loaded successfully")

	exportHandler := handler.NewExportHandler(
		sheetbuilder.New(),
		config.DefaultEnvConfig.REPORT_TEMPLATE_PATH,
	)

	db, err := database.NewPostgresDB(ctx, database.Config{
		Host:            config.DefaultEnvConfig.DB_HOST,
		Port:            config.DefaultEnvConfig.DB_PORT,
		User:            config.DefaultEnvConfig.DB_USER,
		Password:        config.DefaultEnvConfig.DB_PASSWORD,
		DBName:          config.DefaultEnvConfig.DB_NAME,
		SSLMode:         config.DefaultEnvConfig.DB_SSL_MODE,
		MaxOpenConns:    config.DefaultEnvConfig.DB_MAX_OPEN_CONNS,
		MaxIdleConns:    config.DefaultEnvConfig.DB_MAX_IDLE_CONNS,
		ConnMaxLifetime: config.DefaultEnvConfig.DB_CONN_MAX_LIFETIME,
	})
	if err != nil {
		logger.Warn(ctx, "Postgres unavailable, employees dataset disabled: %v", err)
	} else {
		a.DB = db
		exportHandler.RegisterDataset("employees",
			source.NewPostgresSource(db, config.DefaultEnvConfig.DB_EXPORT_QUERY))
		logger.Info(ctx, "Registered employees dataset")
	}

	es, err := database.NewElasticClient(config.DefaultEnvConfig.ES_URL)
	if err != nil {
		logger.Warn(ctx, "Elasticsearch unavailable, employee-search dataset disabled: %v", err)
	} else {
		a.ES = es
		exportHandler.RegisterDataset("employee-search",
			source.NewElasticSource(es, config.DefaultEnvConfig.ES_INDEX,
				[]string{"emp_no", "first_name", "last_name", "gender", "hire_date"}))
		logger.Info(ctx, "Registered employee-search dataset")
	}

	a.RegisterMiddlewares()
	a.RegisterRoutes(exportHandler)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(exportHandler *handler.ExportHandler) {
	a.Echo.POST("/export", exportHandler.Export)

	exportGroup := a.Echo.Group("/export")
	exportGroup.GET("/datasets/:name", exportHandler.ExportDataset)
	exportGroup.POST("/template", exportHandler.ExportTemplate)
}

func (a *App) Run() error {
	if a.DB != nil {
		defer a.DB.Close()
	}
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}
