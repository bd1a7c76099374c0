package main

import (
	"context"
	"math/rand"
	"os"
	"strconv"
	"time"

	"califraud/cmd/internal/domain/sqlite"
	"califraud/cmd/internal/domain/sqlite/repository"
	handler2 "califraud/cmd/internal/http/handler"
	"califraud/cmd/internal/metrics"
	"califraud/cmd/internal/seed"
	"califraud/cmd/internal/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const envVarsPrefix = "/califraud/prod/"

func main() {
	validate := validator.New()

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	// Init SQLite
	db, err := sqlite.Init(envString("CALIFRAUD_DB", "califraud.db"))
	if err != nil {
		panic(err)
	}

	caseRepo := repository.NewCaseRepository(db)

	// Generator + loader. Bad reference tables abort here, before any
	// record is generated.
	gen, err := seed.NewGenerator(seed.DefaultTables(),
		rand.New(rand.NewSource(time.Now().UnixNano())), time.Now().UTC())
	if err != nil {
		panic(err)
	}
	seeder := seed.NewSeeder(caseRepo, gen, envInt("CALIFRAUD_SEED_COUNT", seed.DefaultCaseCount))

	// Auto-seed an empty database. A failed load is logged, not fatal:
	// the server keeps serving whatever batches made it in.
	if total, loaded, serr := seeder.Seed(false); serr != nil {
		log.Errorf("startup seed failed, serving partial data: %v", serr)
	} else if loaded {
		log.Infof("Seeded %d fraud cases", total)
	} else {
		log.Infof("Database has %d cases, skipping seed", total)
	}

	// Getting services
	caseService := service.NewCaseService(caseRepo, validate)
	analyticsService := service.NewAnalyticsService(caseRepo, validate)
	geoService := service.NewGeoService(caseRepo, validate)
	seedService := service.NewSeedService(seeder)

	// Getting handlers
	caseRoutes := handler2.NewCaseDefault(caseService)
	analyticsRoutes := handler2.NewAnalyticsDefault(analyticsService)
	geoRoutes := handler2.NewGeoDefault(geoService)
	adminRoutes := handler2.NewAdminDefault(seedService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(metrics.Middleware())

	// Cases
	e.GET("/api/cases", caseRoutes.GetCases)
	e.GET("/api/cases/scheme-types", caseRoutes.GetSchemeTypes)
	e.GET("/api/cases/counties", caseRoutes.GetCounties)
	e.GET("/api/cases/:id", caseRoutes.GetCase)

	// Analytics
	e.GET("/api/analytics/summary", analyticsRoutes.GetSummary)
	e.GET("/api/analytics/heatmap", analyticsRoutes.GetHeatmap)
	e.GET("/api/analytics/timeline", analyticsRoutes.GetTimeline)

	// Geo
	e.GET("/api/geo/counties", geoRoutes.GetCountyCentroids)
	e.GET("/api/geo/points", geoRoutes.GetCasePoints)
	e.GET("/api/geo/california-outline", geoRoutes.GetStateOutline)

	// Admin
	e.POST("/api/admin/seed", adminRoutes.SeedDatabase)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if err := e.Start(envString("CALIFRAUD_ADDR", ":7070")); err != nil {
		panic(err)
	}
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return n
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
