package main

import (
	"fmt"
	"log/slog"
	"os"

	"parcelhub/cmd"
	httpin "parcelhub/internal/adapters/in/http"
	"parcelhub/internal/adapters/out/postgres/batchrepo"
	"parcelhub/internal/adapters/out/postgres/catalogrepo"
	"parcelhub/internal/adapters/out/postgres/dispatchrepo"
	"parcelhub/internal/adapters/out/postgres/packagerepo"
	"parcelhub/internal/adapters/out/postgres/pullrepo"
	"parcelhub/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateGetDispatchSummaryQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&packagerepo.PackageDTO{},
		&pullrepo.PullDTO{},
		&batchrepo.BatchDTO{},
		&catalogrepo.LocationDTO{},
		&catalogrepo.TransportAgencyDTO{},
		&catalogrepo.DeliveryAgencyDTO{},
		&dispatchrepo.DispatchDTO{},
		&dispatchrepo.DispatchPullDTO{},
		&dispatchrepo.DispatchPackageDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(httpin.ServerHandlers{
		CreatePackage:        app.CreateCreatePackageCommandHandler(),
		ChangePackageStatus:  app.CreateChangePackageStatusCommandHandler(),
		AddPackageNote:       app.CreateAddPackageNoteCommandHandler(),
		MigratePackage:       app.CreateMigratePackageCommandHandler(),
		CreateChildPackage:   app.CreateCreateChildPackageCommandHandler(),
		AssociateChildren:    app.CreateAssociateChildrenCommandHandler(),
		CreatePull:           app.CreateCreatePullCommandHandler(),
		AddPullToBatch:       app.CreateAddPullToBatchCommandHandler(),
		CreateBatch:          app.CreateCreateBatchCommandHandler(),
		AutoDistribute:       app.CreateAutoDistributeCommandHandler(),
		CreateDispatch:       app.CreateCreateDispatchCommandHandler(),
		ChangeDispatchStatus: app.CreateChangeDispatchStatusCommandHandler(),
		CreateLocation:       app.CreateCreateLocationCommandHandler(),
		CreateTransport:      app.CreateCreateTransportAgencyCommandHandler(),
		CreateDelivery:       app.CreateCreateDeliveryAgencyCommandHandler(),
		GetAvailablePackages: app.CreateGetAvailablePackagesQueryHandler(),
		GetPullStatistics:    app.CreateGetPullStatisticsQueryHandler(),
		GetDispatchSummary:   app.CreateGetDispatchSummaryQueryHandler(),
		GetPackageShipment:   app.CreateGetPackageShipmentQueryHandler(),
	})

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
