package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"trifile/backend/api/handler"
	"trifile/backend/api/middleware"
	"trifile/backend/api/route"
	"trifile/backend/common"
	"trifile/backend/model"
	"trifile/backend/service"
	"trifile/backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
)

//go:embed public
var widgetFS embed.FS

func main() {
	flag.Parse()
	if *common.PrintVersion {
		println(common.Version)
		os.Exit(0)
	}
	if *common.PrintHelpFlag {
		common.PrintHelp()
		os.Exit(0)
	}
	common.SetupGinLog()
	common.LoadConfig()
	common.SysLog("trifile " + common.Version + " started")
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	repo := model.NewFileRepo(common.MongoURI, common.MongoDBName)
	if err := repo.Init(context.Background()); err != nil {
		// Not fatal: every repository operation retries the connection lazily.
		common.SysError("MongoDB not reachable yet: " + err.Error())
	}

	store, err := newBlobStore()
	if err != nil {
		common.FatalLog(err)
	}
	common.SysLog("storage backend: " + common.StorageBackend)

	svc := service.NewFileService(repo, store, common.BaseURL)
	files := handler.NewFileHandler(svc)

	server := gin.Default()
	server.Use(middleware.CORS())
	server.MaxMultipartMemory = service.MaxUploadSize
	route.SetRouter(server, files, widgetFS)

	port := strconv.Itoa(*common.Port)
	common.SysLog("Server listening on port: " + port)

	setupGracefulShutdown(repo)

	if err := server.Run(":" + port); err != nil {
		log.Fatal("failed to start server: " + err.Error())
	}
}

// newBlobStore selects the persistence strategy once for the whole process.
func newBlobStore() (storage.BlobStore, error) {
	switch common.StorageBackend {
	case common.StorageBackendDisk:
		return storage.NewDiskStore(afero.NewOsFs(), common.UploadPath)
	case common.StorageBackendEmbedded:
		return storage.NewEmbeddedStore(), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", common.StorageBackend)
	}
}

// setupGracefulShutdown registers signal handlers to ensure clean shutdown
func setupGracefulShutdown(repo *model.FileRepo) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		common.SysLog("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repo.Close(ctx); err != nil {
			common.SysError("error closing repository: " + err.Error())
		}

		os.Exit(0)
	}()
}
