package common

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var Version = "v0.2.0"

var (
	Port          = flag.Int("port", 3000, "the listening port")
	PrintVersion  = flag.Bool("version", false, "print version and exit")
	PrintHelpFlag = flag.Bool("help", false, "print help and exit")
	LogDir        = flag.String("log-dir", "", "specify the log directory")
)

// Storage backend selectors. The backend is chosen once at process start;
// "embedded" keeps file bytes inside the metadata record for deployments
// without a writable filesystem.
const (
	StorageBackendDisk     = "disk"
	StorageBackendEmbedded = "embedded"
)

var (
	MongoURI         = "mongodb://localhost:27017"
	MongoDBName      = "trifile"
	BaseURL          = ""
	UploadPath       = "./uploads"
	StorageBackend   = StorageBackendDisk
	CORSAllowOrigins = []string{"*"}
)

// LoadConfig reads an optional .env file and then the environment into the
// package globals. Flags given on the command line win over environment values.
func LoadConfig() {
	if err := godotenv.Load(); err == nil {
		SysLog("loaded configuration from .env")
	}

	portFlagSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "port" {
			portFlagSet = true
		}
	})
	if v := os.Getenv("PORT"); v != "" && !portFlagSet {
		if p, err := strconv.Atoi(v); err == nil {
			*Port = p
		} else {
			SysError("invalid PORT value, keeping " + strconv.Itoa(*Port) + ": " + v)
		}
	}
	if v := os.Getenv("MONGODB_URI"); v != "" {
		MongoURI = v
	}
	if v := os.Getenv("MONGODB_DB"); v != "" {
		MongoDBName = v
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		BaseURL = v
	}
	if v := os.Getenv("FILE_UPLOAD_PATH"); v != "" {
		UploadPath = v
	}
	if v := os.Getenv("STORAGE_BACKEND"); v != "" {
		StorageBackend = strings.ToLower(v)
	}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		CORSAllowOrigins = origins
	}

	if BaseURL == "" {
		BaseURL = "http://localhost:" + strconv.Itoa(*Port)
	}
	BaseURL = strings.TrimSuffix(BaseURL, "/")
}

func PrintHelp() {
	fmt.Println("trifile " + Version + " - document upload service")
	fmt.Println("Usage: trifile [--port <port>] [--log-dir <log dir>]")
	flag.PrintDefaults()
}
