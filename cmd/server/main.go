package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/common"
	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/db"
	surveyHttp "github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/http"
	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/survey"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	surveyDbType := os.Getenv(common.EnvKeySurveyDBType)
	switch surveyDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown SURVEY_DB_TYPE: " + surveyDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeySurveyHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeySurveyDefaultRate), 64); err != nil {
		log.Fatal("Invalid SURVEY_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeySurveyDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid SURVEY_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	surveyCore := survey.Survey{
		Db: *dbInstance,
	}
	surveyCore.WithServices(survey.ServiceOpts{
		Drone:     surveyCore.GetIDrone(),
		Mission:   surveyCore.GetIMission(),
		Monitor:   surveyCore.GetIMonitor(),
		Report:    surveyCore.GetIReport(),
		Dashboard: surveyCore.GetIDashboard(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":5000"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &surveyHttp.RestfulServer{
		Server:           gin.Default(),
		Survey:           &surveyCore,
		RateLimiterStore: survey.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
