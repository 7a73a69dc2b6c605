package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/common"
	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/survey"
)

type RestfulServer struct {
	Server           *gin.Engine
	Survey           *survey.Survey
	RateLimiterStore *survey.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(key string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(key)
	}
}

func (rs *RestfulServer) CheckKeyLimiter(key string) bool {
	limiter := rs.GetLimiter(key)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(key string, keyRate float64, keyBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(key, rate.Limit(keyRate), keyBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/api")

	drones := api.Group("/drones")
	{
		drones.GET("", rs.GetDrones)
		drones.POST("", rs.CreateDrone)
		drones.GET("/:id", rs.GetDrone)
		drones.PUT("/:id/status", rs.UpdateDroneStatus)
		// telemetry resolves :id as the human-assigned droneId, not the
		// internal record id
		drones.GET("/:id/telemetry", rs.GetDroneTelemetry)
	}

	missions := api.Group("/missions")
	{
		missions.GET("", rs.GetMissions)
		missions.POST("", rs.CreateMission)
		missions.GET("/:id", rs.GetMission)
		missions.PUT("/:id", rs.UpdateMission)
		missions.DELETE("/:id", rs.DeleteMission)
	}

	monitor := api.Group("/monitor")
	{
		monitor.GET("/:missionId", rs.GetMissionStatus)
		monitor.POST("/:missionId/update", rs.ReportPosition)
		monitor.POST("/:missionId/limiter", rs.PostLimiter)
	}

	reports := api.Group("/reports")
	{
		reports.GET("", rs.GetReports)
		reports.GET("/:id", rs.GetReportByMission)
		reports.GET("/:id/download", rs.DownloadReport)
		reports.POST("/generate/:id", rs.GenerateReport)
	}

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/stats", rs.GetStats)
		dashboard.GET("/recent", rs.GetRecentMissions)
		dashboard.GET("/monthly-activity", rs.GetMonthlyActivity)
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Response envelope: {success: true, data} on success, {success: false,
// error} on failure. The dashboard branches on "success".

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondList(c *gin.Context, count int, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count, "data": data})
}

func respondFailure(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

func respondServiceError(c *gin.Context, err error) {
	var validationErr *survey.ValidationError
	var notFoundErr *survey.NotFoundError
	var conflictErr *survey.ConflictError

	switch {
	case errors.As(err, &validationErr):
		respondFailure(c, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &notFoundErr):
		respondFailure(c, http.StatusNotFound, notFoundErr.Message)
	case errors.As(err, &conflictErr):
		respondFailure(c, http.StatusBadRequest, conflictErr.Message)
	default:
		common.GetLogger().Error("unexpected service error: " + err.Error())
		respondFailure(c, http.StatusInternalServerError, "Server Error")
	}
}
