package http

import (
	"net/http"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"

	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/models"
	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/survey"
)

type PositionUpdateRequest struct {
	Status          *string    `json:"status"`
	CurrentLocation *PointBody `json:"currentLocation"`
	BatteryLevel    *float64   `json:"batteryLevel"`
}

func (rs *RestfulServer) GetMissionStatus(c *gin.Context) {
	if !rs.CheckKeyLimiter(c.Param("missionId")) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	id, ok := parseIDParam(c, "missionId")
	if !ok {
		respondFailure(c, http.StatusNotFound, "Mission not found")
		return
	}

	snapshot, err := rs.Survey.Monitor.GetSnapshot(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, snapshot)
}

func (rs *RestfulServer) ReportPosition(c *gin.Context) {
	if !rs.CheckKeyLimiter(c.Param("missionId")) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	id, ok := parseIDParam(c, "missionId")
	if !ok {
		respondFailure(c, http.StatusNotFound, "Mission not found")
		return
	}

	var req PositionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := survey.PositionUpdate{
		BatteryLevel: req.BatteryLevel,
	}
	if req.Status != nil {
		status := models.MissionStatus(*req.Status)
		update.Status = &status
	}
	if req.CurrentLocation != nil {
		point := models.GeoPoint{Type: "Point", Coordinates: req.CurrentLocation.Coordinates}
		update.CurrentLocation = &point
	}

	mission, err := rs.Survey.Monitor.ReportPosition(id, &update)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, mission)
}

func (rs *RestfulServer) GetDroneTelemetry(c *gin.Context) {
	droneID := c.Param("id")

	if !rs.CheckKeyLimiter(droneID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	telemetry, err := rs.Survey.Monitor.GetDroneTelemetry(droneID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, telemetry)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	key := c.Param("missionId")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		respondFailure(c, http.StatusBadRequest, zogErrorMessage(err))
		return
	}

	rs.SetLimiter(key, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
