package http

import (
	"net/http"
	"strconv"

	z "github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"

	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/models"
	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/survey"
)

// PointBody mirrors the GeoJSON point shape of the wire payloads.
type PointBody struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type DroneRequest struct {
	DroneID      string     `json:"droneId"`
	Model        string     `json:"model"`
	BatteryLevel *float64   `json:"batteryLevel"`
	Location     *PointBody `json:"location"`
}

var droneRequestSchema = z.Struct(z.Shape{
	"DroneID": z.String().Required(z.Message("Please add a drone ID")),
	"Model":   z.String().Required(z.Message("Please add drone model")),
})

type DroneStatusRequest struct {
	Status            string `json:"status"`
	AssignedMissionID *uint  `json:"assignedMissionId"`
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func zogErrorMessage(issues z.ZogIssueMap) string {
	for _, fieldIssues := range issues {
		if len(fieldIssues) > 0 {
			return fieldIssues[0].Message
		}
	}
	return "Invalid request"
}

func (rs *RestfulServer) GetDrones(c *gin.Context) {
	drones, err := rs.Survey.Drone.GetDrones()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, len(drones), drones)
}

func (rs *RestfulServer) GetDrone(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondFailure(c, http.StatusNotFound, "Drone not found")
		return
	}

	drone, err := rs.Survey.Drone.GetDrone(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, drone)
}

func (rs *RestfulServer) CreateDrone(c *gin.Context) {
	var req DroneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := droneRequestSchema.Validate(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, zogErrorMessage(err))
		return
	}

	input := models.Drone{
		DroneID:      req.DroneID,
		Model:        req.Model,
		BatteryLevel: 100,
	}
	if req.BatteryLevel != nil {
		input.BatteryLevel = *req.BatteryLevel
	}
	if req.Location != nil && len(req.Location.Coordinates) >= 2 {
		input.Location = models.NewGeoPoint(req.Location.Coordinates[0], req.Location.Coordinates[1])
	}

	drone, err := rs.Survey.Drone.CreateDrone(&input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, drone)
}

func (rs *RestfulServer) UpdateDroneStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondFailure(c, http.StatusNotFound, "Drone not found")
		return
	}

	var req DroneStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	drone, err := rs.Survey.Drone.UpdateDroneStatus(
		id,
		models.DroneStatus(req.Status),
		survey.StatusChangeOpts{AssignedMissionID: req.AssignedMissionID},
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, drone)
}
