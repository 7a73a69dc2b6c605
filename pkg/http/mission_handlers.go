package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"

	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/common"
	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/models"
	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/survey"
)

type LocationBody struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
	Address     string    `json:"address"`
}

type MissionRequest struct {
	Name            string       `json:"name"`
	Location        LocationBody `json:"location"`
	StartTime       time.Time    `json:"startTime"`
	RecurrenceType  string       `json:"recurrenceType"`
	FlightPath      []PointBody  `json:"flightPath"`
	FlightAltitude  float64      `json:"flightAltitude"`
	PatternType     string       `json:"patternType"`
	SensorType      string       `json:"sensorType"`
	AssignedDroneID *uint        `json:"assignedDroneId"`
}

var missionRequestSchema = z.Struct(z.Shape{
	"Name": z.String().Required(z.Message("Please add a mission name")),
	"Location": z.Struct(z.Shape{
		"Coordinates": z.Slice(z.Float64()).Min(2, z.Message("Please add location coordinates")),
		"Address":     z.String().Required(z.Message("Please add an address")),
	}),
	"StartTime": z.Time().Required(z.Message("Please add a start time")),
	"FlightPath": z.Slice(z.Struct(z.Shape{
		"Coordinates": z.Slice(z.Float64()).Min(2, z.Message("Please add flight path coordinates")),
	})).Min(1, z.Message("Please add flight path coordinates")),
	"FlightAltitude": z.Float64().Required(z.Message("Please add flight altitude in meters")).
		GT(0, z.Message("Please add flight altitude in meters")),
	"PatternType": z.String().Required(z.Message("Please specify pattern type")).
		OneOf([]string{"Grid", "Crosshatch", "Perimeter"}, z.Message("Please specify pattern type")),
	"SensorType": z.String().Required(z.Message("Please specify sensor type")).
		OneOf([]string{"RGB", "Thermal", "Multispectral", "LiDAR"}, z.Message("Please specify sensor type")),
})

func flightPathFromBody(path []PointBody) []models.GeoPoint {
	return common.Mapper(path, func(p PointBody) models.GeoPoint {
		if len(p.Coordinates) >= 2 {
			return models.NewGeoPoint(p.Coordinates[0], p.Coordinates[1])
		}
		return models.GeoPoint{Type: "Point", Coordinates: p.Coordinates}
	})
}

func (rs *RestfulServer) GetMissions(c *gin.Context) {
	missions, err := rs.Survey.Mission.GetMissions()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, len(missions), missions)
}

func (rs *RestfulServer) GetMission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondFailure(c, http.StatusNotFound, "Mission not found")
		return
	}

	mission, err := rs.Survey.Mission.GetMission(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, mission)
}

func (rs *RestfulServer) CreateMission(c *gin.Context) {
	var req MissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := missionRequestSchema.Validate(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, zogErrorMessage(err))
		return
	}

	spec := survey.MissionSpec{
		Name: req.Name,
		Location: models.MissionLocation{
			Type:        "Point",
			Coordinates: req.Location.Coordinates,
			Address:     req.Location.Address,
		},
		StartTime:       req.StartTime,
		RecurrenceType:  models.RecurrenceType(req.RecurrenceType),
		FlightPath:      flightPathFromBody(req.FlightPath),
		FlightAltitude:  req.FlightAltitude,
		PatternType:     models.PatternType(req.PatternType),
		SensorType:      models.SensorType(req.SensorType),
		AssignedDroneID: req.AssignedDroneID,
	}

	mission, err := rs.Survey.Mission.CreateMission(&spec)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, mission)
}

// UpdateMissionRequest fields are pointers so an absent field stays nil and
// the patch leaves it untouched.
type UpdateMissionRequest struct {
	Name            *string       `json:"name"`
	Location        *LocationBody `json:"location"`
	StartTime       *time.Time    `json:"startTime"`
	RecurrenceType  *string       `json:"recurrenceType"`
	FlightPath      []PointBody   `json:"flightPath"`
	FlightAltitude  *float64      `json:"flightAltitude"`
	PatternType     *string       `json:"patternType"`
	SensorType      *string       `json:"sensorType"`
	Status          *string       `json:"status"`
	AssignedDroneID *uint         `json:"assignedDroneId"`
}

func (rs *RestfulServer) UpdateMission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondFailure(c, http.StatusNotFound, "Mission not found")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var req UpdateMissionRequest
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := survey.MissionPatch{
		Name:            req.Name,
		StartTime:       req.StartTime,
		FlightAltitude:  req.FlightAltitude,
		AssignedDroneID: req.AssignedDroneID,
	}
	if req.Location != nil {
		patch.Location = &models.MissionLocation{
			Type:        "Point",
			Coordinates: req.Location.Coordinates,
			Address:     req.Location.Address,
		}
	}
	if req.RecurrenceType != nil {
		recurrence := models.RecurrenceType(*req.RecurrenceType)
		patch.RecurrenceType = &recurrence
	}
	if req.FlightPath != nil {
		patch.FlightPath = flightPathFromBody(req.FlightPath)
	}
	if req.PatternType != nil {
		pattern := models.PatternType(*req.PatternType)
		patch.PatternType = &pattern
	}
	if req.SensorType != nil {
		sensor := models.SensorType(*req.SensorType)
		patch.SensorType = &sensor
	}
	if req.Status != nil {
		status := models.MissionStatus(*req.Status)
		patch.Status = &status
	}
	// "assignedDroneId": null means release, absence means leave alone
	if _, present := raw["assignedDroneId"]; present && req.AssignedDroneID == nil {
		patch.ClearAssignedDrone = true
	}

	mission, err := rs.Survey.Mission.UpdateMission(id, &patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, mission)
}

func (rs *RestfulServer) DeleteMission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondFailure(c, http.StatusNotFound, "Mission not found")
		return
	}

	if err := rs.Survey.Mission.DeleteMission(id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{})
}
