package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/survey/mocks"
	_ "github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/testing"

	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/common"
	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/db"
	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/models"
	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/survey"
)

func setupTestServer() *RestfulServer {
	surveyObj := survey.Survey{
		Db: *db.GetInstance(db.UseMemorySqliteDialector()),
	}
	surveyObj.WithRand(rand.New(rand.NewSource(42)))
	surveyObj.WithServices(survey.ServiceOpts{
		Drone:     surveyObj.GetIDrone(),
		Mission:   surveyObj.GetIMission(),
		Monitor:   surveyObj.GetIMonitor(),
		Report:    surveyObj.GetIReport(),
		Dashboard: surveyObj.GetIDashboard(),
	})

	rs := &RestfulServer{
		Server: gin.Default(),
		Survey: &surveyObj,
		// default we use no limiter, if need, later assign it rs.RateLimiterStore = survey.NewRateLimiterStore(...)
	}

	rs.Setup()

	return rs
}

type envelope struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doJSON(rs *RestfulServer, method, path string, payload any) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != nil {
		body, _ := json.Marshal(payload)
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func validMissionBody(assignedDroneID *uint) gin.H {
	body := gin.H{
		"name": "Orchard survey " + uuid.NewString()[:8],
		"location": gin.H{
			"type":        "Point",
			"coordinates": []float64{-122.42, 37.77},
			"address":     "100 Field Road",
		},
		"startTime": time.Now().Add(2 * time.Hour).Format(time.RFC3339),
		"flightPath": []gin.H{
			{"type": "Point", "coordinates": []float64{-122.42, 37.77}},
			{"type": "Point", "coordinates": []float64{-122.43, 37.78}},
		},
		"flightAltitude": 60,
		"patternType":    "Grid",
		"sensorType":     "RGB",
	}
	if assignedDroneID != nil {
		body["assignedDroneId"] = *assignedDroneID
	}
	return body
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer()

	w := doJSON(rs, "GET", "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestDroneEndpoints(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	droneID := uuid.NewString()
	w := doJSON(rs, "POST", "/api/drones", DroneRequest{DroneID: droneID, Model: "SkyHawk X1"})
	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var created models.Drone
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, droneID, created.DroneID)
	// battery defaults to 100 when omitted
	assert.Equal(t, 100.0, created.BatteryLevel)
	assert.Equal(t, models.DroneStatusIdle, created.Status)

	// duplicate registration
	w = doJSON(rs, "POST", "/api/drones", DroneRequest{DroneID: droneID, Model: "SkyHawk X1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env = decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "A drone with this ID already exists", env.Error)

	// list contains the new drone
	w = doJSON(rs, "GET", "/api/drones", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env = decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.GreaterOrEqual(t, env.Count, 1)

	// fetch by record id
	w = doJSON(rs, "GET", "/api/drones/"+strconv.Itoa(int(created.ID)), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// unknown id
	w = doJSON(rs, "GET", "/api/drones/999999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	env = decodeEnvelope(t, w)
	assert.Equal(t, "Drone not found", env.Error)
}

func TestCreateDrone_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	{
		rs := setupTestServer()
		// missing drone id should be rejected with the field message
		w := doJSON(rs, "POST", "/api/drones", gin.H{"model": "SkyHawk X1"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "Please add a drone ID", env.Error)
	}

	{
		rs := setupTestServer()
		req := httptest.NewRequest("POST", "/api/drones", bytes.NewReader([]byte("not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		rs := setupTestServer()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockIDrone := mocks.NewMockIDrone(ctrl)
		rs.Survey.Drone = mockIDrone
		mockIDrone.EXPECT().
			GetDrones().
			Return(nil, fmt.Errorf("just causing error")).
			Times(1)

		w := doJSON(rs, "GET", "/api/drones", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "Server Error", env.Error)
	}
}

func TestMissionLifecycle(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	// register a drone to fly the mission
	w := doJSON(rs, "POST", "/api/drones", DroneRequest{DroneID: uuid.NewString(), Model: "SkyHawk X1"})
	require.Equal(t, http.StatusCreated, w.Code)
	var drone models.Drone
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &drone))

	// create the mission with the drone attached
	w = doJSON(rs, "POST", "/api/missions", validMissionBody(&drone.ID))
	require.Equal(t, http.StatusCreated, w.Code)
	var mission models.Mission
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &mission))
	assert.Equal(t, models.MissionStatusInProgress, mission.Status)
	require.NotNil(t, mission.AssignedDroneID)
	assert.Equal(t, drone.ID, *mission.AssignedDroneID)

	missionPath := "/api/missions/" + strconv.Itoa(int(mission.ID))

	// the drone side of the link is visible through the API too
	w = doJSON(rs, "GET", "/api/drones/"+strconv.Itoa(int(drone.ID)), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var droneView survey.DroneView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &droneView))
	assert.Equal(t, models.DroneStatusInMission, droneView.Status)
	require.NotNil(t, droneView.AssignedMission)
	assert.Equal(t, mission.ID, droneView.AssignedMission.ID)

	// "assignedDroneId": null releases the drone and reverts the mission
	req := httptest.NewRequest("PUT", missionPath, bytes.NewReader([]byte(`{"assignedDroneId": null}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	rs.Server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &mission))
	assert.Nil(t, mission.AssignedDroneID)
	assert.Equal(t, models.MissionStatusScheduled, mission.Status)

	w = doJSON(rs, "GET", "/api/drones/"+strconv.Itoa(int(drone.ID)), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &droneView))
	assert.Equal(t, models.DroneStatusIdle, droneView.Status)

	// rename without touching anything else
	w = doJSON(rs, "PUT", missionPath, gin.H{"name": "Renamed sweep"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &mission))
	assert.Equal(t, "Renamed sweep", mission.Name)

	// delete, then confirm it is gone
	w = doJSON(rs, "DELETE", missionPath, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "GET", missionPath, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Mission not found", env.Error)
}

func TestCreateMission_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	{
		body := validMissionBody(nil)
		delete(body, "name")
		w := doJSON(rs, "POST", "/api/missions", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "Please add a mission name", env.Error)
	}

	{
		body := validMissionBody(nil)
		body["patternType"] = "Spiral"
		w := doJSON(rs, "POST", "/api/missions", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "Please specify pattern type", env.Error)
	}

	{
		// assigning a drone that does not exist
		missing := uint(999999)
		w := doJSON(rs, "POST", "/api/missions", validMissionBody(&missing))
		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "Drone not found", env.Error)
	}
}

func TestUpdateDroneStatusEndpoint(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	w := doJSON(rs, "POST", "/api/drones", DroneRequest{DroneID: uuid.NewString(), Model: "SkyHawk X1"})
	require.Equal(t, http.StatusCreated, w.Code)
	var drone models.Drone
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &drone))

	statusPath := "/api/drones/" + strconv.Itoa(int(drone.ID)) + "/status"

	w = doJSON(rs, "PUT", statusPath, DroneStatusRequest{Status: "Charging"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &drone))
	assert.Equal(t, models.DroneStatusCharging, drone.Status)

	w = doJSON(rs, "PUT", statusPath, DroneStatusRequest{Status: "Hovering"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Invalid status value", env.Error)

	// In Mission without a mission id
	w = doJSON(rs, "PUT", statusPath, DroneStatusRequest{Status: "In Mission"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env = decodeEnvelope(t, w)
	assert.Equal(t, "Mission ID is required when setting status to In Mission", env.Error)
}

func TestMonitorEndpoints(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	w := doJSON(rs, "POST", "/api/drones", DroneRequest{DroneID: uuid.NewString(), Model: "SkyHawk X1"})
	require.Equal(t, http.StatusCreated, w.Code)
	var drone models.Drone
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &drone))

	w = doJSON(rs, "POST", "/api/missions", validMissionBody(&drone.ID))
	require.Equal(t, http.StatusCreated, w.Code)
	var mission models.Mission
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &mission))

	monitorPath := "/api/monitor/" + strconv.Itoa(int(mission.ID))

	w = doJSON(rs, "GET", monitorPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var snapshot survey.Snapshot
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &snapshot))
	assert.Equal(t, mission.ID, snapshot.MissionID)
	assert.Equal(t, models.MissionStatusInProgress, snapshot.Status)
	require.NotNil(t, snapshot.DroneInfo)
	assert.Equal(t, drone.DroneID, snapshot.DroneInfo.DroneID)

	// position update appends to the flight path and lowers the battery
	battery := 48.0
	w = doJSON(rs, "POST", monitorPath+"/update", PositionUpdateRequest{
		CurrentLocation: &PointBody{Type: "Point", Coordinates: []float64{-122.50, 37.80}},
		BatteryLevel:    &battery,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Mission
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &updated))
	assert.Len(t, updated.FlightPath, len(mission.FlightPath)+1)

	// drone telemetry by the human-assigned id
	w = doJSON(rs, "GET", "/api/drones/"+drone.DroneID+"/telemetry", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var telemetry survey.Telemetry
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &telemetry))
	assert.Equal(t, drone.DroneID, telemetry.DroneID)
	assert.Equal(t, battery, telemetry.BatteryLevel)

	w = doJSON(rs, "GET", "/api/monitor/999999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReportEndpoints(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	w := doJSON(rs, "POST", "/api/missions", validMissionBody(nil))
	require.Equal(t, http.StatusCreated, w.Code)
	var mission models.Mission
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &mission))

	missionID := strconv.Itoa(int(mission.ID))

	// not completed yet
	w = doJSON(rs, "POST", "/api/reports/generate/"+missionID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Cannot generate report for a mission that is not completed", env.Error)

	// complete the mission through the mission API
	w = doJSON(rs, "PUT", "/api/missions/"+missionID, gin.H{"status": "Completed"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "POST", "/api/reports/generate/"+missionID, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var report models.Report
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &report))
	assert.Equal(t, mission.ID, report.MissionID)

	// second generate is rejected
	w = doJSON(rs, "POST", "/api/reports/generate/"+missionID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env = decodeEnvelope(t, w)
	assert.Equal(t, "A report already exists for this mission", env.Error)

	// fetch by mission
	w = doJSON(rs, "GET", "/api/reports/"+missionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view survey.ReportView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &view))
	assert.Equal(t, report.ID, view.ID)
	assert.Equal(t, mission.Name, view.MissionName)

	// list includes it
	w = doJSON(rs, "GET", "/api/reports", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.GreaterOrEqual(t, decodeEnvelope(t, w).Count, 1)

	// download stub
	w = doJSON(rs, "GET", "/api/reports/"+strconv.Itoa(int(report.ID))+"/download", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var downloadBody struct {
		Success bool                `json:"success"`
		Message string              `json:"message"`
		Data    survey.DownloadInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &downloadBody))
	assert.True(t, downloadBody.Success)
	assert.Equal(t, "Report download initiated", downloadBody.Message)
	assert.Equal(t, "PDF", downloadBody.Data.Format)

	w = doJSON(rs, "GET", "/api/reports/999999/download", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardEndpoints(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	w := doJSON(rs, "GET", "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats survey.DashboardStats
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &stats))

	w = doJSON(rs, "GET", "/api/dashboard/recent", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "GET", "/api/dashboard/monthly-activity", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var activity []survey.MonthActivity
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &activity))
	assert.Len(t, activity, 12)
}

func TestDashboard_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIDashboard := mocks.NewMockIDashboard(ctrl)
	rs.Survey.Dashboard = mockIDashboard
	mockIDashboard.EXPECT().
		GetStats().
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)

	w := doJSON(rs, "GET", "/api/dashboard/stats", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func setupTestServerWithLimiter(limiter *survey.RateLimiterStore) *RestfulServer {
	surveyObj := survey.Survey{
		Db: *db.GetInstance(db.UseMemorySqliteDialector()),
	}
	surveyObj.WithRand(rand.New(rand.NewSource(42)))
	surveyObj.WithServices(survey.ServiceOpts{
		Drone:     surveyObj.GetIDrone(),
		Mission:   surveyObj.GetIMission(),
		Monitor:   surveyObj.GetIMonitor(),
		Report:    surveyObj.GetIReport(),
		Dashboard: surveyObj.GetIDashboard(),
	})

	rs := &RestfulServer{
		Server:           gin.Default(),
		Survey:           &surveyObj,
		RateLimiterStore: limiter,
	}

	rs.Setup()

	return rs
}

func TestMonitorWithLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(survey.NewRateLimiterStore(2, 2))

	w := doJSON(rs, "POST", "/api/missions", validMissionBody(nil))
	require.Equal(t, http.StatusCreated, w.Code)
	var mission models.Mission
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &mission))

	monitorPath := "/api/monitor/" + strconv.Itoa(int(mission.ID))

	// burst of 2, third request in quick succession is shed
	for i := 0; i < 3; i++ {
		w := doJSON(rs, "GET", monitorPath, nil)
		if i < 2 {
			require.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
		} else {
			require.Equal(t, http.StatusTooManyRequests, w.Code, "request %d should be rate limited", i+1)
		}
	}

	// raising the per-mission limit opens the gate again
	w = doJSON(rs, "POST", monitorPath+"/limiter", LimiterRequest{Rate: 100, Burst: 100})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "GET", monitorPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestPostLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(survey.NewRateLimiterStore(2, 2))

	// empty payload should be rejected
	w := doJSON(rs, "POST", "/api/monitor/1/limiter", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLimiterBlocksMonitoring(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(survey.NewRateLimiterStore(0, 0))

	// nothing should pass below
	{
		w := doJSON(rs, "GET", "/api/monitor/1", nil)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	}

	{
		w := doJSON(rs, "POST", "/api/monitor/1/update", PositionUpdateRequest{})
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	}

	{
		w := doJSON(rs, "GET", "/api/drones/any-drone/telemetry", nil)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	}

	// non-monitoring routes are not limited
	{
		w := doJSON(rs, "GET", "/api/drones", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestSetLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer() // default without limiter store

	// without a limiter store the call is accepted but has no effect
	w := doJSON(rs, "POST", "/api/monitor/1/limiter", LimiterRequest{Rate: 2, Burst: 2})
	require.Equal(t, http.StatusOK, w.Code)

	// and monitoring is wide open
	w = doJSON(rs, "GET", "/api/monitor/999999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code) // not 429: limiter absent, mission missing
}
