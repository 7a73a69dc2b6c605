package survey

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/db"
	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/models"
)

// GetSurveyWithMemorySqliteDialector builds a Survey over the shared
// in-memory store with a fixed random seed, so simulated values can be
// asserted as ranges. Mock-backed service swaps happen at the HTTP layer,
// whose tests import the mocks package.
func GetSurveyWithMemorySqliteDialector() *Survey {
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	surveyInstance := (&Survey{Db: *dbInstance}).
		WithRand(rand.New(rand.NewSource(42)))

	surveyInstance.WithServices(ServiceOpts{
		Drone:     surveyInstance.GetIDrone(),
		Mission:   surveyInstance.GetIMission(),
		Monitor:   surveyInstance.GetIMonitor(),
		Report:    surveyInstance.GetIReport(),
		Dashboard: surveyInstance.GetIDashboard(),
	})

	return surveyInstance
}

func createTestDrone(t *testing.T, s *Survey, status models.DroneStatus) *models.Drone {
	t.Helper()

	drone := models.Drone{
		DroneID:      uuid.NewString(),
		Model:        "SkyHawk X1",
		BatteryLevel: 90,
		Location:     models.NewGeoPoint(-122.42, 37.77),
		Status:       status,
	}
	require.NoError(t, s.Db.Conn.Create(&drone).Error)
	return &drone
}

func createTestMission(t *testing.T, s *Survey, status models.MissionStatus) *models.Mission {
	t.Helper()

	mission := models.Mission{
		Name: "Survey " + uuid.NewString()[:8],
		Location: models.MissionLocation{
			Type:        "Point",
			Coordinates: []float64{-122.42, 37.77},
			Address:     "100 Field Road",
		},
		StartTime:      time.Now().Add(time.Hour).Truncate(time.Second),
		RecurrenceType: models.RecurrenceOnce,
		FlightPath: []models.GeoPoint{
			models.NewGeoPoint(-122.42, 37.77),
			models.NewGeoPoint(-122.43, 37.78),
			models.NewGeoPoint(-122.44, 37.79),
		},
		FlightAltitude: 80,
		PatternType:    models.PatternGrid,
		SensorType:     models.SensorRGB,
		Status:         status,
	}
	require.NoError(t, s.Db.Conn.Create(&mission).Error)
	return &mission
}

func validMissionSpec(assignedDroneID *uint) *MissionSpec {
	return &MissionSpec{
		Name: "Orchard survey " + uuid.NewString()[:8],
		Location: models.MissionLocation{
			Type:        "Point",
			Coordinates: []float64{-122.42, 37.77},
			Address:     "100 Field Road",
		},
		StartTime: time.Now().Add(2 * time.Hour).Truncate(time.Second),
		FlightPath: []models.GeoPoint{
			models.NewGeoPoint(-122.42, 37.77),
			models.NewGeoPoint(-122.43, 37.78),
		},
		FlightAltitude:  60,
		PatternType:     models.PatternCrosshatch,
		SensorType:      models.SensorThermal,
		AssignedDroneID: assignedDroneID,
	}
}

func reloadDrone(t *testing.T, s *Survey, id uint) *models.Drone {
	t.Helper()
	var drone models.Drone
	require.NoError(t, s.Db.Conn.First(&drone, id).Error)
	return &drone
}

func reloadMission(t *testing.T, s *Survey, id uint) *models.Mission {
	t.Helper()
	var mission models.Mission
	require.NoError(t, s.Db.Conn.First(&mission, id).Error)
	return &mission
}
