package survey

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/common"
	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/models"
)

// Everything numeric beyond status/battery/location in this file is
// synthesized per call from the injected random source. Callers must not
// assume repeatable reads.

type DroneInfo struct {
	DroneID string             `json:"droneId"`
	Model   string             `json:"model"`
	Status  models.DroneStatus `json:"status"`
}

type SnapshotTelemetry struct {
	Altitude float64 `json:"altitude"`
	Speed    int     `json:"speed"`
	Heading  int     `json:"heading"`
}

// Snapshot is a point-in-time monitoring view of a mission.
type Snapshot struct {
	MissionID              uint                 `json:"missionId"`
	Name                   string               `json:"name"`
	Status                 models.MissionStatus `json:"status"`
	CurrentLocation        models.GeoPoint      `json:"currentLocation"`
	Progress               int                  `json:"progress"`
	BatteryLevel           *float64             `json:"batteryLevel"`
	DroneInfo              *DroneInfo           `json:"droneInfo"`
	EstimatedTimeRemaining string               `json:"estimatedTimeRemaining"`
	PathLengthMeters       float64              `json:"pathLengthMeters"`
	Telemetry              SnapshotTelemetry    `json:"telemetry"`
}

// PositionUpdate is an externally reported telemetry sample for a mission.
// All fields are optional.
type PositionUpdate struct {
	Status          *models.MissionStatus
	CurrentLocation *models.GeoPoint
	BatteryLevel    *float64
}

// Telemetry is the per-drone view, resolved by the human-assigned drone ID.
type Telemetry struct {
	DroneID                string             `json:"droneId"`
	BatteryLevel           float64            `json:"batteryLevel"`
	Status                 models.DroneStatus `json:"status"`
	Altitude               float64            `json:"altitude"`
	Speed                  int                `json:"speed"`
	Heading                int                `json:"heading"`
	Coordinates            []float64          `json:"coordinates"`
	SignalStrength         int                `json:"signalStrength"`
	Temperature            int                `json:"temperature"`
	Humidity               int                `json:"humidity"`
	WindSpeed              int                `json:"windSpeed"`
	WindDirection          string             `json:"windDirection"`
	MissionProgress        int                `json:"missionProgress"`
	EstimatedTimeRemaining string             `json:"estimatedTimeRemaining"`
}

var compassDirections = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (s *Survey) getSnapshot(missionID uint) (*Snapshot, error) {
	mission, err := findMission(s.Db.Conn, missionID)
	if err != nil {
		return nil, err
	}

	snapshot := Snapshot{
		MissionID:              mission.ID,
		Name:                   mission.Name,
		Status:                 mission.Status,
		CurrentLocation:        mission.Location.Point(),
		EstimatedTimeRemaining: "N/A",
		PathLengthMeters:       PathLengthMeters(mission.FlightPath),
		Telemetry: SnapshotTelemetry{
			Altitude: mission.FlightAltitude + (s.randFloat()*2 - 1),
			Speed:    s.randIntn(10) + 5,
			Heading:  s.randIntn(360),
		},
	}

	switch mission.Status {
	case models.MissionStatusInProgress:
		if len(mission.FlightPath) > 0 {
			snapshot.CurrentLocation = mission.FlightPath[s.randIntn(len(mission.FlightPath))]
		}
		snapshot.Progress = s.randIntn(100)
		snapshot.EstimatedTimeRemaining = fmt.Sprintf("%dmin", s.randIntn(30))
	case models.MissionStatusCompleted:
		snapshot.Progress = 100
	}

	if mission.AssignedDroneID != nil {
		var drone models.Drone
		err := s.Db.Conn.First(&drone, *mission.AssignedDroneID).Error
		if err == nil {
			snapshot.BatteryLevel = &drone.BatteryLevel
			snapshot.DroneInfo = &DroneInfo{
				DroneID: drone.DroneID,
				Model:   drone.Model,
				Status:  drone.Status,
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return &snapshot, nil
}

func (s *Survey) reportPosition(missionID uint, update *PositionUpdate) (*models.Mission, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSurveyCore,
		zap.String(common.LoggerFieldSurveyCategory, common.LoggerCategorySurveyMonitor),
	)

	var mission *models.Mission

	err := s.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var err error
		mission, err = findMission(tx, missionID)
		if err != nil {
			return err
		}

		if update.Status != nil && update.Status.Valid() {
			mission.Status = *update.Status
		}

		if update.CurrentLocation != nil && len(update.CurrentLocation.Coordinates) >= 2 {
			point := models.NewGeoPoint(
				update.CurrentLocation.Coordinates[0],
				update.CurrentLocation.Coordinates[1],
			)
			exists := false
			for _, p := range mission.FlightPath {
				if p.SameCoordinates(point) {
					exists = true
					break
				}
			}
			if !exists {
				mission.FlightPath = append(mission.FlightPath, point)
			}
		}

		if err := tx.Save(mission).Error; err != nil {
			return err
		}

		if update.BatteryLevel != nil && mission.AssignedDroneID != nil {
			return tx.Model(&models.Drone{}).
				Where("id = ?", *mission.AssignedDroneID).
				Update("battery_level", *update.BatteryLevel).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Position reported", zap.Uint("mission_id", mission.ID))
	return mission, nil
}

func (s *Survey) getDroneTelemetry(droneID string) (*Telemetry, error) {
	var drone models.Drone
	if err := s.Db.Conn.First(&drone, "drone_id = ?", droneID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Drone not found")
		}
		return nil, err
	}

	var activeMission *models.Mission
	var mission models.Mission
	err := s.Db.Conn.
		Where("assigned_drone_id = ? AND status = ?", drone.ID, models.MissionStatusInProgress).
		First(&mission).Error
	if err == nil {
		activeMission = &mission
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	telemetry := Telemetry{
		DroneID:                drone.DroneID,
		BatteryLevel:           drone.BatteryLevel,
		Status:                 drone.Status,
		Speed:                  s.randIntn(10) + 5,
		Heading:                s.randIntn(360),
		Coordinates:            drone.Location.Coordinates,
		SignalStrength:         s.randIntn(30) + 70,
		Temperature:            s.randIntn(15) + 20,
		Humidity:               s.randIntn(30) + 40,
		WindSpeed:              s.randIntn(10) + 2,
		WindDirection:          compassDirections[s.randIntn(len(compassDirections))],
		EstimatedTimeRemaining: "N/A",
	}

	if activeMission != nil {
		telemetry.Altitude = activeMission.FlightAltitude + (s.randFloat()*2 - 1)
		telemetry.MissionProgress = s.randIntn(100)
		telemetry.EstimatedTimeRemaining = fmt.Sprintf("%dmin", s.randIntn(30))
	}

	return &telemetry, nil
}

type IMonitorImpl struct {
	survey *Survey
}

func (im *IMonitorImpl) GetSnapshot(missionID uint) (*Snapshot, error) {
	return im.survey.getSnapshot(missionID)
}

func (im *IMonitorImpl) ReportPosition(missionID uint, update *PositionUpdate) (*models.Mission, error) {
	return im.survey.reportPosition(missionID, update)
}

func (im *IMonitorImpl) GetDroneTelemetry(droneID string) (*Telemetry, error) {
	return im.survey.getDroneTelemetry(droneID)
}

func (s *Survey) GetIMonitor() IMonitor {
	return &IMonitorImpl{survey: s}
}
