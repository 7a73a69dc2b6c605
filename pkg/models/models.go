package models

import "time"

type DroneStatus string

const (
	DroneStatusIdle        DroneStatus = "Idle"
	DroneStatusInMission   DroneStatus = "In Mission"
	DroneStatusCharging    DroneStatus = "Charging"
	DroneStatusMaintenance DroneStatus = "Maintenance"
)

func (s DroneStatus) Valid() bool {
	switch s {
	case DroneStatusIdle, DroneStatusInMission, DroneStatusCharging, DroneStatusMaintenance:
		return true
	}
	return false
}

type MissionStatus string

const (
	MissionStatusScheduled  MissionStatus = "Scheduled"
	MissionStatusInProgress MissionStatus = "In Progress"
	MissionStatusCompleted  MissionStatus = "Completed"
	MissionStatusAborted    MissionStatus = "Aborted"
)

func (s MissionStatus) Valid() bool {
	switch s {
	case MissionStatusScheduled, MissionStatusInProgress, MissionStatusCompleted, MissionStatusAborted:
		return true
	}
	return false
}

type RecurrenceType string

const (
	RecurrenceOnce    RecurrenceType = "Once"
	RecurrenceDaily   RecurrenceType = "Daily"
	RecurrenceWeekly  RecurrenceType = "Weekly"
	RecurrenceMonthly RecurrenceType = "Monthly"
)

type PatternType string

const (
	PatternGrid       PatternType = "Grid"
	PatternCrosshatch PatternType = "Crosshatch"
	PatternPerimeter  PatternType = "Perimeter"
)

type SensorType string

const (
	SensorRGB           SensorType = "RGB"
	SensorThermal       SensorType = "Thermal"
	SensorMultispectral SensorType = "Multispectral"
	SensorLiDAR         SensorType = "LiDAR"
)

type ReportStatus string

const (
	ReportStatusCompleted ReportStatus = "Completed"
	ReportStatusPartial   ReportStatus = "Partial"
	ReportStatusFailed    ReportStatus = "Failed"
)

// GeoPoint is a GeoJSON-style point, coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// SameCoordinates reports exact equality of the coordinate pair. Flight path
// dedup is exact-match, not proximity-based.
func (p GeoPoint) SameCoordinates(other GeoPoint) bool {
	if len(p.Coordinates) != 2 || len(other.Coordinates) != 2 {
		return false
	}
	return p.Coordinates[0] == other.Coordinates[0] && p.Coordinates[1] == other.Coordinates[1]
}

// MissionLocation is the mission's home point plus a human-readable address.
type MissionLocation struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
	Address     string    `json:"address"`
}

func (l MissionLocation) Point() GeoPoint {
	return GeoPoint{Type: l.Type, Coordinates: l.Coordinates}
}

type Drone struct {
	ID                uint        `gorm:"primaryKey" json:"id"`
	DroneID           string      `gorm:"uniqueIndex" json:"droneId"`
	Model             string      `json:"model"`
	BatteryLevel      float64     `json:"batteryLevel"`
	Location          GeoPoint    `gorm:"serializer:json" json:"location"`
	Status            DroneStatus `gorm:"type:varchar(20)" json:"status"`
	AssignedMissionID *uint       `gorm:"index" json:"assignedMissionId"`
	CreatedAt         time.Time   `json:"createdAt"`
}

type Mission struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Name            string          `json:"name"`
	Location        MissionLocation `gorm:"serializer:json" json:"location"`
	StartTime       time.Time       `json:"startTime"`
	RecurrenceType  RecurrenceType  `gorm:"type:varchar(10)" json:"recurrenceType"`
	FlightPath      []GeoPoint      `gorm:"serializer:json" json:"flightPath"`
	FlightAltitude  float64         `json:"flightAltitude"`
	PatternType     PatternType     `gorm:"type:varchar(20)" json:"patternType"`
	SensorType      SensorType      `gorm:"type:varchar(20)" json:"sensorType"`
	Status          MissionStatus   `gorm:"type:varchar(20)" json:"status"`
	AssignedDroneID *uint           `gorm:"index" json:"assignedDroneId"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type Report struct {
	ID                       uint         `gorm:"primaryKey" json:"id"`
	MissionID                uint         `gorm:"index" json:"missionId"`
	DroneID                  *uint        `gorm:"index" json:"droneId"`
	StartTime                time.Time    `json:"startTime"`
	EndTime                  time.Time    `json:"endTime"`
	Duration                 int          `json:"duration"` // minutes
	Distance                 int          `json:"distance"` // meters
	DataPointsCollected      int          `json:"dataPointsCollected"`
	SurveyCoveragePercentage int          `json:"surveyCoveragePercentage"`
	Status                   ReportStatus `gorm:"type:varchar(20)" json:"status"`
	CreatedAt                time.Time    `json:"createdAt"`
}
