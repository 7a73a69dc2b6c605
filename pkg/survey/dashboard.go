package survey

import (
	"time"

	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/models"
)

// Read-only aggregation queries for the dashboard. No invariants live here.

type DashboardStats struct {
	TodayMissions     int64 `json:"todayMissions"`
	MonthMissions     int64 `json:"monthMissions"`
	TotalMissions     int64 `json:"totalMissions"`
	TotalDrones       int64 `json:"totalDrones"`
	CompletedMissions int64 `json:"completedMissions"`
	OngoingMissions   int64 `json:"ongoingMissions"`
	ScheduledMissions int64 `json:"scheduledMissions"`
	AbortedMissions   int64 `json:"abortedMissions"`
}

type RecentMission struct {
	ID             uint                 `json:"id"`
	Name           string               `json:"name"`
	StartTime      time.Time            `json:"startTime"`
	Location       string               `json:"location"`
	Status         models.MissionStatus `json:"status"`
	FlightAltitude float64              `json:"flightAltitude"`
	SensorType     models.SensorType    `json:"sensorType"`
	DroneID        string               `json:"droneId,omitempty"`
	DroneModel     string               `json:"droneModel,omitempty"`
}

type MonthActivity struct {
	Month     string `json:"month"`
	Completed int64  `json:"completed"`
	Aborted   int64  `json:"aborted"`
}

var monthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

func (s *Survey) getStats() (*DashboardStats, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var stats DashboardStats
	conn := s.Db.Conn

	counts := []func() error{
		func() error {
			return conn.Model(&models.Mission{}).Where("start_time >= ?", today).Count(&stats.TodayMissions).Error
		},
		func() error {
			return conn.Model(&models.Mission{}).Where("start_time >= ?", firstOfMonth).Count(&stats.MonthMissions).Error
		},
		func() error {
			return conn.Model(&models.Mission{}).Count(&stats.TotalMissions).Error
		},
		func() error {
			return conn.Model(&models.Drone{}).Count(&stats.TotalDrones).Error
		},
		func() error {
			return conn.Model(&models.Mission{}).Where("status = ?", models.MissionStatusCompleted).Count(&stats.CompletedMissions).Error
		},
		func() error {
			return conn.Model(&models.Mission{}).Where("status = ?", models.MissionStatusInProgress).Count(&stats.OngoingMissions).Error
		},
		func() error {
			return conn.Model(&models.Mission{}).Where("status = ?", models.MissionStatusScheduled).Count(&stats.ScheduledMissions).Error
		},
		func() error {
			return conn.Model(&models.Mission{}).Where("status = ?", models.MissionStatusAborted).Count(&stats.AbortedMissions).Error
		},
	}
	for _, count := range counts {
		if err := count(); err != nil {
			return nil, err
		}
	}

	return &stats, nil
}

func (s *Survey) getRecentMissions() ([]RecentMission, error) {
	var missions []models.Mission
	err := s.Db.Conn.Order("start_time desc").Limit(5).Find(&missions).Error
	if err != nil {
		return nil, err
	}

	recent := make([]RecentMission, 0, len(missions))
	for i := range missions {
		m := &missions[i]
		entry := RecentMission{
			ID:             m.ID,
			Name:           m.Name,
			StartTime:      m.StartTime,
			Location:       m.Location.Address,
			Status:         m.Status,
			FlightAltitude: m.FlightAltitude,
			SensorType:     m.SensorType,
		}
		if m.AssignedDroneID != nil {
			var drone models.Drone
			if err := s.Db.Conn.First(&drone, *m.AssignedDroneID).Error; err == nil {
				entry.DroneID = drone.DroneID
				entry.DroneModel = drone.Model
			}
		}
		recent = append(recent, entry)
	}
	return recent, nil
}

func (s *Survey) getMonthlyActivity() ([]MonthActivity, error) {
	year := time.Now().Format("2006")

	var rows []struct {
		Month     int
		Completed int64
		Aborted   int64
	}
	err := s.Db.Conn.Raw(`
		SELECT CAST(strftime('%m', start_time) AS INTEGER) AS month,
		       SUM(CASE WHEN status = 'Completed' THEN 1 ELSE 0 END) AS completed,
		       SUM(CASE WHEN status = 'Aborted' THEN 1 ELSE 0 END) AS aborted
		FROM missions
		WHERE strftime('%Y', start_time) = ?
		GROUP BY month
		ORDER BY month`, year).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	activity := make([]MonthActivity, 12)
	for i, name := range monthNames {
		activity[i] = MonthActivity{Month: name}
	}
	for _, row := range rows {
		if row.Month >= 1 && row.Month <= 12 {
			activity[row.Month-1].Completed = row.Completed
			activity[row.Month-1].Aborted = row.Aborted
		}
	}
	return activity, nil
}

type IDashboardImpl struct {
	survey *Survey
}

func (id *IDashboardImpl) GetStats() (*DashboardStats, error) {
	return id.survey.getStats()
}

func (id *IDashboardImpl) GetRecentMissions() ([]RecentMission, error) {
	return id.survey.getRecentMissions()
}

func (id *IDashboardImpl) GetMonthlyActivity() ([]MonthActivity, error) {
	return id.survey.getMonthlyActivity()
}

func (s *Survey) GetIDashboard() IDashboard {
	return &IDashboardImpl{survey: s}
}
