package survey

import (
	"math/rand"
	"sync"
	"time"

	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/db"
	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/models"
)

type IDrone interface {
	CreateDrone(input *models.Drone) (*models.Drone, error)
	GetDrones() ([]DroneView, error)
	GetDrone(id uint) (*DroneView, error)
	UpdateDroneStatus(id uint, status models.DroneStatus, opts StatusChangeOpts) (*models.Drone, error)
}

type IMission interface {
	CreateMission(spec *MissionSpec) (*models.Mission, error)
	GetMissions() ([]MissionView, error)
	GetMission(id uint) (*MissionView, error)
	UpdateMission(id uint, patch *MissionPatch) (*models.Mission, error)
	DeleteMission(id uint) error
}

type IMonitor interface {
	GetSnapshot(missionID uint) (*Snapshot, error)
	ReportPosition(missionID uint, update *PositionUpdate) (*models.Mission, error)
	GetDroneTelemetry(droneID string) (*Telemetry, error)
}

type IReport interface {
	GenerateReport(missionID uint) (*models.Report, error)
	GetReports() ([]ReportView, error)
	GetReportByMission(missionID uint) (*ReportView, error)
	DownloadReport(reportID uint) (*DownloadInfo, error)
}

type IDashboard interface {
	GetStats() (*DashboardStats, error)
	GetRecentMissions() ([]RecentMission, error)
	GetMonthlyActivity() ([]MonthActivity, error)
}

type Survey struct {
	Db   db.DB
	Rand *rand.Rand

	Drone     IDrone
	Mission   IMission
	Monitor   IMonitor
	Report    IReport
	Dashboard IDashboard

	randMu sync.Mutex
}

type ServiceOpts struct {
	Drone     IDrone
	Mission   IMission
	Monitor   IMonitor
	Report    IReport
	Dashboard IDashboard
}

func (s *Survey) WithServices(opts ServiceOpts) *Survey {
	if opts.Drone != nil {
		s.Drone = opts.Drone
	}
	if opts.Mission != nil {
		s.Mission = opts.Mission
	}
	if opts.Monitor != nil {
		s.Monitor = opts.Monitor
	}
	if opts.Report != nil {
		s.Report = opts.Report
	}
	if opts.Dashboard != nil {
		s.Dashboard = opts.Dashboard
	}
	return s
}

// WithRand installs a seeded random source so simulated values can be
// asserted against deterministically in tests.
func (s *Survey) WithRand(rnd *rand.Rand) *Survey {
	s.Rand = rnd
	return s
}

func (s *Survey) rng() *rand.Rand {
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s.Rand
}

func (s *Survey) randIntn(n int) int {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return s.rng().Intn(n)
}

func (s *Survey) randFloat() float64 {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return s.rng().Float64()
}
