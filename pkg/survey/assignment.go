package survey

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/common"
	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/models"
)

// The drone/mission link is a bidirectional invariant: a drone is
// "In Mission" iff it points at exactly one mission whose assignedDroneId
// points back at it. Every helper here runs inside the caller's transaction
// so the paired writes commit or roll back as one unit, and the drone row is
// written before the mission row.

const (
	msgDroneUnavailable    = "Drone is unavailable for mission assignment"
	msgNewDroneUnavailable = "New drone is unavailable for mission assignment"
)

func droneAvailable(drone *models.Drone) bool {
	return drone.Status == models.DroneStatusIdle || drone.Status == models.DroneStatusCharging
}

func findDrone(tx *gorm.DB, id uint, missing string) (*models.Drone, error) {
	var drone models.Drone
	if err := tx.First(&drone, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(missing)
		}
		return nil, err
	}
	return &drone, nil
}

func findMission(tx *gorm.DB, id uint) (*models.Mission, error) {
	var mission models.Mission
	if err := tx.First(&mission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Mission not found")
		}
		return nil, err
	}
	return &mission, nil
}

// assignDrone marks an available drone as flying the given mission and
// persists the drone row. The mission-side write is the caller's, issued
// after this returns. unavailableMsg keeps the create vs update wording
// the dashboard expects.
func (s *Survey) assignDrone(tx *gorm.DB, drone *models.Drone, missionID uint, unavailableMsg string) error {
	if !droneAvailable(drone) {
		return NewConflictError(unavailableMsg)
	}

	drone.Status = models.DroneStatusInMission
	drone.AssignedMissionID = &missionID
	if err := tx.Save(drone).Error; err != nil {
		return err
	}

	common.GetLoggerWith(
		common.LoggerNameSurveyCore,
		zap.String(common.LoggerFieldSurveyCategory, common.LoggerCategorySurveyAssign),
	).Info("Drone assigned to mission",
		zap.Uint("drone_id", drone.ID), zap.Uint("mission_id", missionID))

	return nil
}

// releaseDrone returns a drone to Idle and clears its mission back-reference.
// Calling it on an already-idle drone is a legal no-op.
func (s *Survey) releaseDrone(tx *gorm.DB, drone *models.Drone) error {
	if drone.Status == models.DroneStatusIdle && drone.AssignedMissionID == nil {
		return nil
	}

	drone.Status = models.DroneStatusIdle
	drone.AssignedMissionID = nil
	if err := tx.Save(drone).Error; err != nil {
		return err
	}

	common.GetLoggerWith(
		common.LoggerNameSurveyCore,
		zap.String(common.LoggerFieldSurveyCategory, common.LoggerCategorySurveyAssign),
	).Info("Drone released", zap.Uint("drone_id", drone.ID))

	return nil
}

// releaseMissionDrone frees whatever drone the mission currently holds and
// clears the mission's forward reference. When revertToScheduled is set
// (a drone pulled out of a live mission, as opposed to mission deletion) the
// mission also drops back to Scheduled. The mission row is saved by the
// caller together with its other pending changes.
func (s *Survey) releaseMissionDrone(tx *gorm.DB, mission *models.Mission, revertToScheduled bool) error {
	if mission.AssignedDroneID != nil {
		drone, err := findDrone(tx, *mission.AssignedDroneID, "Drone not found")
		if err == nil {
			if err := s.releaseDrone(tx, drone); err != nil {
				return err
			}
		} else if _, ok := err.(*NotFoundError); !ok {
			return err
		}
		// a dangling reference to a missing drone is cleared silently
	}

	mission.AssignedDroneID = nil
	if revertToScheduled {
		mission.Status = models.MissionStatusScheduled
	}
	return nil
}
