package templates

import (
	"github.com/2beens/gymweeks/internal/workouts/exercises"
	"github.com/2beens/gymweeks/pkg"
)

// allowedMuscleGroups is read only; callers get copies.
var allowedMuscleGroups = map[DayType][]exercises.MuscleGroup{
	DayTypeLeg: {
		exercises.MuscleGroupQuadriceps,
		exercises.MuscleGroupHamstrings,
		exercises.MuscleGroupGlutes,
		exercises.MuscleGroupCalves,
	},
	DayTypePull: {
		exercises.MuscleGroupLats,
		exercises.MuscleGroupTraps,
		exercises.MuscleGroupLowerBack,
		exercises.MuscleGroupBiceps,
		exercises.MuscleGroupRearDelts,
		exercises.MuscleGroupSideDelts,
	},
	DayTypePush: {
		exercises.MuscleGroupChest,
		exercises.MuscleGroupTriceps,
		exercises.MuscleGroupFrontDelts,
		exercises.MuscleGroupSideDelts,
	},
	DayTypeUpperBody: {
		exercises.MuscleGroupLats,
		exercises.MuscleGroupTraps,
		exercises.MuscleGroupLowerBack,
		exercises.MuscleGroupChest,
		exercises.MuscleGroupFrontDelts,
		exercises.MuscleGroupSideDelts,
		exercises.MuscleGroupRearDelts,
		exercises.MuscleGroupBiceps,
		exercises.MuscleGroupTriceps,
		exercises.MuscleGroupForearms,
		exercises.MuscleGroupAbs,
		exercises.MuscleGroupObliques,
	},
	DayTypeFullBody: exercises.AllMuscleGroups(),
}

// AllowedMuscleGroups returns the muscle groups that may be trained on the given
// day type. Unknown day types get nil.
func AllowedMuscleGroups(dt DayType) []exercises.MuscleGroup {
	groups, ok := allowedMuscleGroups[dt]
	if !ok {
		return nil
	}
	res := make([]exercises.MuscleGroup, len(groups))
	copy(res, groups)
	return res
}

func IsAllowed(dt DayType, mg exercises.MuscleGroup) bool {
	for _, g := range allowedMuscleGroups[dt] {
		if g == mg {
			return true
		}
	}
	return false
}

// ValidateExercise fails with a validation error if the exercise cannot be
// attached to a day of the given type.
func ValidateExercise(dt DayType, exercise exercises.Exercise) error {
	if !dt.IsValid() {
		return pkg.NewValidationError("invalid day type [%s]", dt)
	}
	if !IsAllowed(dt, exercise.MuscleGroup) {
		return pkg.NewValidationError(
			"exercise [%s] targets %s, which is not allowed on %s",
			exercise.Name, exercise.MuscleGroup, dt,
		)
	}
	return nil
}
