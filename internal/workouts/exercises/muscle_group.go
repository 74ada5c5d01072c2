package exercises

type MuscleGroup string

const (
	MuscleGroupQuadriceps MuscleGroup = "QUADRICEPS"
	MuscleGroupHamstrings MuscleGroup = "HAMSTRINGS"
	MuscleGroupGlutes     MuscleGroup = "GLUTES"
	MuscleGroupCalves     MuscleGroup = "CALVES"
	MuscleGroupLats       MuscleGroup = "LATS"
	MuscleGroupTraps      MuscleGroup = "TRAPS"
	MuscleGroupLowerBack  MuscleGroup = "LOWER_BACK"
	MuscleGroupChest      MuscleGroup = "CHEST"
	MuscleGroupFrontDelts MuscleGroup = "FRONT_DELTS"
	MuscleGroupSideDelts  MuscleGroup = "SIDE_DELTS"
	MuscleGroupRearDelts  MuscleGroup = "REAR_DELTS"
	MuscleGroupBiceps     MuscleGroup = "BICEPS"
	MuscleGroupTriceps    MuscleGroup = "TRICEPS"
	MuscleGroupForearms   MuscleGroup = "FOREARMS"
	MuscleGroupAbs        MuscleGroup = "ABS"
	MuscleGroupObliques   MuscleGroup = "OBLIQUES"
)

// AllMuscleGroups returns every muscle group, in display order.
func AllMuscleGroups() []MuscleGroup {
	return []MuscleGroup{
		MuscleGroupQuadriceps,
		MuscleGroupHamstrings,
		MuscleGroupGlutes,
		MuscleGroupCalves,
		MuscleGroupLats,
		MuscleGroupTraps,
		MuscleGroupLowerBack,
		MuscleGroupChest,
		MuscleGroupFrontDelts,
		MuscleGroupSideDelts,
		MuscleGroupRearDelts,
		MuscleGroupBiceps,
		MuscleGroupTriceps,
		MuscleGroupForearms,
		MuscleGroupAbs,
		MuscleGroupObliques,
	}
}

func (mg MuscleGroup) String() string {
	return string(mg)
}

func (mg MuscleGroup) IsValid() bool {
	for _, g := range AllMuscleGroups() {
		if g == mg {
			return true
		}
	}
	return false
}
