package templates

type DayType string

const (
	DayTypeLeg       DayType = "LEG_DAY"
	DayTypeUpperBody DayType = "UPPER_BODY_DAY"
	DayTypePull      DayType = "PULL_DAY"
	DayTypePush      DayType = "PUSH_DAY"
	DayTypeFullBody  DayType = "FULL_BODY_DAY"
)

func AllDayTypes() []DayType {
	return []DayType{
		DayTypeLeg,
		DayTypeUpperBody,
		DayTypePull,
		DayTypePush,
		DayTypeFullBody,
	}
}

func (dt DayType) String() string {
	return string(dt)
}

func (dt DayType) IsValid() bool {
	_, ok := allowedMuscleGroups[dt]
	return ok
}
