package resource

// StudyPlan is a named, time-boxed selection of resources.
// Construct it with NewStudyPlan.
type StudyPlan struct {
	name          string
	description   string
	durationWeeks int
	hoursPerDay   float64
	resources     []Resource
}

type planInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	DurationWeeks int     `json:"duration_weeks" validate:"gt=0"`
	HoursPerDay   float64 `json:"hours_per_day"  validate:"gt=0,lte=24"`
}

// NewStudyPlan validates its arguments and returns a StudyPlan. It fails
// with a ValidationError when durationWeeks is not positive or hoursPerDay
// is outside (0, 24]. Resources are copied and kept in the given order.
func NewStudyPlan(name, description string, durationWeeks int, hoursPerDay float64, resources ...Resource) (StudyPlan, error) {
	in := planInput{
		Name:          name,
		Description:   description,
		DurationWeeks: durationWeeks,
		HoursPerDay:   hoursPerDay,
	}
	if err := check(in); err != nil {
		return StudyPlan{}, err
	}

	return StudyPlan{
		name:          in.Name,
		description:   in.Description,
		durationWeeks: in.DurationWeeks,
		hoursPerDay:   in.HoursPerDay,
		resources:     append([]Resource{}, resources...),
	}, nil
}

// Name returns the plan name.
func (p StudyPlan) Name() string { return p.name }

// Description returns the plan description.
func (p StudyPlan) Description() string { return p.description }

// DurationWeeks returns the plan length in weeks.
func (p StudyPlan) DurationWeeks() int { return p.durationWeeks }

// HoursPerDay returns the recommended daily study time.
func (p StudyPlan) HoursPerDay() float64 { return p.hoursPerDay }

// Resources returns a copy of the plan's resources.
func (p StudyPlan) Resources() []Resource {
	return append([]Resource{}, p.resources...)
}

// TotalHours returns the planned study hours assuming daily study.
func (p StudyPlan) TotalHours() float64 {
	return float64(p.durationWeeks*7) * p.hoursPerDay
}
