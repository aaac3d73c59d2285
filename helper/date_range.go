package helper

import "time"

const (
	PresetToday        = "today"
	PresetLast7Days    = "last_7_days"
	PresetLast14Days   = "last_14_days"
	PresetMonthToDate  = "month_to_date"
	PresetLast3Months  = "last_3_months"
	PresetLast12Months = "last_12_months"
	PresetYearToDate   = "year_to_date"
	PresetCustom       = "custom"
)

// ResolveDateRange turns a named preset into concrete bounds relative to now.
// Presets are anchored on local midnight of now and always end at now.
// "custom" returns start and end untouched; an empty preset is treated as
// custom so explicit bounds still apply. Unknown presets yield no bounds.
func ResolveDateRange(preset string, start, end *time.Time, now time.Time) (*time.Time, *time.Time) {
	if preset == PresetCustom || preset == "" {
		return start, end
	}

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var from time.Time
	switch preset {
	case PresetToday:
		from = todayStart
	case PresetLast7Days:
		from = todayStart.AddDate(0, 0, -7)
	case PresetLast14Days:
		from = todayStart.AddDate(0, 0, -14)
	case PresetMonthToDate:
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PresetLast3Months:
		from = todayStart.AddDate(0, -3, 0)
	case PresetLast12Months:
		from = todayStart.AddDate(0, -12, 0)
	case PresetYearToDate:
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return nil, nil
	}

	to := now
	return &from, &to
}
