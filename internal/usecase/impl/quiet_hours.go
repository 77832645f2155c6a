package impl

// quietWindow is a wrap-around hour window in UTC during which dispatch is
// suppressed. A window with equal bounds is empty.
type quietWindow struct {
	startHour int
	endHour   int
}

// contains reports whether the given UTC hour falls inside the window. With
// startHour > endHour the window wraps midnight (22..8 means 22:00-07:59).
func (w quietWindow) contains(hour int) bool {
	if w.startHour == w.endHour {
		return false
	}
	if w.startHour < w.endHour {
		return hour >= w.startHour && hour < w.endHour
	}

	return hour >= w.startHour || hour < w.endHour
}
