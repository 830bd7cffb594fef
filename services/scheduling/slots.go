package scheduling

import "time"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	// Working window: slots start at 09:00 and every 30 minutes after,
	// with 17:00 as the exclusive end boundary (last start 16:30).
	openHour    = 9
	closeHour   = 17
	slotMinutes = 30
)

// SlotGrid produces the ordered candidate slot start-times for a calendar
// day, as "HH:MM" strings in the day's zone. Saturdays and Sundays have no
// slots. Pure function; day is local midnight of the requested date.
func SlotGrid(day time.Time) []string {
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return nil
	}

	var slots []string
	start := day.Add(openHour * time.Hour)
	end := day.Add(closeHour * time.Hour)
	for t := start; t.Before(end); t = t.Add(slotMinutes * time.Minute) {
		slots = append(slots, t.Format(timeLayout))
	}
	return slots
}

// overlaps is the half-open interval test: true iff [aStart, aEnd) and
// [bStart, bEnd) share any instant.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
