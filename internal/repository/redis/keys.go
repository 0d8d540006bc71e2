package redis

import "fmt"

const ns = "crewgo:v1"

func KeyEventSnapshot(eventID int64) string {
	return fmt.Sprintf("%s:event:%d:snapshot", ns, eventID)
}

func KeyEventAvailability(eventID int64) string {
	return fmt.Sprintf("%s:event:%d:availability", ns, eventID)
}

func KeyBooking(bookingID int64) string {
	return fmt.Sprintf("%s:booking:%d", ns, bookingID)
}

func KeyStaffDirectory() string {
	return ns + ":staff:directory"
}
