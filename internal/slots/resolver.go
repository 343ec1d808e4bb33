package slots

// Classify marks each candidate slot booked iff it overlaps any existing
// reservation interval for the same court and date; otherwise free. Already
// overlapping reservations in the input are tolerated, not repaired.
func Classify(candidates []Interval, booked []Interval) []ClassifiedSlot {
	out := make([]ClassifiedSlot, 0, len(candidates))
	for _, slot := range candidates {
		status := StatusFree
		for _, taken := range booked {
			if slot.Overlaps(taken) {
				status = StatusBooked
				break
			}
		}
		out = append(out, ClassifiedSlot{Interval: slot, Status: status})
	}
	return out
}
