package booking

import "doctorsportal/models"

// ComputeAvailability returns one record per service with Slots replaced by
// the slots no booking on the day holds. Bookings are expected to be for a
// single date; they are matched to services by treatment name. Slot order is
// preserved and the input services are not modified.
func ComputeAvailability(services []models.Service, bookings []models.Booking) []models.ServiceAvailability {
	booked := make(map[string]map[string]struct{}, len(services))
	for _, b := range bookings {
		slots, ok := booked[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	out := make([]models.ServiceAvailability, 0, len(services))
	for _, svc := range services {
		taken := booked[svc.Name]
		available := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, isTaken := taken[slot]; !isTaken {
				available = append(available, slot)
			}
		}
		out = append(out, models.ServiceAvailability{
			ID:    svc.ID,
			Name:  svc.Name,
			Price: svc.Price,
			Slots: available,
		})
	}
	return out
}
