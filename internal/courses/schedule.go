package courses

// ScheduledRound is one entry in the trip schedule: a date, a morning tee
// time, the course being played, and the tee options players can choose
// from. The schedule is fixed ahead of the trip, like the course catalog.
type ScheduledRound struct {
	ID         string
	Date       string // YYYY-MM-DD
	TeeTime    string
	CourseName string
	TeeIDs     []string
}

var schedule = []ScheduledRound{
	{
		ID: "mon-1", Date: "2025-02-10", TeeTime: "8:00 AM", CourseName: "Nicklaus",
		TeeIDs: []string{"nicklaus-tips", "nicklaus-men-gb", "nicklaus-men-blue", "nicklaus-senior"},
	},
	{
		ID: "tue-1", Date: "2025-02-11", TeeTime: "8:00 AM", CourseName: "Watson",
		TeeIDs: []string{"watson-tips", "watson-men-gold", "watson-men-blue"},
	},
	{
		ID: "wed-1", Date: "2025-02-12", TeeTime: "8:00 AM", CourseName: "Watson",
		TeeIDs: []string{"watson-tips-2", "watson-men-gold-2", "watson-men-blue-2"},
	},
	{
		ID: "thu-1", Date: "2025-02-13", TeeTime: "8:00 AM", CourseName: "SouthernDunes",
		TeeIDs: []string{"southerndunes-tips", "southerndunes-men-blue", "southerndunes-men-white", "southerndunes-senior"},
	},
	{
		ID: "fri-1", Date: "2025-02-14", TeeTime: "8:00 AM", CourseName: "Palmer",
		TeeIDs: []string{"palmer-tips", "palmer-men-gold", "palmer-men-gb", "palmer-senior"},
	},
	{
		ID: "sat-1", Date: "2025-02-15", TeeTime: "8:00 AM", CourseName: "Nicklaus",
		TeeIDs: []string{"nicklaus-tips-3", "nicklaus-men-gb-3", "nicklaus-men-blue-3", "nicklaus-senior-3"},
	},
	{
		ID: "sun-1", Date: "2025-02-16", TeeTime: "8:00 AM", CourseName: "Nicklaus",
		TeeIDs: []string{"nicklaus-tips-4", "nicklaus-men-gb-4", "nicklaus-men-blue-4", "nicklaus-senior-4"},
	},
}

// Schedule returns the week's rounds in date order.
func Schedule() []ScheduledRound {
	return schedule
}

// ScheduledRoundByID finds a schedule entry by its external ID ("mon-1").
func ScheduledRoundByID(id string) (ScheduledRound, bool) {
	for _, r := range schedule {
		if r.ID == id {
			return r, true
		}
	}
	return ScheduledRound{}, false
}
