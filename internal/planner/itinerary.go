package planner

// Slot is one of the six fixed times an activity can be scheduled into.
type Slot struct {
	Time      string
	TimeOfDay TimeOfDay
}

var slots = [...]Slot{
	{"9:00 AM", Morning},
	{"11:30 AM", Morning},
	{"1:00 PM", Afternoon},
	{"3:30 PM", Afternoon},
	{"6:00 PM", Evening},
	{"8:00 PM", Evening},
}

// Slots returns the daily schedule in order.
func Slots() []Slot {
	return append([]Slot(nil), slots[:]...)
}

// SlotTimes returns the time labels of the daily schedule in order.
func SlotTimes() []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Time
	}
	return out
}

type ScheduledActivity struct {
	ID          string         `json:"id,omitempty"`
	Time        string         `json:"time"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Duration    string         `json:"duration"`
	Cost        string         `json:"cost"`
	Location    string         `json:"location"`
	Status      ActivityStatus `json:"status,omitempty"`
}

type DayPlan struct {
	Day        int                 `json:"day"`
	Theme      Theme               `json:"theme"`
	City       string              `json:"city,omitempty"`
	Title      string              `json:"title,omitempty"`
	Snippet    string              `json:"snippet,omitempty"`
	Activities []ScheduledActivity `json:"activities"`
}

type Itinerary struct {
	Destination   string       `json:"destination"`
	Duration      int          `json:"duration"`
	Days          []DayPlan    `json:"days"`
	Tips          []string     `json:"tips"`
	EstimatedCost CostEstimate `json:"estimatedCost"`
}

// Clone returns a deep copy so callers can annotate it without touching the original.
func (it Itinerary) Clone() Itinerary {
	out := it
	out.Tips = append([]string(nil), it.Tips...)
	out.Days = make([]DayPlan, len(it.Days))
	for i, d := range it.Days {
		d.Activities = append([]ScheduledActivity(nil), d.Activities...)
		out.Days[i] = d
	}
	return out
}

func scheduled(slot Slot, t ActivityTemplate) ScheduledActivity {
	return ScheduledActivity{
		Time:        slot.Time,
		Title:       t.Title,
		Description: t.Description,
		Duration:    t.Duration,
		Cost:        t.Cost,
		Location:    t.Location,
	}
}
