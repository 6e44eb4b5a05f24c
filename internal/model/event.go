package model

// Event is a scheduled calendar entry. An Event with an empty ID has not
// been persisted yet (a form in pre-save state); the provider assigns the
// ID on creation.
type Event struct {
	ID               string     `json:"id,omitempty" yaml:"id,omitempty"`
	Title            string     `json:"title" yaml:"title"`
	Date             string     `json:"date" yaml:"date"`
	StartTime        string     `json:"startTime" yaml:"startTime"`
	EndTime          string     `json:"endTime" yaml:"endTime"`
	Description      string     `json:"description" yaml:"description"`
	Location         string     `json:"location" yaml:"location"`
	Category         string     `json:"category" yaml:"category"`
	Repeat           RepeatInfo `json:"repeat" yaml:"repeat"`
	NotificationTime int        `json:"notificationTime" yaml:"notificationTime"`
}

// Saved reports whether the event has been assigned an identifier by the
// persistence layer.
func (e Event) Saved() bool {
	return e.ID != ""
}

func (e Event) String() string {
	return e.Date + "|" + e.StartTime + "|" + e.EndTime + "|" + e.Title
}
