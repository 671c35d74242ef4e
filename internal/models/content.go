package models

import "time"

// FeaturedPost is a dashboard news item.
type FeaturedPost struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Excerpt  string    `json:"excerpt"`
	Image    string    `json:"image"`
	Date     time.Time `json:"date"`
	Category string    `json:"category"`
}

// Event is an upcoming campus event shown on the dashboard.
type Event struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Location  string    `json:"location"`
	Attendees int       `json:"attendees"`
}
