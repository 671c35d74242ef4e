package services

import (
	"sort"
	"time"

	"portal/internal/models"
)

// ContentService serves the dashboard's read-only content: featured news
// posts and upcoming events. The data is static, like the catalogs.
type ContentService struct {
	posts  []models.FeaturedPost
	events []models.Event
}

// NewContentService creates a ContentService with the portal's dashboard
// content.
func NewContentService() *ContentService {
	return &ContentService{
		posts: []models.FeaturedPost{
			{ID: 1, Title: "Breakthrough in Quantum Chemistry Research", Excerpt: "Faculty researchers publish landmark results on molecular simulation.", Image: "/posts/quantum.jpg", Date: time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC), Category: "Research"},
			{ID: 2, Title: "Student Success: National Chemistry Olympiad", Excerpt: "PACSMIN students take three of the top five national placements.", Image: "/posts/olympiad.jpg", Date: time.Date(2024, time.May, 18, 0, 0, 0, 0, time.UTC), Category: "Students"},
			{ID: 3, Title: "New State-of-the-Art Lab Equipment Unveiled", Excerpt: "The analytical wing opens with new spectrometry instruments.", Image: "/posts/lab.jpg", Date: time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC), Category: "Facilities"},
			{ID: 4, Title: "Alumni Spotlight: Dr. Elena Rodriguez", Excerpt: "From undergraduate researcher to industry laboratory director.", Image: "/posts/alumni.jpg", Date: time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC), Category: "Alumni"},
		},
		events: []models.Event{
			{ID: 1, Title: "Chemistry Week Opening Ceremony", Date: time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC), Location: "Main Auditorium", Attendees: 250},
			{ID: 2, Title: "Undergraduate Research Colloquium", Date: time.Date(2024, time.June, 7, 13, 0, 0, 0, time.UTC), Location: "Science Hall 204", Attendees: 80},
			{ID: 3, Title: "Industry Careers Night", Date: time.Date(2024, time.June, 14, 18, 0, 0, 0, time.UTC), Location: "Student Center", Attendees: 120},
		},
	}
}

// FeaturedPosts returns the dashboard news posts, newest first.
func (s *ContentService) FeaturedPosts() []models.FeaturedPost {
	posts := make([]models.FeaturedPost, len(s.posts))
	copy(posts, s.posts)
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
	return posts
}

// UpcomingEvents returns the campus events in chronological order.
func (s *ContentService) UpcomingEvents() []models.Event {
	events := make([]models.Event, len(s.events))
	copy(events, s.events)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events
}
