package inmemdb

import (
	"time"

	"github.com/edustack/studyhub/core/chat"
	"github.com/edustack/studyhub/core/material"
	"github.com/edustack/studyhub/core/meeting"
	"github.com/edustack/studyhub/core/mentoring"
)

// Seed loads the demo fixtures into an open DB. Apps call it once at start;
// tests never do — they want a fresh, empty DB per case.
func Seed(db *DB) error {
	now := time.Now().UTC()

	matRepo := NewMaterialRepository(db)
	materials := []material.Material{
		{
			Title:       "Introduction to React",
			Description: "Basics of React and components",
			Type:        "pdf",
			UploadedBy:  "Dr. Smith",
			Course:      "Web Development",
			Subject:     "Frontend",
			UploadedAt:  now,
			Downloads:   12,
			Views:       45,
			IsPublic:    true,
		},
		{
			Title:       "TypeScript Guide",
			Description: "Complete TypeScript tutorial",
			Type:        "pdf",
			UploadedBy:  "Prof. Johnson",
			Course:      "Web Development",
			Subject:     "Backend",
			UploadedAt:  now,
			Downloads:   8,
			Views:       30,
			IsPublic:    true,
		},
	}
	for _, mat := range materials {
		if _, err := matRepo.CreateMaterial(mat); err != nil {
			return err
		}
	}

	mtgRepo := NewMeetingRepository(db)
	meetings := []meeting.Meeting{
		{
			Title:       "Introduction to React Hooks",
			Description: "Learn about React Hooks and how to use them effectively",
			Type:        meeting.TypeLecture,
			ScheduledBy: "Dr. Smith",
			StartTime:   now.Add(2 * 24 * time.Hour),
			EndTime:     now.Add(2*24*time.Hour + time.Hour),
			MeetingLink: "https://meet.google.com/xyz",
			Status:      meeting.StatusScheduled,
			CreatedAt:   now,
		},
		{
			Title:       "Web Development Q&A Session",
			Description: "Ask your questions about web development",
			Type:        meeting.TypeDiscussion,
			ScheduledBy: "Prof. Johnson",
			StartTime:   now.Add(3 * 24 * time.Hour),
			EndTime:     now.Add(3*24*time.Hour + 90*time.Minute),
			Status:      meeting.StatusScheduled,
			CreatedAt:   now,
		},
	}
	for _, mtg := range meetings {
		if _, err := mtgRepo.CreateMeeting(mtg); err != nil {
			return err
		}
	}

	mentRepo := NewMentoringRepository(db)
	mentors := []mentoring.Mentor{
		{
			ID:             "alum1",
			Name:           "Arjun Kumar",
			Email:          "arjun.kumar@techcorp.com",
			Specialization: "Full Stack Development",
			Bio:            "Senior Developer at TechCorp with 5+ years of experience in React and Node.js",
			Company:        "TechCorp Solutions",
			YearsOfExp:     5,
			Rating:         4.8,
			StudentsHelped: 127,
			IsAvailable:    true,
			Slots:          []string{"Monday 6PM", "Wednesday 7PM", "Saturday 3PM"},
		},
		{
			ID:             "alum2",
			Name:           "Priya Sharma",
			Email:          "priya.sharma@datainsights.com",
			Specialization: "Data Science & ML",
			Bio:            "Data Scientist at DataInsights, expert in machine learning and Python",
			Company:        "DataInsights Inc",
			YearsOfExp:     4,
			Rating:         4.9,
			StudentsHelped: 95,
			IsAvailable:    true,
			Slots:          []string{"Tuesday 6PM", "Thursday 7PM", "Sunday 4PM"},
		},
		{
			ID:             "alum3",
			Name:           "Rahul Patel",
			Email:          "rahul.patel@cloudtech.com",
			Specialization: "Cloud Architecture & DevOps",
			Bio:            "Cloud Architect at CloudTech, specializing in AWS and containerization",
			Company:        "CloudTech Systems",
			YearsOfExp:     6,
			Rating:         4.7,
			StudentsHelped: 110,
			IsAvailable:    true,
			Slots:          []string{"Monday 7PM", "Friday 6PM"},
		},
		{
			ID:             "alum4",
			Name:           "Neha Singh",
			Email:          "neha.singh@webdesign.com",
			Specialization: "Frontend & UI/UX",
			Bio:            "UI/UX Designer at WebDesign Co, passionate about creating beautiful interfaces",
			Company:        "WebDesign Co",
			YearsOfExp:     3,
			Rating:         4.9,
			StudentsHelped: 82,
			IsAvailable:    true,
			Slots:          []string{"Tuesday 5PM", "Thursday 6PM", "Saturday 2PM"},
		},
	}
	for _, m := range mentors {
		if _, err := mentRepo.CreateMentor(m); err != nil {
			return err
		}
	}

	chatRepo := NewChatRepository(db)
	if _, err := chatRepo.AppendMessage(chat.Greeting()); err != nil {
		return err
	}
	return nil
}
