// Package mockdata simulates a slowly-evolving analytics dataset so the
// dashboards stay populated when the chatbot backend is unreachable
// (local development, demos).
package mockdata

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/Sabharishraja/Multilinguistic-chatbot/pkg/model"

	"github.com/google/uuid"
)

// DefaultInterval is how often the dataset mutates.
const DefaultInterval = 30 * time.Second

// maxRecent caps the recent-activity lists.
const maxRecent = 5

// Template questions drawn from when a synthetic query is generated.
var questionPool = []string{
	"What are the exam dates for this semester?",
	"How can I contact the placement cell?",
	"What documents are required for admission?",
	"What are the scholarship opportunities?",
	"How do I apply for leave?",
	"What are the canteen timings?",
	"How can I access the WiFi?",
	"What are the sports facilities available?",
	"How do I get my ID card?",
	"What are the parking facilities?",
}

// Generator owns one in-memory synthetic dataset and mutates it on a timer.
// All reads return copies; the dataset is never shared by reference.
type Generator struct {
	mu        sync.Mutex
	analytics model.AnalyticsOverview
	faqs      []model.FAQ
	rnd       *rand.Rand
	logger    *slog.Logger

	stop     chan struct{}
	stopOnce sync.Once
	started  bool
}

// New creates a Generator seeded with baseline figures.
// The mutation timer is not running until Start is called.
func New(logger *slog.Logger) *Generator {
	now := time.Now()
	return &Generator{
		analytics: seedAnalytics(now),
		faqs:      seedFAQs(),
		rnd:       rand.New(rand.NewSource(now.UnixNano())),
		logger:    logger.With("component", "mockdata"),
		stop:      make(chan struct{}),
	}
}

// Start launches the background mutation loop. Calling Start twice is a no-op.
func (g *Generator) Start(interval time.Duration) {
	g.mu.Lock()
	if g.started {
		g.mu.Unlock()
		return
	}
	g.started = true
	g.mu.Unlock()

	if interval <= 0 {
		interval = DefaultInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				g.advance()
			case <-g.stop:
				return
			}
		}
	}()

	g.logger.Debug("synthetic data mutation started", "interval", interval.String())
}

// Stop halts the mutation loop. Safe to call more than once,
// and before Start.
func (g *Generator) Stop() {
	g.stopOnce.Do(func() { close(g.stop) })
}

// Overview returns a copy of the current synthetic analytics dataset.
func (g *Generator) Overview() model.AnalyticsOverview {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := g.analytics
	out.RecentDocuments = append([]model.Document(nil), g.analytics.RecentDocuments...)
	out.RecentQueries = append([]model.Query(nil), g.analytics.RecentQueries...)
	return out
}

// FAQs returns a copy of the current synthetic FAQ list.
func (g *Generator) FAQs() []model.FAQ {
	g.mu.Lock()
	defer g.mu.Unlock()

	return append([]model.FAQ(nil), g.faqs...)
}

// AddFAQ prepends a new FAQ entry and returns it.
func (g *Generator) AddFAQ(question, answer, category string) model.FAQ {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	faq := model.FAQ{
		ID:        uuid.New().String(),
		Question:  question,
		Answer:    answer,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
		IsActive:  true,
	}
	g.faqs = append([]model.FAQ{faq}, g.faqs...)
	return faq
}

// UpdateFAQ applies the non-empty fields to an existing entry.
// Returns false if no entry with that ID exists.
func (g *Generator) UpdateFAQ(id, question, answer, category string) (model.FAQ, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.faqs {
		if g.faqs[i].ID != id {
			continue
		}
		if question != "" {
			g.faqs[i].Question = question
		}
		if answer != "" {
			g.faqs[i].Answer = answer
		}
		if category != "" {
			g.faqs[i].Category = category
		}
		g.faqs[i].UpdatedAt = time.Now()
		return g.faqs[i], true
	}
	return model.FAQ{}, false
}

// DeleteFAQ removes an entry by ID. Returns false if it does not exist.
func (g *Generator) DeleteFAQ(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.faqs {
		if g.faqs[i].ID == id {
			g.faqs = append(g.faqs[:i], g.faqs[i+1:]...)
			return true
		}
	}
	return false
}

// advance performs one round of probabilistic micro-mutations.
func (g *Generator) advance() {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()

	// Occasionally a new query arrives.
	if g.rnd.Float64() < 0.3 {
		q := model.Query{
			ID:        uuid.New().String(),
			Question:  questionPool[g.rnd.Intn(len(questionPool))],
			ModeUsed:  "langchain",
			CreatedAt: now,
			UserID:    "user" + uuid.New().String()[:8],
		}
		g.analytics.RecentQueries = append([]model.Query{q}, g.analytics.RecentQueries...)
		if len(g.analytics.RecentQueries) > maxRecent {
			g.analytics.RecentQueries = g.analytics.RecentQueries[:maxRecent]
		}
		g.analytics.Queries.Total++
		g.analytics.Queries.Langchain++
	}

	// Occasionally the active-user count drifts, bounded below.
	if g.rnd.Float64() < 0.2 {
		active := g.analytics.Users.Active + g.rnd.Intn(10) - 5
		if active < 50 {
			active = 50
		}
		g.analytics.Users.Active = active
	}

	// Occasionally a pending document finishes processing.
	if g.rnd.Float64() < 0.1 {
		for i := range g.analytics.RecentDocuments {
			if !g.analytics.RecentDocuments[i].IsProcessed {
				g.analytics.RecentDocuments[i].IsProcessed = true
				g.analytics.Documents.Processed++
				break
			}
		}
	}
}

func seedAnalytics(now time.Time) model.AnalyticsOverview {
	return model.AnalyticsOverview{
		Users:     model.UserCounts{Total: 1247, Active: 89},
		Documents: model.DocumentCounts{Total: 156, Processed: 142},
		Queries:   model.QueryCounts{Total: 2847, Langchain: 2847},
		RecentDocuments: []model.Document{
			{
				ID:          "1",
				Filename:    "Academic Calendar 2024.pdf",
				FileType:    "application/pdf",
				FileSize:    2048576,
				UploadedAt:  now.Add(-2 * time.Hour),
				IsProcessed: true,
			},
			{
				ID:          "2",
				Filename:    "Hostel Rules and Regulations.docx",
				FileType:    "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
				FileSize:    1024000,
				UploadedAt:  now.Add(-4 * time.Hour),
				IsProcessed: true,
			},
			{
				ID:          "3",
				Filename:    "Fee Structure 2024.xlsx",
				FileType:    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
				FileSize:    512000,
				UploadedAt:  now.Add(-6 * time.Hour),
				IsProcessed: false,
			},
		},
		RecentQueries: []model.Query{
			{
				ID:        "1",
				Question:  "What are the library timings?",
				ModeUsed:  "langchain",
				CreatedAt: now.Add(-30 * time.Minute),
				UserID:    "user123",
			},
			{
				ID:        "2",
				Question:  "How do I apply for hostel admission?",
				ModeUsed:  "langchain",
				CreatedAt: now.Add(-2 * time.Hour),
				UserID:    "user456",
			},
			{
				ID:        "3",
				Question:  "What are the fee payment methods?",
				ModeUsed:  "langchain",
				CreatedAt: now.Add(-4 * time.Hour),
				UserID:    "user789",
			},
		},
	}
}

func seedFAQs() []model.FAQ {
	mustParse := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	return []model.FAQ{
		{
			ID:        "1",
			Question:  "What are the library timings?",
			Answer:    "The library is open from 8:00 AM to 10:00 PM on weekdays and 9:00 AM to 6:00 PM on weekends.",
			Category:  "library",
			CreatedAt: mustParse("2024-01-15T10:30:00Z"),
			UpdatedAt: mustParse("2024-01-15T10:30:00Z"),
			IsActive:  true,
		},
		{
			ID:        "2",
			Question:  "How do I apply for hostel admission?",
			Answer:    "You can apply for hostel admission through the online portal. Visit the admissions section and fill out the hostel application form.",
			Category:  "hostel",
			CreatedAt: mustParse("2024-01-14T15:45:00Z"),
			UpdatedAt: mustParse("2024-01-14T15:45:00Z"),
			IsActive:  true,
		},
		{
			ID:        "3",
			Question:  "What are the fee payment methods?",
			Answer:    "You can pay fees online through net banking, credit/debit cards, or UPI. Offline payment is also accepted at the finance office.",
			Category:  "fees",
			CreatedAt: mustParse("2024-01-13T09:20:00Z"),
			UpdatedAt: mustParse("2024-01-13T09:20:00Z"),
			IsActive:  true,
		},
		{
			ID:        "4",
			Question:  "How can I access my exam results?",
			Answer:    "You can access your exam results through the student portal. Log in with your credentials and navigate to the results section.",
			Category:  "academics",
			CreatedAt: mustParse("2024-01-12T14:15:00Z"),
			UpdatedAt: mustParse("2024-01-12T14:15:00Z"),
			IsActive:  true,
		},
		{
			ID:        "5",
			Question:  "What is the procedure for course registration?",
			Answer:    "Course registration opens two weeks before the semester starts. You can register through the student portal during the designated period.",
			Category:  "academics",
			CreatedAt: mustParse("2024-01-11T11:30:00Z"),
			UpdatedAt: mustParse("2024-01-11T11:30:00Z"),
			IsActive:  true,
		},
	}
}
