package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"dashboard/internal/domain"
)

func TestUserRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	u, err := db.Create(ctx, "bob@example.com", "hash")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.Email != "bob@example.com" {
		t.Errorf("expected bob@example.com, got %s", u.Email)
	}

	u2, err := db.GetByEmail(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u2 == nil || u2.ID != u.ID {
		t.Error("failed to retrieve user")
	}

	count, _ := db.Count(ctx)
	if count != 1 {
		t.Errorf("expected 1 user, got %d", count)
	}
}

func TestSessionRepository(t *testing.T) {
	db := New()
	repo := NewSessionRepo(db)
	ctx := context.Background()

	err := repo.Create(ctx, 1, "token123", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	sess, err := repo.GetByToken(ctx, "token123")
	if err != nil {
		t.Fatalf("GetByToken: %v", err)
	}
	if sess == nil {
		t.Error("expected session, got nil")
	}

	_ = repo.Create(ctx, 1, "stale", time.Now().Add(-time.Hour))
	_ = repo.DeleteExpired(ctx)
	stale, _ := repo.GetByToken(ctx, "stale")
	if stale != nil {
		t.Error("expected expired session to be removed")
	}

	_ = repo.Delete(ctx, "token123")
	sess, _ = repo.GetByToken(ctx, "token123")
	if sess != nil {
		t.Error("expected nil (deleted)")
	}
}

func TestHabitRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	start := time.Now().Add(-48 * time.Hour)
	id, err := db.AddHabit(ctx, "no sugar", "health", start)
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}
	if id == 0 {
		t.Error("expected non-zero ID")
	}

	h, err := db.GetHabit(ctx, id)
	if err != nil {
		t.Fatalf("GetHabit: %v", err)
	}
	if h == nil || h.Name != "no sugar" {
		t.Fatalf("failed to retrieve habit: %+v", h)
	}

	restart := time.Now()
	history := append(h.History, domain.Streak{StartedAt: h.StartedAt, EndedAt: restart})
	if err := db.RestartHabit(ctx, id, restart, history); err != nil {
		t.Fatalf("RestartHabit: %v", err)
	}
	h, _ = db.GetHabit(ctx, id)
	if len(h.History) != 1 {
		t.Errorf("expected 1 past streak, got %d", len(h.History))
	}
	if !h.StartedAt.Equal(restart.UTC()) {
		t.Errorf("expected streak start %v, got %v", restart.UTC(), h.StartedAt)
	}

	_ = db.DeleteHabit(ctx, id)
	habits, _ := db.ListHabits(ctx)
	if len(habits) != 0 {
		t.Errorf("expected 0 habits, got %d", len(habits))
	}
}

func TestWorkoutRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	now := time.Now()
	_, _ = db.AddWorkout(ctx, now.Add(-time.Hour), []domain.Exercise{
		{Name: "squat", Sets: []domain.ExerciseSet{{Reps: 5, Weight: 185}}},
	})
	_, _ = db.AddWorkout(ctx, now, []domain.Exercise{
		{Name: "squat", Sets: []domain.ExerciseSet{{Reps: 5, Weight: 195}}},
	})

	workouts, err := db.ListWorkouts(ctx, 10)
	if err != nil {
		t.Fatalf("ListWorkouts: %v", err)
	}
	if len(workouts) != 2 {
		t.Fatalf("expected 2 workouts, got %d", len(workouts))
	}
	if workouts[0].Exercises[0].Sets[0].Weight != 195 {
		t.Error("expected newest workout first")
	}

	limited, _ := db.ListWorkouts(ctx, 1)
	if len(limited) != 1 {
		t.Errorf("expected 1 workout with limit, got %d", len(limited))
	}
}

func TestFoodLogRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	logID, err := db.CreateDayLog(ctx, "2026-03-01", []domain.Food{{ID: 1, Name: "oats", Calories: 300}})
	if err != nil {
		t.Fatalf("CreateDayLog: %v", err)
	}

	// Second log for the same day must be rejected.
	_, err = db.CreateDayLog(ctx, "2026-03-01", nil)
	if !errors.Is(err, domain.ErrDuplicateDay) {
		t.Errorf("expected ErrDuplicateDay, got %v", err)
	}

	if err := db.AppendFood(ctx, logID, domain.Food{ID: 2, Name: "eggs", Calories: 150}); err != nil {
		t.Fatalf("AppendFood: %v", err)
	}
	log, _ := db.GetDayLog(ctx, "2026-03-01")
	if log == nil || len(log.Foods) != 2 {
		t.Fatalf("expected 2 foods, got %+v", log)
	}

	_ = db.RemoveFood(ctx, logID, 1)
	log, _ = db.GetDayLog(ctx, "2026-03-01")
	if len(log.Foods) != 1 || log.Foods[0].Name != "eggs" {
		t.Errorf("expected only eggs left, got %+v", log.Foods)
	}

	_, _ = db.CreateDayLog(ctx, "2026-03-02", nil)
	logs, _ := db.ListRecentDayLogs(ctx, 10)
	if len(logs) != 2 || logs[0].Day != "2026-03-02" {
		t.Errorf("expected newest day first, got %+v", logs)
	}
}

func TestMeditationRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	_, err := db.AddSession(ctx, domain.MeditationSession{UserID: 1, Date: time.Now(), DurationMin: 20, Type: "breath"})
	if err != nil {
		t.Fatalf("AddSession: %v", err)
	}

	sessions, _ := db.ListRecentSessions(ctx, 1, 10)
	if len(sessions) != 1 {
		t.Errorf("expected 1 session, got %d", len(sessions))
	}

	// Other user sees nothing.
	other, _ := db.ListRecentSessions(ctx, 999, 10)
	if len(other) != 0 {
		t.Error("expected 0 sessions for other user")
	}
}

func TestWealthRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	now := time.Now()
	_, err := db.AddEntry(ctx, domain.FinancialEntry{OccurredOn: now, Amount: 1200, Category: domain.CategoryIncome})
	if err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	n, err := db.AddEntries(ctx, []domain.FinancialEntry{
		{OccurredOn: now.Add(-time.Hour), Amount: 40, Category: domain.CategoryExpense},
		{OccurredOn: now.Add(time.Hour), Amount: 10, Category: domain.CategorySubscription},
	})
	if err != nil {
		t.Fatalf("AddEntries: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 inserted, got %d", n)
	}

	entries, _ := db.ListRecentEntries(ctx, 10)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Category != domain.CategorySubscription {
		t.Error("expected newest entry first")
	}

	db.SeedSnapshot(now.Add(-24*time.Hour), 1000)
	db.SeedSnapshot(now, 1100)
	snaps, _ := db.ListSnapshots(ctx)
	if len(snaps) != 2 || snaps[0].TotalWealth != 1000 {
		t.Errorf("expected snapshots oldest first, got %+v", snaps)
	}
}

func TestRelationshipRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	now := time.Now()
	id, err := db.AddRelationship(ctx, "Alice", now.Add(-72*time.Hour))
	if err != nil {
		t.Fatalf("AddRelationship: %v", err)
	}
	_, _ = db.AddRelationship(ctx, "Bob", now)

	if err := db.UpdateLastInteraction(ctx, id, now.Add(time.Hour)); err != nil {
		t.Fatalf("UpdateLastInteraction: %v", err)
	}
	rels, _ := db.ListRelationships(ctx)
	if len(rels) != 2 || rels[0].Name != "Alice" {
		t.Errorf("expected Alice first after touch, got %+v", rels)
	}

	_ = db.DeleteRelationship(ctx, id)
	rels, _ = db.ListRelationships(ctx)
	if len(rels) != 1 || rels[0].Name != "Bob" {
		t.Errorf("expected only Bob left, got %+v", rels)
	}
}

func TestLibraryRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	_, err := db.AddCategory(ctx, "ml")
	if err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	_, err = db.AddCategory(ctx, "ml")
	if !errors.Is(err, domain.ErrDuplicateCategory) {
		t.Errorf("expected ErrDuplicateCategory, got %v", err)
	}

	now := time.Now()
	id, err := db.AddLinkPaper(ctx, domain.LinkPaper{
		Title:       "Attention Is All You Need",
		URL:         "https://example.com/paper",
		Description: "transformers",
		Categories:  []string{"ml"},
		CreatedAt:   now,
	})
	if err != nil {
		t.Fatalf("AddLinkPaper: %v", err)
	}
	_, _ = db.AddLinkPaper(ctx, domain.LinkPaper{Title: "Blog post", Description: "misc", CreatedAt: now.Add(time.Minute)})

	all, _ := db.ListLinkPapers(ctx, "")
	if len(all) != 2 || all[0].Title != "Blog post" {
		t.Errorf("expected 2 items newest first, got %+v", all)
	}

	filtered, _ := db.ListLinkPapers(ctx, "ml")
	if len(filtered) != 1 || filtered[0].ID != id {
		t.Errorf("expected category filter to match 1 item, got %+v", filtered)
	}

	_ = db.DeleteLinkPaper(ctx, id)
	all, _ = db.ListLinkPapers(ctx, "")
	if len(all) != 1 {
		t.Errorf("expected 1 item after delete, got %d", len(all))
	}

	cats, _ := db.ListCategories(ctx)
	if len(cats) != 1 {
		t.Fatalf("expected 1 category, got %d", len(cats))
	}
	_ = db.DeleteCategory(ctx, cats[0].ID)
	cats, _ = db.ListCategories(ctx)
	if len(cats) != 0 {
		t.Errorf("expected 0 categories, got %d", len(cats))
	}
}

func TestRecordingRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	now := time.Now()
	_, err := db.AddRecording(ctx, domain.Recording{UserID: 1, CreatedAt: now, AudioURL: "/files/a.webm", Transcript: "hello"})
	if err != nil {
		t.Fatalf("AddRecording: %v", err)
	}
	_, _ = db.AddRecording(ctx, domain.Recording{UserID: 1, CreatedAt: now.Add(time.Minute), AudioURL: "/files/b.webm", Transcript: "again"})

	recs, _ := db.ListRecordings(ctx, 1, 10)
	if len(recs) != 2 || recs[0].Transcript != "again" {
		t.Errorf("expected 2 recordings newest first, got %+v", recs)
	}

	other, _ := db.ListRecordings(ctx, 999, 10)
	if len(other) != 0 {
		t.Error("expected 0 recordings for other user")
	}
}
