// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"dashboard/internal/domain"
)

// DB implements every domain repository port in memory.
type DB struct {
	mu            sync.Mutex
	users         []*domain.User
	sessions      map[string]*domain.Session
	habits        []domain.Habit
	workouts      []domain.Workout
	foodLogs      []domain.FoodLog
	meditations   []domain.MeditationSession
	entries       []domain.FinancialEntry
	snapshots     []domain.WealthSnapshot
	relationships []domain.Relationship
	linkPapers    []domain.LinkPaper
	categories    []domain.Category
	recordings    []domain.Recording

	nextID map[string]int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]*domain.Session),
		nextID:   make(map[string]int64),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)
var _ domain.HabitRepository = (*DB)(nil)
var _ domain.WorkoutRepository = (*DB)(nil)
var _ domain.FoodLogRepository = (*DB)(nil)
var _ domain.MeditationRepository = (*DB)(nil)
var _ domain.WealthRepository = (*DB)(nil)
var _ domain.RelationshipRepository = (*DB)(nil)
var _ domain.LibraryRepository = (*DB)(nil)
var _ domain.RecordingRepository = (*DB)(nil)

func (db *DB) next(kind string) int64 {
	db.nextID[kind]++
	return db.nextID[kind]
}

// --- UserRepository ---

// GetByEmail returns the user with the given email, or nil.
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, u := range db.users {
		if u.Email == email {
			ret := *u
			return &ret, nil
		}
	}
	return nil, nil
}

// GetByID returns the user with the given id, or nil.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, u := range db.users {
		if u.ID == id {
			ret := *u
			return &ret, nil
		}
	}
	return nil, nil
}

// Create adds a user.
func (db *DB) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	u := &domain.User{
		ID:           db.next("user"),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	ret := *u
	return &ret, nil
}

// Count returns the number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// SessionRepo implements the session port on DB.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps a DB as a SessionRepository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create stores a session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken returns a session, or nil.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s, ok := r.db.sessions[token]
	if !ok {
		return nil, nil
	}
	ret := *s
	return &ret, nil
}

// Delete removes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired removes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for token, s := range r.db.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.db.sessions, token)
		}
	}
	return nil
}

// --- HabitRepository ---

// AddHabit adds a habit.
func (db *DB) AddHabit(ctx context.Context, name, purpose string, startedAt time.Time) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	h := domain.Habit{
		ID:        db.next("habit"),
		Name:      name,
		Purpose:   purpose,
		StartedAt: startedAt.UTC(),
		History:   []domain.Streak{},
	}
	db.habits = append(db.habits, h)
	return h.ID, nil
}

// GetHabit returns a habit, or nil.
func (db *DB) GetHabit(ctx context.Context, id int64) (*domain.Habit, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.habits {
		if db.habits[i].ID == id {
			ret := db.habits[i]
			ret.History = append([]domain.Streak(nil), db.habits[i].History...)
			return &ret, nil
		}
	}
	return nil, nil
}

// RestartHabit replaces a habit's streak start and history.
func (db *DB) RestartHabit(ctx context.Context, id int64, startedAt time.Time, history []domain.Streak) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.habits {
		if db.habits[i].ID == id {
			db.habits[i].StartedAt = startedAt.UTC()
			db.habits[i].History = append([]domain.Streak(nil), history...)
			return nil
		}
	}
	return nil
}

// DeleteHabit removes a habit.
func (db *DB) DeleteHabit(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.habits {
		if db.habits[i].ID == id {
			db.habits = append(db.habits[:i], db.habits[i+1:]...)
			return nil
		}
	}
	return nil
}

// ListHabits returns habits ordered by streak start, newest first.
func (db *DB) ListHabits(ctx context.Context) ([]domain.Habit, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	result := make([]domain.Habit, len(db.habits))
	copy(result, db.habits)
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartedAt.After(result[j].StartedAt)
	})
	return result, nil
}

// --- WorkoutRepository ---

// AddWorkout adds a workout.
func (db *DB) AddWorkout(ctx context.Context, performedAt time.Time, exercises []domain.Exercise) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	w := domain.Workout{
		ID:          db.next("workout"),
		PerformedAt: performedAt.UTC(),
		Exercises:   append([]domain.Exercise(nil), exercises...),
	}
	db.workouts = append(db.workouts, w)
	return w.ID, nil
}

// ListWorkouts returns workouts newest first, up to limit (<=0 for all).
func (db *DB) ListWorkouts(ctx context.Context, limit int) ([]domain.Workout, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	result := make([]domain.Workout, len(db.workouts))
	copy(result, db.workouts)
	sort.Slice(result, func(i, j int) bool {
		return result[i].PerformedAt.After(result[j].PerformedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// --- FoodLogRepository ---

// CreateDayLog creates the log for a day, enforcing one log per day.
func (db *DB) CreateDayLog(ctx context.Context, day string, foods []domain.Food) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.foodLogs {
		if db.foodLogs[i].Day == day {
			return 0, domain.ErrDuplicateDay
		}
	}
	log := domain.FoodLog{
		ID:    db.next("foodlog"),
		Day:   day,
		Foods: append([]domain.Food(nil), foods...),
	}
	db.foodLogs = append(db.foodLogs, log)
	return log.ID, nil
}

// GetDayLog returns the log for a day, or nil.
func (db *DB) GetDayLog(ctx context.Context, day string) (*domain.FoodLog, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.foodLogs {
		if db.foodLogs[i].Day == day {
			ret := db.foodLogs[i]
			ret.Foods = append([]domain.Food(nil), db.foodLogs[i].Foods...)
			return &ret, nil
		}
	}
	return nil, nil
}

// AppendFood appends a food item to a log.
func (db *DB) AppendFood(ctx context.Context, logID int64, f domain.Food) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.foodLogs {
		if db.foodLogs[i].ID == logID {
			db.foodLogs[i].Foods = append(db.foodLogs[i].Foods, f)
			return nil
		}
	}
	return nil
}

// RemoveFood removes one food item from a log.
func (db *DB) RemoveFood(ctx context.Context, logID, foodID int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.foodLogs {
		if db.foodLogs[i].ID != logID {
			continue
		}
		foods := db.foodLogs[i].Foods
		for j := range foods {
			if foods[j].ID == foodID {
				db.foodLogs[i].Foods = append(foods[:j], foods[j+1:]...)
				return nil
			}
		}
	}
	return nil
}

// ListRecentDayLogs returns day logs newest first, up to limit (<=0 for all).
func (db *DB) ListRecentDayLogs(ctx context.Context, limit int) ([]domain.FoodLog, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	result := make([]domain.FoodLog, len(db.foodLogs))
	copy(result, db.foodLogs)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Day > result[j].Day
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// --- MeditationRepository ---

// AddSession adds a meditation session.
func (db *DB) AddSession(ctx context.Context, s domain.MeditationSession) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	s.ID = db.next("meditation")
	s.Date = s.Date.UTC()
	db.meditations = append(db.meditations, s)
	return s.ID, nil
}

// ListRecentSessions returns a user's sessions newest first, up to limit.
func (db *DB) ListRecentSessions(ctx context.Context, userID int64, limit int) ([]domain.MeditationSession, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	result := make([]domain.MeditationSession, 0, len(db.meditations))
	for _, s := range db.meditations {
		if s.UserID == userID {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// --- WealthRepository ---

// AddEntry adds a financial entry.
func (db *DB) AddEntry(ctx context.Context, e domain.FinancialEntry) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	e.ID = db.next("entry")
	e.OccurredOn = e.OccurredOn.UTC()
	db.entries = append(db.entries, e)
	return e.ID, nil
}

// AddEntries bulk-adds financial entries.
func (db *DB) AddEntries(ctx context.Context, entries []domain.FinancialEntry) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, e := range entries {
		e.ID = db.next("entry")
		e.OccurredOn = e.OccurredOn.UTC()
		db.entries = append(db.entries, e)
	}
	return len(entries), nil
}

// ListRecentEntries returns entries newest first, up to limit (<=0 for all).
func (db *DB) ListRecentEntries(ctx context.Context, limit int) ([]domain.FinancialEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	result := make([]domain.FinancialEntry, len(db.entries))
	copy(result, db.entries)
	sort.Slice(result, func(i, j int) bool {
		return result[i].OccurredOn.After(result[j].OccurredOn)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ListSnapshots returns wealth snapshots oldest first.
func (db *DB) ListSnapshots(ctx context.Context) ([]domain.WealthSnapshot, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	result := make([]domain.WealthSnapshot, len(db.snapshots))
	copy(result, db.snapshots)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Day.Before(result[j].Day)
	})
	return result, nil
}

// SeedSnapshot inserts a wealth snapshot. Snapshots are produced externally;
// this hook exists for dev seeding and tests.
func (db *DB) SeedSnapshot(day time.Time, total float64) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.snapshots = append(db.snapshots, domain.WealthSnapshot{
		ID:          db.next("snapshot"),
		Day:         day.UTC(),
		TotalWealth: total,
	})
}

// --- RelationshipRepository ---

// AddRelationship adds a relationship.
func (db *DB) AddRelationship(ctx context.Context, name string, lastInteraction time.Time) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	r := domain.Relationship{
		ID:              db.next("relationship"),
		Name:            name,
		LastInteraction: lastInteraction.UTC(),
	}
	db.relationships = append(db.relationships, r)
	return r.ID, nil
}

// UpdateLastInteraction sets a relationship's last interaction date.
func (db *DB) UpdateLastInteraction(ctx context.Context, id int64, at time.Time) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.relationships {
		if db.relationships[i].ID == id {
			db.relationships[i].LastInteraction = at.UTC()
			return nil
		}
	}
	return nil
}

// DeleteRelationship removes a relationship.
func (db *DB) DeleteRelationship(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.relationships {
		if db.relationships[i].ID == id {
			db.relationships = append(db.relationships[:i], db.relationships[i+1:]...)
			return nil
		}
	}
	return nil
}

// ListRelationships returns relationships by last interaction, newest first.
func (db *DB) ListRelationships(ctx context.Context) ([]domain.Relationship, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	result := make([]domain.Relationship, len(db.relationships))
	copy(result, db.relationships)
	sort.Slice(result, func(i, j int) bool {
		return result[i].LastInteraction.After(result[j].LastInteraction)
	})
	return result, nil
}

// --- LibraryRepository ---

// AddLinkPaper adds a link/paper.
func (db *DB) AddLinkPaper(ctx context.Context, lp domain.LinkPaper) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	lp.ID = db.next("linkpaper")
	lp.Categories = append([]string(nil), lp.Categories...)
	db.linkPapers = append(db.linkPapers, lp)
	return lp.ID, nil
}

// DeleteLinkPaper removes a link/paper.
func (db *DB) DeleteLinkPaper(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.linkPapers {
		if db.linkPapers[i].ID == id {
			db.linkPapers = append(db.linkPapers[:i], db.linkPapers[i+1:]...)
			return nil
		}
	}
	return nil
}

// ListLinkPapers returns links/papers newest first, optionally filtered by
// category name.
func (db *DB) ListLinkPapers(ctx context.Context, category string) ([]domain.LinkPaper, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	result := make([]domain.LinkPaper, 0, len(db.linkPapers))
	for _, lp := range db.linkPapers {
		if category == "" || containsString(lp.Categories, category) {
			result = append(result, lp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// AddCategory adds a category, enforcing unique names.
func (db *DB) AddCategory(ctx context.Context, name string) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, c := range db.categories {
		if c.Name == name {
			return 0, domain.ErrDuplicateCategory
		}
	}
	c := domain.Category{ID: db.next("category"), Name: name}
	db.categories = append(db.categories, c)
	return c.ID, nil
}

// DeleteCategory removes a category.
func (db *DB) DeleteCategory(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.categories {
		if db.categories[i].ID == id {
			db.categories = append(db.categories[:i], db.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

// ListCategories returns categories ordered by name.
func (db *DB) ListCategories(ctx context.Context) ([]domain.Category, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	result := make([]domain.Category, len(db.categories))
	copy(result, db.categories)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// --- RecordingRepository ---

// AddRecording adds a recording.
func (db *DB) AddRecording(ctx context.Context, rec domain.Recording) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	rec.ID = db.next("recording")
	rec.CreatedAt = rec.CreatedAt.UTC()
	db.recordings = append(db.recordings, rec)
	return rec.ID, nil
}

// ListRecordings returns a user's recordings newest first, up to limit.
func (db *DB) ListRecordings(ctx context.Context, userID int64, limit int) ([]domain.Recording, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	result := make([]domain.Recording, 0, len(db.recordings))
	for _, rec := range db.recordings {
		if rec.UserID == userID {
			result = append(result, rec)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func containsString(items []string, want string) bool {
	for _, s := range items {
		if s == want {
			return true
		}
	}
	return false
}
