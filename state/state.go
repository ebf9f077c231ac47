// Package state owns the application state: the six domain collections,
// the current session and the consumer shell's navigation. All mutations go
// through setters that replace a collection wholesale and write it back to
// the store before returning, so the store always holds the latest state.
package state

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"thekedaar-server/models"
	"thekedaar-server/seed"
	"thekedaar-server/store"
)

// App is the application-state container. A single RWMutex keeps all
// mutations single-writer.
type App struct {
	mu    sync.RWMutex
	store *store.Store

	workers    []models.Worker
	consumers  []models.Consumer
	bookings   []models.Booking
	categories []models.Category
	reviews    []models.Review
	feedbacks  []models.Feedback

	theme string

	// session state
	role          models.UserRole
	currentWorker *models.Worker
	showWelcome   bool

	// consumer shell navigation
	subView          SubView
	selectedCategory string
	selectedWorker   *models.Worker
}

// New creates an empty container bound to the given store. Call Hydrate
// before serving.
func New(s *store.Store) *App {
	return &App{
		store:       s,
		role:        models.RoleConsumer,
		showWelcome: true,
		subView:     SubHome,
		theme:       "light",
	}
}

// Hydrate loads every collection from the store, substituting seed data
// where nothing (or nothing decodable) is persisted, then writes the result
// back so the store reflects the live state. The grouped review seed is
// flattened into the flat reviews collection here, exactly once: any later
// boot finds the flat list persisted and skips the reshaping.
func (a *App) Hydrate() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.store.LoadJSON(store.KeyWorkers, &a.workers) {
		a.workers = seed.Workers()
	}
	if !a.store.LoadJSON(store.KeyConsumers, &a.consumers) {
		a.consumers = []models.Consumer{}
	}
	if !a.store.LoadJSON(store.KeyBookings, &a.bookings) {
		a.bookings = []models.Booking{}
	}
	if !a.store.LoadJSON(store.KeyCategories, &a.categories) {
		a.categories = seed.Categories()
	}
	if !a.store.LoadJSON(store.KeyReviews, &a.reviews) {
		a.reviews = flattenSeedReviews(seed.Reviews())
	}
	if !a.store.LoadJSON(store.KeyFeedbacks, &a.feedbacks) {
		a.feedbacks = []models.Feedback{}
	}

	var theme string
	if a.store.LoadJSON(store.KeyTheme, &theme) && (theme == "light" || theme == "dark") {
		a.theme = theme
	}

	for key, v := range map[string]interface{}{
		store.KeyWorkers:    a.workers,
		store.KeyConsumers:  a.consumers,
		store.KeyBookings:   a.bookings,
		store.KeyCategories: a.categories,
		store.KeyReviews:    a.reviews,
		store.KeyFeedbacks:  a.feedbacks,
	} {
		if err := a.store.SaveJSON(key, v); err != nil {
			return fmt.Errorf("failed to persist %q after hydration: %w", key, err)
		}
	}

	log.Printf("✅ State hydrated: %d workers, %d consumers, %d bookings, %d categories, %d reviews, %d feedbacks",
		len(a.workers), len(a.consumers), len(a.bookings), len(a.categories), len(a.reviews), len(a.feedbacks))
	return nil
}

// flattenSeedReviews reshapes the worker-id-grouped seed reviews into the
// flat list the reviews collection persists.
func flattenSeedReviews(grouped map[int][]models.SeedReview) []models.Review {
	flat := []models.Review{}
	for workerID, workerReviews := range grouped {
		for _, r := range workerReviews {
			flat = append(flat, models.Review{
				ID:           r.ID,
				WorkerID:     workerID,
				CustomerName: r.CustomerName,
				Rating:       r.Rating,
				Comment:      r.Comment,
				Date:         r.Date,
				Verified:     r.Verified,
			})
		}
	}
	return flat
}

// persist writes one collection back to the store. Caller holds the lock.
func (a *App) persist(key string, v interface{}) error {
	if err := a.store.SaveJSON(key, v); err != nil {
		log.Printf("❌ Failed to persist %q: %v", key, err)
		return err
	}
	return nil
}

// --- Collection getters (copies; callers must not mutate) ---

func (a *App) Workers() []models.Worker {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.Worker(nil), a.workers...)
}

func (a *App) Consumers() []models.Consumer {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.Consumer(nil), a.consumers...)
}

func (a *App) Bookings() []models.Booking {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.Booking(nil), a.bookings...)
}

func (a *App) Categories() []models.Category {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.Category(nil), a.categories...)
}

func (a *App) Reviews() []models.Review {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.Review(nil), a.reviews...)
}

func (a *App) Feedbacks() []models.Feedback {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.Feedback(nil), a.feedbacks...)
}

// --- Collection setters (full replace + persist) ---

func (a *App) SetWorkers(workers []models.Worker) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.workers = workers
	return a.persist(store.KeyWorkers, a.workers)
}

func (a *App) SetConsumers(consumers []models.Consumer) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.consumers = consumers
	return a.persist(store.KeyConsumers, a.consumers)
}

func (a *App) SetBookings(bookings []models.Booking) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bookings = bookings
	return a.persist(store.KeyBookings, a.bookings)
}

func (a *App) SetCategories(categories []models.Category) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.categories = categories
	return a.persist(store.KeyCategories, a.categories)
}

func (a *App) SetReviews(reviews []models.Review) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reviews = reviews
	return a.persist(store.KeyReviews, a.reviews)
}

func (a *App) SetFeedbacks(feedbacks []models.Feedback) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.feedbacks = feedbacks
	return a.persist(store.KeyFeedbacks, a.feedbacks)
}

// --- Lookups ---

// FindWorkerByID returns the worker with the given numeric id.
func (a *App) FindWorkerByID(id int) (models.Worker, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return findWorker(a.workers, id)
}

func findWorker(workers []models.Worker, id int) (models.Worker, bool) {
	for _, w := range workers {
		if w.ID == id {
			return w, true
		}
	}
	return models.Worker{}, false
}

// FindWorkerByLogin matches a partner by exact id-as-string or by phone
// with whitespace stripped from both sides.
func (a *App) FindWorkerByLogin(id string) (models.Worker, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	stripped := stripSpaces(id)
	for _, w := range a.workers {
		if strconv.Itoa(w.ID) == id || stripSpaces(w.Phone) == stripped {
			return w, true
		}
	}
	return models.Worker{}, false
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// FindConsumerByEmail matches a consumer by case-insensitive email.
func (a *App) FindConsumerByEmail(email string) (models.Consumer, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, c := range a.consumers {
		if strings.EqualFold(c.Email, email) {
			return c, true
		}
	}
	return models.Consumer{}, false
}

// WorkerIDExists reports whether a worker with the given id already exists.
func (a *App) WorkerIDExists(id int) bool {
	_, ok := a.FindWorkerByID(id)
	return ok
}

// CategoryWorkers returns the workers whose profession matches the named
// category, case-insensitively, exactly or by containment.
func (a *App) CategoryWorkers(categoryID string) []models.Worker {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var category *models.Category
	for i := range a.categories {
		if a.categories[i].ID == categoryID {
			category = &a.categories[i]
			break
		}
	}
	if category == nil {
		return []models.Worker{}
	}

	name := strings.ToLower(category.Name)
	matched := []models.Worker{}
	for _, w := range a.workers {
		profession := strings.ToLower(w.Profession)
		if profession == name || strings.Contains(profession, name) {
			matched = append(matched, w)
		}
	}
	return matched
}

// WorkerReviews returns all reviews referencing the given worker, newest
// first as stored.
func (a *App) WorkerReviews(workerID int) []models.Review {
	a.mu.RLock()
	defer a.mu.RUnlock()
	matched := []models.Review{}
	for _, r := range a.reviews {
		if r.WorkerID == workerID {
			matched = append(matched, r)
		}
	}
	return matched
}

// WorkerBookings returns all bookings referencing the given worker.
func (a *App) WorkerBookings(workerID int) []models.Booking {
	a.mu.RLock()
	defer a.mu.RUnlock()
	matched := []models.Booking{}
	for _, b := range a.bookings {
		if b.WorkerID == workerID {
			matched = append(matched, b)
		}
	}
	return matched
}

// --- Domain operations ---

// AddConsumer appends a new consumer record built from the registration
// request and persists the collection.
func (a *App) AddConsumer(req models.ConsumerRegisterRequest) (models.Consumer, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := time.Now()
	consumer := models.Consumer{
		ID:       strconv.FormatInt(now.UnixMilli(), 10),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		JoinDate: now.Format("2006-01-02"),
		Status:   models.ConsumerActive,
		Password: req.Password,
	}
	a.consumers = append(a.consumers, consumer)
	if err := a.persist(store.KeyConsumers, a.consumers); err != nil {
		return models.Consumer{}, err
	}
	return consumer, nil
}

// AddWorker appends a fully-built worker record (id already generated) and
// persists the collection.
func (a *App) AddWorker(worker models.Worker) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.workers = append(a.workers, worker)
	return a.persist(store.KeyWorkers, a.workers)
}

// UpdateWorker replaces the matching worker record in place. When the
// updated worker is the logged-in partner, the session identity follows.
func (a *App) UpdateWorker(updated models.Worker) (models.Worker, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	found := false
	for i, w := range a.workers {
		if w.ID == updated.ID {
			a.workers[i] = updated
			found = true
			break
		}
	}
	if !found {
		return models.Worker{}, fmt.Errorf("worker %d not found", updated.ID)
	}
	if a.currentWorker != nil && a.currentWorker.ID == updated.ID {
		w := updated
		a.currentWorker = &w
	}
	if err := a.persist(store.KeyWorkers, a.workers); err != nil {
		return models.Worker{}, err
	}
	return updated, nil
}

// ConfirmBooking creates a CONFIRMED booking for the given worker at the
// head of the bookings list, snapshotting the worker's name, profession and
// hourly rate, and moves the consumer shell to the bookings sub-view.
func (a *App) ConfirmBooking(workerID int, date, timeSlot string) (models.Booking, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	worker, ok := findWorker(a.workers, workerID)
	if !ok {
		return models.Booking{}, fmt.Errorf("worker %d not found", workerID)
	}

	booking := models.Booking{
		ID:         strconv.FormatInt(time.Now().UnixMilli(), 10),
		WorkerID:   worker.ID,
		WorkerName: worker.Name,
		Date:       date,
		Time:       timeSlot,
		Service:    worker.Profession,
		Status:     models.BookingConfirmed,
		Amount:     worker.HourlyRate,
	}
	a.bookings = append([]models.Booking{booking}, a.bookings...)
	if err := a.persist(store.KeyBookings, a.bookings); err != nil {
		return models.Booking{}, err
	}

	a.subView = SubBookings
	return booking, nil
}

// SubmitReview prepends the review to the reviews collection, then replaces
// the one matching worker record with its aggregates advanced:
//
//	newTotal  = totalReviews + 1
//	newRating = round1((rating*totalReviews + submitted) / newTotal)
//
// All other worker records are left value-equal. A review for an unknown
// worker id is still recorded; only the aggregate update is skipped.
func (a *App) SubmitReview(req models.ReviewRequest) (models.Review, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	customerName := req.CustomerName
	if customerName == "" {
		customerName = "Guest User"
	}

	review := models.Review{
		ID:           strconv.FormatInt(time.Now().UnixMilli(), 10),
		WorkerID:     req.WorkerID,
		CustomerName: customerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
		Date:         time.Now().Format("02/01/2006"),
		Verified:     true,
	}
	a.reviews = append([]models.Review{review}, a.reviews...)
	if err := a.persist(store.KeyReviews, a.reviews); err != nil {
		return models.Review{}, err
	}

	for i, w := range a.workers {
		if w.ID == req.WorkerID {
			newTotal := w.TotalReviews + 1
			newRating := round1((w.Rating*float64(w.TotalReviews) + float64(req.Rating)) / float64(newTotal))
			w.Rating = newRating
			w.TotalReviews = newTotal
			a.workers[i] = w
			if err := a.persist(store.KeyWorkers, a.workers); err != nil {
				return models.Review{}, err
			}
			break
		}
	}
	return review, nil
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// AddFeedback prepends a feedback record and persists the collection.
func (a *App) AddFeedback(req models.FeedbackRequest) (models.Feedback, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	feedback := models.Feedback{
		ID:      strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Date:    time.Now().Format("2006-01-02"),
	}
	a.feedbacks = append([]models.Feedback{feedback}, a.feedbacks...)
	if err := a.persist(store.KeyFeedbacks, a.feedbacks); err != nil {
		return models.Feedback{}, err
	}
	return feedback, nil
}

// --- Theme preference ---

func (a *App) Theme() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.theme
}

func (a *App) SetTheme(theme string) error {
	if theme != "light" && theme != "dark" {
		return fmt.Errorf("invalid theme %q", theme)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.theme = theme
	return a.persist(store.KeyTheme, a.theme)
}
