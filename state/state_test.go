package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"thekedaar-server/models"
	"thekedaar-server/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	s, err := store.New(db)
	require.NoError(t, err)
	return s
}

func newTestApp(t *testing.T) (*App, *store.Store) {
	t.Helper()
	s := newTestStore(t)
	app := New(s)
	require.NoError(t, app.Hydrate())
	return app, s
}

func TestHydrateSeedsDefaults(t *testing.T) {
	app, _ := newTestApp(t)

	assert.Len(t, app.Workers(), 7)
	assert.Len(t, app.Categories(), 8)
	assert.Empty(t, app.Consumers())
	assert.Empty(t, app.Bookings())
	assert.Empty(t, app.Feedbacks())
	assert.Equal(t, "light", app.Theme())
}

func TestSeedReviewsFlattenedExactlyOnce(t *testing.T) {
	app, s := newTestApp(t)

	reviews := app.Reviews()
	assert.Len(t, reviews, 6)
	for _, r := range reviews {
		assert.NotZero(t, r.WorkerID, "flattened review %s must carry its worker id", r.ID)
	}

	// a second boot finds the flat list persisted and must not reshape again
	second := New(s)
	require.NoError(t, second.Hydrate())
	assert.ElementsMatch(t, reviews, second.Reviews())
}

func TestPersistReloadRoundTrip(t *testing.T) {
	app, s := newTestApp(t)

	_, err := app.AddConsumer(models.ConsumerRegisterRequest{
		Name: "Priya", Email: "priya@test.com", Phone: "9000000001", Password: "pw",
	})
	require.NoError(t, err)
	_, err = app.ConfirmBooking(101231, "2026-09-01", "10:00 AM")
	require.NoError(t, err)
	_, err = app.AddFeedback(models.FeedbackRequest{Name: "Priya", Message: "Great app"})
	require.NoError(t, err)

	reloaded := New(s)
	require.NoError(t, reloaded.Hydrate())

	assert.Equal(t, app.Workers(), reloaded.Workers())
	assert.Equal(t, app.Consumers(), reloaded.Consumers())
	assert.Equal(t, app.Bookings(), reloaded.Bookings())
	assert.Equal(t, app.Categories(), reloaded.Categories())
	assert.Equal(t, app.Reviews(), reloaded.Reviews())
	assert.Equal(t, app.Feedbacks(), reloaded.Feedbacks())
}

func TestSubmitReviewAdvancesRunningMean(t *testing.T) {
	app, _ := newTestApp(t)

	fresh := models.Worker{ID: 999001, Name: "New Partner", Profession: "Mason", Rating: 0, TotalReviews: 0}
	require.NoError(t, app.AddWorker(fresh))

	othersBefore := app.Workers()

	submit := func(rating int) models.Worker {
		_, err := app.SubmitReview(models.ReviewRequest{WorkerID: 999001, Rating: rating})
		require.NoError(t, err)
		w, ok := app.FindWorkerByID(999001)
		require.True(t, ok)
		return w
	}

	w := submit(4)
	assert.Equal(t, 4.0, w.Rating)
	assert.Equal(t, 1, w.TotalReviews)

	w = submit(5)
	assert.Equal(t, 4.5, w.Rating)
	assert.Equal(t, 2, w.TotalReviews)

	w = submit(5)
	assert.Equal(t, 4.7, w.Rating) // (4.5*2+5)/3 rounded to one decimal
	assert.Equal(t, 3, w.TotalReviews)

	// every other worker record stays value-equal
	for _, before := range othersBefore {
		if before.ID == 999001 {
			continue
		}
		after, ok := app.FindWorkerByID(before.ID)
		require.True(t, ok)
		assert.Equal(t, before, after)
	}
}

func TestSubmitReviewPrependsAndDefaultsAuthor(t *testing.T) {
	app, _ := newTestApp(t)

	review, err := app.SubmitReview(models.ReviewRequest{WorkerID: 101231, Rating: 5, Comment: "Spot on"})
	require.NoError(t, err)

	assert.Equal(t, "Guest User", review.CustomerName)
	assert.True(t, review.Verified)

	reviews := app.Reviews()
	require.NotEmpty(t, reviews)
	assert.Equal(t, review.ID, reviews[0].ID, "new review must sit at the head of the list")
}

func TestSubmitReviewUnknownWorkerStillRecorded(t *testing.T) {
	app, _ := newTestApp(t)

	before := len(app.Reviews())
	workersBefore := app.Workers()

	_, err := app.SubmitReview(models.ReviewRequest{WorkerID: 424242, Rating: 3})
	require.NoError(t, err)

	assert.Len(t, app.Reviews(), before+1)
	assert.Equal(t, workersBefore, app.Workers(), "no aggregate moves for an unknown worker")
}

func TestConfirmBookingSnapshotsWorker(t *testing.T) {
	app, _ := newTestApp(t)

	booking, err := app.ConfirmBooking(101231, "2026-09-02", "2:00 PM")
	require.NoError(t, err)

	assert.Equal(t, 101231, booking.WorkerID)
	assert.Equal(t, "Ramesh Kumar", booking.WorkerName)
	assert.Equal(t, "Plumber", booking.Service)
	assert.Equal(t, 300.0, booking.Amount)
	assert.Equal(t, models.BookingConfirmed, booking.Status)

	bookings := app.Bookings()
	require.NotEmpty(t, bookings)
	assert.Equal(t, booking.ID, bookings[0].ID, "new booking must sit at the head of the list")

	_, err = app.ConfirmBooking(424242, "2026-09-02", "2:00 PM")
	assert.Error(t, err)
}

func TestUpdateWorkerReplacesInPlace(t *testing.T) {
	app, _ := newTestApp(t)

	w, ok := app.FindWorkerByID(101231)
	require.True(t, ok)
	w.HourlyRate = 325
	w.Description = "Updated profile"

	updated, err := app.UpdateWorker(w)
	require.NoError(t, err)
	assert.Equal(t, 325.0, updated.HourlyRate)

	again, ok := app.FindWorkerByID(101231)
	require.True(t, ok)
	assert.Equal(t, "Updated profile", again.Description)

	_, err = app.UpdateWorker(models.Worker{ID: 424242})
	assert.Error(t, err)
}

func TestUpdateWorkerFollowsSessionIdentity(t *testing.T) {
	app, _ := newTestApp(t)

	w, ok := app.FindWorkerByID(103582)
	require.True(t, ok)
	require.NoError(t, app.BeginSession(models.RoleWorker, &w))

	w.Area = "Sector 9, Bhilai"
	_, err := app.UpdateWorker(w)
	require.NoError(t, err)

	current, ok := app.CurrentWorker()
	require.True(t, ok)
	assert.Equal(t, "Sector 9, Bhilai", current.Area)
}

func TestFindWorkerByLogin(t *testing.T) {
	app, _ := newTestApp(t)

	byID, ok := app.FindWorkerByLogin("101231")
	require.True(t, ok)
	assert.Equal(t, "Ramesh Kumar", byID.Name)

	// phone matches with whitespace stripped from both sides
	byPhone, ok := app.FindWorkerByLogin("+919826111223")
	require.True(t, ok)
	assert.Equal(t, 101231, byPhone.ID)

	byPhoneSpaced, ok := app.FindWorkerByLogin("+91 98261 11223")
	require.True(t, ok)
	assert.Equal(t, 101231, byPhoneSpaced.ID)

	_, ok = app.FindWorkerByLogin("000000")
	assert.False(t, ok)
}

func TestFindConsumerByEmailIsCaseInsensitive(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := app.AddConsumer(models.ConsumerRegisterRequest{
		Name: "U", Email: "u@test.com", Phone: "9000000002", Password: "pw1",
	})
	require.NoError(t, err)

	found, ok := app.FindConsumerByEmail("U@TEST.com")
	require.True(t, ok)
	assert.Equal(t, "u@test.com", found.Email)
}

func TestCategoryWorkersMatchesProfession(t *testing.T) {
	app, _ := newTestApp(t)

	plumbers := app.CategoryWorkers("plumber")
	require.Len(t, plumbers, 2)
	for _, w := range plumbers {
		assert.Equal(t, "Plumber", w.Profession)
	}

	assert.Empty(t, app.CategoryWorkers("gardener"))
	assert.Empty(t, app.CategoryWorkers("no-such-category"))
}

func TestThemePersists(t *testing.T) {
	app, s := newTestApp(t)

	assert.Equal(t, "light", app.Theme())
	assert.Error(t, app.SetTheme("sepia"))
	require.NoError(t, app.SetTheme("dark"))

	reloaded := New(s)
	require.NoError(t, reloaded.Hydrate())
	assert.Equal(t, "dark", reloaded.Theme())
}
