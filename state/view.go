package state

import (
	"fmt"

	"thekedaar-server/models"
)

// View is the top-level screen selected from session state.
type View string

const (
	ViewWelcome       View = "welcome"
	ViewAdminPortal   View = "admin_portal"
	ViewWorkerPortal  View = "worker_portal"
	ViewWorkerError   View = "worker_error"
	ViewConsumerShell View = "consumer_shell"
)

// SubView is the consumer shell's internal screen, driven by explicit
// navigation actions rather than session state.
type SubView string

const (
	SubHome     SubView = "home"
	SubCategory SubView = "category"
	SubProfile  SubView = "profile"
	SubBookings SubView = "bookings"
	SubChats    SubView = "chats"
)

// ResolveView maps session state to the active screen. A WORKER role
// without a resolved identity is the broken-session dead end: the screen
// offers only logout, and the resolver never hands the portal a nil
// partner.
func (a *App) ResolveView() View {
	a.mu.RLock()
	defer a.mu.RUnlock()

	switch a.role {
	case models.RoleAdmin:
		return ViewAdminPortal
	case models.RoleWorker:
		if a.currentWorker != nil {
			return ViewWorkerPortal
		}
		return ViewWorkerError
	default:
		if a.showWelcome {
			return ViewWelcome
		}
		return ViewConsumerShell
	}
}

// SubViewState returns the consumer shell's sub-view and current selection.
func (a *App) SubViewState() (SubView, string, *models.Worker) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var selected *models.Worker
	if a.selectedWorker != nil {
		w := *a.selectedWorker
		selected = &w
	}
	return a.subView, a.selectedCategory, selected
}

// SelectCategory switches the shell to the category sub-view and returns
// the matching workers. An unknown id still switches views and yields an
// empty list.
func (a *App) SelectCategory(categoryID string) []models.Worker {
	a.mu.Lock()
	a.selectedCategory = categoryID
	a.subView = SubCategory
	a.mu.Unlock()
	return a.CategoryWorkers(categoryID)
}

// SelectWorker switches the shell to the profile sub-view for the given
// worker.
func (a *App) SelectWorker(workerID int) (models.Worker, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	worker, ok := findWorker(a.workers, workerID)
	if !ok {
		return models.Worker{}, fmt.Errorf("worker %d not found", workerID)
	}
	w := worker
	a.selectedWorker = &w
	a.subView = SubProfile
	return worker, nil
}

// NavigateHome returns the shell to the home sub-view, clearing selections.
func (a *App) NavigateHome() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.subView = SubHome
	a.selectedCategory = ""
	a.selectedWorker = nil
}
