package state

import (
	"log"

	"thekedaar-server/models"
	"thekedaar-server/store"
)

// RestoreSession reads the persisted session record at startup. A WORKER
// session whose id no longer resolves is left broken on purpose: the role
// is restored but no identity, so the view resolver surfaces the dead-end
// screen instead of a portal with a nil partner. Only an explicit logout
// clears the record.
func (a *App) RestoreSession() {
	var session models.Session
	if !a.store.LoadJSON(store.KeySession, &session) {
		return
	}
	if !session.Role.IsValidRole() {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.role = session.Role
	a.showWelcome = false

	if session.Role == models.RoleWorker && session.WorkerID != 0 {
		if worker, ok := findWorker(a.workers, session.WorkerID); ok {
			w := worker
			a.currentWorker = &w
		} else {
			log.Printf("⚠️ Persisted worker session references unknown worker %d", session.WorkerID)
		}
	}
}

// BeginSession records a successful login: in-memory role (plus resolved
// partner identity for WORKER), persisted session record, welcome screen
// dismissed.
func (a *App) BeginSession(role models.UserRole, worker *models.Worker) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.role = role
	a.showWelcome = false
	a.currentWorker = nil

	session := models.Session{Role: role}
	if role == models.RoleWorker && worker != nil {
		w := *worker
		a.currentWorker = &w
		session.WorkerID = w.ID
	}
	return a.store.SaveJSON(store.KeySession, session)
}

// EnterAsGuest dismisses the welcome screen without creating a session
// record; the default guest CONSUMER role stays active.
func (a *App) EnterAsGuest() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.role = models.RoleConsumer
	a.showWelcome = false
}

// Logout resets to the guest CONSUMER default, removes the persisted
// session record and brings the welcome screen back. Safe to call when no
// session exists.
func (a *App) Logout() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.role = models.RoleConsumer
	a.currentWorker = nil
	a.showWelcome = true
	a.subView = SubHome
	a.selectedCategory = ""
	a.selectedWorker = nil

	return a.store.Remove(store.KeySession)
}

// Role returns the current actor role.
func (a *App) Role() models.UserRole {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.role
}

// CurrentWorker returns the authenticated partner, if any.
func (a *App) CurrentWorker() (models.Worker, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.currentWorker == nil {
		return models.Worker{}, false
	}
	return *a.currentWorker, true
}

// ShowWelcome reports whether the welcome screen flag is set.
func (a *App) ShowWelcome() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.showWelcome
}
