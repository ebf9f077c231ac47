package models

// Worker represents a registered service partner. The JSON field names are
// the persisted shape of the `workers` collection and must stay stable.
type Worker struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Profession         string   `json:"profession"`
	Phone              string   `json:"phone"`
	Password           string   `json:"password,omitempty"`
	Photo              string   `json:"photo"` // emoji or inline data-URL
	Experience         string   `json:"experience"`
	Area               string   `json:"area"`
	Rating             float64  `json:"rating"` // running mean, one decimal
	TotalReviews       int      `json:"totalReviews"`
	AdditionalServices []string `json:"additionalServices"`
	Description        string   `json:"description"`
	HourlyRate         float64  `json:"hourlyRate"`
	Verified           bool     `json:"verified"`
	ResponseTime       string   `json:"responseTime"`
	CompletedJobs      int      `json:"completedJobs"`
	Portfolio          []string `json:"portfolio"`
}

// WorkerRegisterRequest represents the request structure for partner registration
type WorkerRegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Profession string `json:"profession" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Photo      string `json:"photo"` // optional, defaults to the emoji placeholder
}

// WorkerUpdateRequest carries a full worker record for a profile save.
// The portal replaces the record wholesale, matching on ID.
type WorkerUpdateRequest struct {
	Worker
}

// Public returns a copy of the worker with the password stripped, for
// responses that leave the owning portal.
func (w Worker) Public() Worker {
	w.Password = ""
	return w
}
