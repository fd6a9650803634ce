package queue

import "time"

// Reservation statuses. A reservation is "active" while its status is
// neither COMPLETED nor NO_SHOW.
const (
	StatusReserved  = "RESERVED"
	StatusArrived   = "ARRIVED"
	StatusServing   = "SERVING"
	StatusCompleted = "COMPLETED"
	StatusNoShow    = "NO_SHOW"
)

// Reservation sources.
const (
	SourceOnline = "ONLINE"
	SourceKiosk  = "KIOSK"
)

// Queue lanes.
const (
	LaneRegular  = "regular"
	LanePriority = "priority"
)

// Queue status broadcast values (oStat).
const (
	QueueOnline       = "online"
	QueueIntermittent = "intermittent"
	QueueOffline      = "offline"
)

// Reservation is one person's service request for one day.
// Field names and JSON tags match the persisted document layout.
type Reservation struct {
	ID          string     `json:"id"`
	Slot        int        `json:"slot"`
	ResNum      string     `json:"resNum"`
	LastName    string     `json:"lastName"`
	FirstName   string     `json:"firstName"`
	MI          string     `json:"mi"`
	Mobile      string     `json:"mobile"`
	Service     string     `json:"service"`
	ServiceID   string     `json:"serviceId"`
	Category    string     `json:"category"`
	CategoryID  string     `json:"categoryId"`
	CatIcon     string     `json:"catIcon"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	BQMSNumber  string     `json:"bqmsNumber"`
	Source      string     `json:"source"`
	IssuedAt    time.Time  `json:"issuedAt"`
	ArrivedAt   *time.Time `json:"arrivedAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// Active reports whether the reservation still occupies a place in the
// day's queue (not yet completed or marked a no-show).
func (r *Reservation) Active() bool {
	return r.Status != StatusCompleted && r.Status != StatusNoShow
}

// HasNumber reports whether a physical BQMS number has been assigned.
func (r *Reservation) HasNumber() bool {
	return r.BQMSNumber != ""
}

// BoardEntry is the per-category now-serving announcement.
type BoardEntry struct {
	NowServing string `json:"nowServing"`
}

// Document is one calendar day's queue state: the reservation list in
// creation order, the now-serving board, and the broadcast flag.
type Document struct {
	Reservations []Reservation         `json:"res"`
	Board        map[string]BoardEntry `json:"bqmsState"`
	Status       string                `json:"oStat"`
	Date         string                `json:"date"`
}

// NewDocument returns an empty queue document for the given date,
// with the reservation window open.
func NewDocument(date string) *Document {
	return &Document{
		Reservations: []Reservation{},
		Board:        map[string]BoardEntry{},
		Status:       QueueOnline,
		Date:         date,
	}
}

// Find returns the reservation with the given id, or nil.
func (d *Document) Find(id string) *Reservation {
	for i := range d.Reservations {
		if d.Reservations[i].ID == id {
			return &d.Reservations[i]
		}
	}
	return nil
}

// Service is a sub-service offered under a category.
type Service struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Category is an entry in the externally-owned service catalog.
type Category struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Icon     string    `json:"icon"`
	Short    string    `json:"short"`
	AvgTime  int       `json:"avgTime"`
	Cap      int       `json:"cap"`
	Services []Service `json:"services"`
}

// FindService returns the sub-service with the given id, or nil.
func (c *Category) FindService(id string) *Service {
	for i := range c.Services {
		if c.Services[i].ID == id {
			return &c.Services[i]
		}
	}
	return nil
}

// Branch is the branch configuration document.
type Branch struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Hours         string `json:"hours"`
	Phone         string `json:"phone"`
	OpenTime      string `json:"openTime"`
	CloseTime     string `json:"closeTime"`
	BQMSStartTime string `json:"bqmsStartTime"`
	Announcement  string `json:"announcement"`
}

// Staff roles, lowest to highest privilege.
const (
	RoleKiosk        = "kiosk"
	RoleStaff        = "staff"
	RoleTeamHead     = "th"
	RoleBranchHead   = "bh"
	RoleDivisionHead = "dh"
)

// User is an entry in the externally-owned staff roster. PasswordHash is
// a bcrypt hash; legacy rosters carried plaintext in the same field and
// are upgraded on first successful login.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	DisplayName  string `json:"displayName"`
	Role         string `json:"role"`
	PasswordHash string `json:"password"`
	Active       bool   `json:"active"`
}
