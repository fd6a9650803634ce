// Package repo is the typed accessor over the document store: branch
// config, service catalog, staff roster, and the per-day queue
// documents. Every call opens, fully reads or writes, and closes; there
// is no cached state between calls.
package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rpt-gingoog/mabilisss/pkg/queue"
	"github.com/rpt-gingoog/mabilisss/pkg/store"
)

const (
	branchKey     = "branch"
	categoriesKey = "categories"
	usersKey      = "users"
	queueKeyPfx   = "queue_"

	dateLayout = "2006-01-02"
)

// QueueStore is the repository contract the service layer depends on.
type QueueStore interface {
	Branch() (*queue.Branch, error)
	SaveBranch(b *queue.Branch) error
	Categories() ([]queue.Category, error)
	SaveCategories(cats []queue.Category) error
	Users() ([]queue.User, error)
	SaveUsers(users []queue.User) error
	QueueFor(date string) (*queue.Document, error)
	SaveQueue(doc *queue.Document, date string) error
	UpdateQueue(date string, fn func(*queue.Document) error) error
	ListQueueDays() ([]string, error)
}

// Repository implements QueueStore over any store.DocumentStore.
type Repository struct {
	store  store.DocumentStore
	logger *zap.Logger

	mu   sync.Mutex
	days map[string]*sync.Mutex
}

// New returns a repository over the given document store.
func New(s store.DocumentStore, logger *zap.Logger) *Repository {
	return &Repository{
		store:  s,
		logger: logger,
		days:   make(map[string]*sync.Mutex),
	}
}

// Today returns the current date in the repository's date format.
func Today() string {
	return time.Now().Format(dateLayout)
}

// ValidDate reports whether s is a well-formed calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func queueKey(date string) string {
	return queueKeyPfx + date
}

func (r *Repository) load(key string, def, out any) error {
	defBytes, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal default for %s: %w", key, err)
	}
	doc, err := r.store.Load(key, defBytes)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := json.Unmarshal(doc, out); err != nil {
		// Unparseable despite being valid JSON: same availability-first
		// fallback as a corrupt file.
		r.logger.Warn("document does not match expected shape, using default",
			zap.String("key", key), zap.Error(err))
		return json.Unmarshal(defBytes, out)
	}
	return nil
}

func (r *Repository) save(key string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	// One bounded retry: a lost reservation is a high-consequence
	// failure and transient filesystem errors are common on shared
	// mounts.
	if err := r.store.Save(key, data); err != nil {
		r.logger.Warn("document save failed, retrying once",
			zap.String("key", key), zap.Error(err))
		if err := r.store.Save(key, data); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
	}
	return nil
}

// Branch loads the branch configuration, seeding defaults when absent.
func (r *Repository) Branch() (*queue.Branch, error) {
	var b queue.Branch
	if err := r.load(branchKey, queue.DefaultBranch(), &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// SaveBranch replaces the branch configuration.
func (r *Repository) SaveBranch(b *queue.Branch) error {
	return r.save(branchKey, b)
}

// Categories loads the service catalog, seeding defaults when absent.
func (r *Repository) Categories() ([]queue.Category, error) {
	var cats []queue.Category
	if err := r.load(categoriesKey, queue.DefaultCategories(), &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// SaveCategories replaces the service catalog.
func (r *Repository) SaveCategories(cats []queue.Category) error {
	return r.save(categoriesKey, cats)
}

// Users loads the staff roster. There is no seed here: roster defaults
// carry credentials and are owned by pkg/auth.
func (r *Repository) Users() ([]queue.User, error) {
	var users []queue.User
	if err := r.load(usersKey, []queue.User{}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveUsers replaces the staff roster.
func (r *Repository) SaveUsers(users []queue.User) error {
	return r.save(usersKey, users)
}

// QueueFor loads the queue document for the given date, seeding an
// empty document on first read of a new day.
func (r *Repository) QueueFor(date string) (*queue.Document, error) {
	if !ValidDate(date) {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}
	var doc queue.Document
	if err := r.load(queueKey(date), queue.NewDocument(date), &doc); err != nil {
		return nil, err
	}
	if doc.Board == nil {
		doc.Board = map[string]queue.BoardEntry{}
	}
	return &doc, nil
}

// SaveQueue replaces the day's queue document in full, always stamping
// the document's date to the target day.
func (r *Repository) SaveQueue(doc *queue.Document, date string) error {
	if !ValidDate(date) {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}
	doc.Date = date
	return r.save(queueKey(date), doc)
}

// dayMutex returns the mutex serializing writers of one day's document.
func (r *Repository) dayMutex(date string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.days[date]
	if !ok {
		m = &sync.Mutex{}
		r.days[date] = m
	}
	return m
}

// UpdateQueue runs one full read-mutate-write cycle against the day's
// document. In-process actors are serialized per day, so validation is
// never computed against a snapshot another local writer is replacing.
// When the backing store supports atomic updates (the postgres backend),
// the cycle is additionally compare-and-swapped cross-process.
func (r *Repository) UpdateQueue(date string, fn func(doc *queue.Document) error) error {
	if !ValidDate(date) {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}
	m := r.dayMutex(date)
	m.Lock()
	defer m.Unlock()

	if updater, ok := r.store.(store.Updater); ok {
		defBytes, err := json.MarshalIndent(queue.NewDocument(date), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal default queue document: %w", err)
		}
		return updater.Update(queueKey(date), defBytes, func(raw []byte) ([]byte, error) {
			var doc queue.Document
			if err := json.Unmarshal(raw, &doc); err != nil {
				return nil, fmt.Errorf("failed to parse queue document: %w", err)
			}
			if doc.Board == nil {
				doc.Board = map[string]queue.BoardEntry{}
			}
			if err := fn(&doc); err != nil {
				return nil, err
			}
			doc.Date = date
			return json.MarshalIndent(&doc, "", "  ")
		})
	}

	doc, err := r.QueueFor(date)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return r.SaveQueue(doc, date)
}

// ListQueueDays returns the dates with stored queue documents, most
// recent first.
func (r *Repository) ListQueueDays() ([]string, error) {
	keys, err := r.store.Keys(queueKeyPfx)
	if err != nil {
		return nil, err
	}
	days := make([]string, 0, len(keys))
	for _, k := range keys {
		days = append(days, strings.TrimPrefix(k, queueKeyPfx))
	}
	return days, nil
}
