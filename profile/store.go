package profile

import (
	"maps"
	"slices"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"callcenter/catalog"
	"callcenter/storage"
)

// Store is the single source of truth for the client profile. It loads from
// its slot on first access and writes the whole profile back after every
// mutation. A failed write is logged and the in-memory change stands.
type Store struct {
	mu          sync.Mutex
	slot        storage.Slot
	logger      *zap.Logger
	now         func() time.Time
	profile     ClientProfile
	initialized bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and persist failures.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore returns a store holding defaults until its first access loads slot.
func NewStore(slot storage.Slot, opts ...Option) *Store {
	s := &Store{
		slot:   slot,
		logger: zap.NewNop(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.profile = Defaults(s.now())
	return s
}

// Initialize loads persisted state. Calling it more than once is a no-op.
func (s *Store) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()
}

func (s *Store) initLocked() {
	if s.initialized {
		return
	}
	s.initialized = true

	data, err := s.slot.Load()
	if err != nil {
		s.logger.Warn("profile: could not read slot, using defaults", zap.Error(err))
		return
	}
	if len(data) == 0 {
		return
	}
	loaded, err := Decode(data, s.profile)
	if err != nil {
		s.logger.Warn("profile: stored profile unreadable, using defaults", zap.Error(err))
		return
	}
	s.profile = loaded
}

func (s *Store) persistLocked() {
	data, err := Encode(s.profile)
	if err != nil {
		s.logger.Error("profile: serialize failed", zap.Error(err))
		return
	}
	if err := s.slot.Save(data); err != nil {
		s.logger.Warn("profile: persist failed, keeping in-memory state", zap.Error(err))
	}
}

// mutate runs fn on the loaded profile and persists the result.
func (s *Store) mutate(fn func(p *ClientProfile)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()
	fn(&s.profile)
	s.persistLocked()
}

// Snapshot returns a deep copy of the current profile.
func (s *Store) Snapshot() ClientProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()
	return s.profile.Clone()
}

func (s *Store) SetSelectedServices(services []catalog.ServiceKey) {
	services = slices.Clone(services)
	if services == nil {
		services = []catalog.ServiceKey{}
	}
	s.mutate(func(p *ClientProfile) {
		p.SelectedServices = services
	})
}

// SetAssessment replaces answers and result together.
func (s *Store) SetAssessment(answers map[string]string, result AssessmentResult) {
	answers = maps.Clone(answers)
	res := result.clone()
	s.mutate(func(p *ClientProfile) {
		p.AssessmentAnswers = answers
		p.AssessmentResult = res
	})
}

func (s *Store) SetCompanyOverview(overview CompanyOverview) {
	ov := overview.clone()
	s.mutate(func(p *ClientProfile) {
		p.CompanyOverview = ov
	})
}

func (s *Store) UpdateBusinessDetails(details BusinessDetails) {
	d := details.clone()
	if d.PhoneNumbers == nil {
		d.PhoneNumbers = []string{}
	}
	s.mutate(func(p *ClientProfile) {
		p.BusinessDetails = d
	})
}

// AddTicket opens a ticket and places it first in the list. The id is the
// creation time in unix milliseconds, so two tickets opened within the same
// millisecond share an id.
func (s *Store) AddTicket(input TicketInput) Ticket {
	var t Ticket
	s.mutate(func(p *ClientProfile) {
		created := s.now()
		t = Ticket{
			ID:       strconv.FormatInt(created.UnixMilli(), 10),
			ClientID: PlaceholderClientID,
			Subject:  input.Subject,
			Status:   StatusOpen,
			Priority: input.Priority,
			Created:  created,
		}
		p.Tickets = append([]Ticket{t}, p.Tickets...)
	})
	return t
}

func (s *Store) MarkPaid() {
	s.mutate(func(p *ClientProfile) {
		p.Paid = true
	})
}

// ResetProfile discards everything and starts over from defaults.
func (s *Store) ResetProfile() {
	s.mutate(func(p *ClientProfile) {
		*p = Defaults(s.now())
	})
}

// IsModuleEnabled reports whether service is currently selected.
func (s *Store) IsModuleEnabled(service catalog.ServiceKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()
	return s.profile.HasService(service)
}
