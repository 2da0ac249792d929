package services

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/MUCCHU/imf-gadgets-api/app/models"
	"github.com/MUCCHU/imf-gadgets-api/app/repo"

	"gorm.io/gorm"
)

// GadgetService is shared across request goroutines; rng is guarded by mu
// because *rand.Rand is not safe for concurrent use.
type GadgetService struct {
	gadgets *repo.GadgetRepository
	mu      sync.Mutex
	rng     *rand.Rand
}

// NewGadgetService builds the lifecycle service. rng may be nil, in which case
// a time-seeded source is used; tests pass a fixed seed.
func NewGadgetService(gadgets *repo.GadgetRepository, rng *rand.Rand) *GadgetService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GadgetService{gadgets: gadgets, rng: rng}
}

// GadgetReport is a gadget as returned by List: the stored record plus an
// ephemeral mission success probability, redrawn on every call.
type GadgetReport struct {
	models.Gadget
	MissionSuccessProbability string `json:"missionSuccessProbability"`
}

// GadgetPatch carries the fields a PATCH may change; nil means leave as is.
type GadgetPatch struct {
	Name   *string
	Status *models.Status
}

func (s *GadgetService) Create() (*models.Gadget, error) {
	reserved, err := s.gadgets.ReservedNames()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	name := pickCodename(reserved, s.rng)
	s.mu.Unlock()
	g := &models.Gadget{Name: name, Status: models.StatusAvailable}
	if err := s.gadgets.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GadgetService) List(status models.Status) ([]GadgetReport, error) {
	gs, err := s.gadgets.List(status)
	if err != nil {
		return nil, err
	}
	reports := make([]GadgetReport, 0, len(gs))
	for _, g := range gs {
		reports = append(reports, GadgetReport{
			Gadget:                    g,
			MissionSuccessProbability: fmt.Sprintf("%d%%", s.intn(100)),
		})
	}
	return reports, nil
}

func (s *GadgetService) Update(id string, patch GadgetPatch) (*models.Gadget, error) {
	g, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !g.Status.Editable() {
		return nil, ErrGadgetDecommissioned
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if patch.Name != nil {
		g.Name = *patch.Name
	}
	if patch.Status != nil {
		g.Status = *patch.Status
	}
	if err := s.gadgets.Save(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Decommission marks the gadget decommissioned and stamps the time. Calling it
// again refreshes the timestamp; the status stays terminal.
func (s *GadgetService) Decommission(id string) (*models.Gadget, error) {
	g, err := s.find(id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	g.Status = models.StatusDecommissioned
	g.DecommissionedAt = &now
	if err := s.gadgets.Save(g); err != nil {
		return nil, err
	}
	return g, nil
}

// SelfDestruct marks the gadget destroyed and returns a one-off confirmation
// code in [1000,9999]. The code is display-only and never stored;
// DecommissionedAt is left untouched.
func (s *GadgetService) SelfDestruct(id string) (*models.Gadget, int, error) {
	g, err := s.find(id)
	if err != nil {
		return nil, 0, err
	}
	code := 1000 + s.intn(9000)
	g.Status = models.StatusDestroyed
	if err := s.gadgets.Save(g); err != nil {
		return nil, 0, err
	}
	return g, code, nil
}

func (s *GadgetService) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *GadgetService) find(id string) (*models.Gadget, error) {
	g, err := s.gadgets.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGadgetNotFound
		}
		return nil, err
	}
	return g, nil
}
