package repo

import (
	"github.com/MUCCHU/imf-gadgets-api/app/models"

	"gorm.io/gorm"
)

type GadgetRepository struct{ db *gorm.DB }

func NewGadgetRepository(db *gorm.DB) *GadgetRepository { return &GadgetRepository{db: db} }

func (r *GadgetRepository) Create(g *models.Gadget) error { return r.db.Create(g).Error }

func (r *GadgetRepository) Save(g *models.Gadget) error { return r.db.Save(g).Error }

func (r *GadgetRepository) FindByID(id string) (*models.Gadget, error) {
	var g models.Gadget
	if err := r.db.Where("id = ?", id).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// List returns all gadgets, or only those with the given status when it is
// non-empty. An unrecognized status simply matches nothing.
func (r *GadgetRepository) List(status models.Status) ([]models.Gadget, error) {
	var gs []models.Gadget
	q := r.db
	if status != "" {
		q = q.Where("status = ?", status)
	}
	return gs, q.Find(&gs).Error
}

// ReservedNames returns the set of codenames currently held by non-destroyed
// gadgets. Destroyed gadgets are excluded on purpose: their names may be
// assigned again.
func (r *GadgetRepository) ReservedNames() (map[string]bool, error) {
	var names []string
	err := r.db.Model(&models.Gadget{}).
		Where("status <> ?", models.StatusDestroyed).
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	reserved := make(map[string]bool, len(names))
	for _, n := range names {
		reserved[n] = true
	}
	return reserved, nil
}
