package label

import "gorm.io/gorm"

type Repository interface {
	Create(label *Label) error
	GetByID(id uint64) (*Label, error)
	GetByCard(cardID uint64) ([]*Label, error)
	Update(label *Label) error
	Delete(id uint64) error
	DeleteByCard(cardID, labelID uint64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(label *Label) error {
	return r.db.Create(label).Error
}

func (r *repository) GetByID(id uint64) (*Label, error) {
	var label Label
	err := r.db.First(&label, id).Error
	if err != nil {
		return nil, err
	}
	return &label, nil
}

func (r *repository) GetByCard(cardID uint64) ([]*Label, error) {
	var labels []*Label
	err := r.db.
		Where("card_id = ?", cardID).
		Order("created_at ASC").
		Find(&labels).Error
	return labels, err
}

func (r *repository) Update(label *Label) error {
	return r.db.Save(label).Error
}

func (r *repository) Delete(id uint64) error {
	return r.db.Delete(&Label{}, id).Error
}

func (r *repository) DeleteByCard(cardID, labelID uint64) (bool, error) {
	res := r.db.
		Where("id = ? AND card_id = ?", labelID, cardID).
		Delete(&Label{})
	return res.RowsAffected > 0, res.Error
}
