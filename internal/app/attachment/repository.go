package attachment

import "gorm.io/gorm"

type Repository interface {
	Create(attachment *Attachment) error
	GetByID(id uint64) (*Attachment, error)
	GetByCard(cardID uint64) ([]*Attachment, error)
	Delete(id uint64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(attachment *Attachment) error {
	return r.db.Create(attachment).Error
}

func (r *repository) GetByID(id uint64) (*Attachment, error) {
	var attachment Attachment
	err := r.db.First(&attachment, id).Error
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

func (r *repository) GetByCard(cardID uint64) ([]*Attachment, error) {
	var attachments []*Attachment
	err := r.db.
		Where("card_id = ?", cardID).
		Order("created_at ASC").
		Find(&attachments).Error
	return attachments, err
}

func (r *repository) Delete(id uint64) error {
	return r.db.Delete(&Attachment{}, id).Error
}
