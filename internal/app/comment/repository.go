package comment

import "gorm.io/gorm"

type Repository interface {
	Create(comment *Comment) error
	GetByID(id uint64) (*Comment, error)
	GetByCard(cardID uint64) ([]*Comment, error)
	Update(comment *Comment) error
	Delete(id uint64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(comment *Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return err
	}
	return r.db.Preload("User").First(comment, comment.ID).Error
}

func (r *repository) GetByID(id uint64) (*Comment, error) {
	var comment Comment
	err := r.db.Preload("User").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *repository) GetByCard(cardID uint64) ([]*Comment, error) {
	var comments []*Comment
	err := r.db.
		Preload("User").
		Where("card_id = ?", cardID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *repository) Update(comment *Comment) error {
	return r.db.Save(comment).Error
}

func (r *repository) Delete(id uint64) error {
	return r.db.Delete(&Comment{}, id).Error
}
