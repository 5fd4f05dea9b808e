package user

import "gorm.io/gorm"

type Repository interface {
	Create(user *User) error
	GetByID(id uint64) (*User, error)
	GetByEmail(email string) (*User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	GetAll() ([]*User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(user *User) error {
	return r.db.Create(user).Error
}

func (r *repository) GetByID(id uint64) (*User, error) {
	var user User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetByEmail(email string) (*User, error) {
	var user User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) GetAll() ([]*User, error) {
	var users []*User
	err := r.db.Order("username ASC").Find(&users).Error
	return users, err
}
