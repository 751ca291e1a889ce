package repositories

import "gorm.io/gorm"

// repository is the generic CRUD base every entity repository embeds. The
// plain verbs live here once; entity-specific queries and error mapping live
// on the concrete repositories.
type repository[T any] struct {
	db *gorm.DB
}

func (r *repository[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

func (r *repository[T]) getByID(id uint) (*T, error) {
	var entity T
	if err := r.db.First(&entity, id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *repository[T]) GetAll() ([]T, error) {
	var entities []T
	err := r.db.Find(&entities).Error
	return entities, err
}

func (r *repository[T]) Update(entity *T) error {
	return r.db.Save(entity).Error
}

func (r *repository[T]) delete(id uint) error {
	var entity T
	return r.db.Delete(&entity, id).Error
}
