package comment

import "gorm.io/gorm"

type Repository interface {
	Create(c *Comment) error
	Delete(id uint64) error
	ListByParent(kind string, parentID uint64) ([]*Comment, error)
	ListByKind(kind string) ([]*Comment, error)
	ParentExists(kind string, parentID uint64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(c *Comment) error {
	return r.db.Create(c).Error
}

func (r *repository) Delete(id uint64) error {
	return r.db.Delete(&Comment{}, id).Error
}

func (r *repository) ListByParent(kind string, parentID uint64) ([]*Comment, error) {
	var comments []*Comment
	err := r.db.
		Where("parent_kind = ? AND parent_id = ?", kind, parentID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *repository) ListByKind(kind string) ([]*Comment, error) {
	var comments []*Comment
	err := r.db.
		Where("parent_kind = ?", kind).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *repository) ParentExists(kind string, parentID uint64) (bool, error) {
	table := ""
	switch kind {
	case ParentTask:
		table = "tasks"
	case ParentPost:
		table = "posts"
	case ParentArchive:
		table = "archives"
	default:
		return false, nil
	}
	var count int64
	err := r.db.Table(table).Where("id = ?", parentID).Count(&count).Error
	return count > 0, err
}

// DeleteByParentTx removes every comment under the given parents inside an
// already-open transaction. Cascading deletes go through here so the parent
// row and its comments disappear atomically.
func DeleteByParentTx(tx *gorm.DB, kind string, parentIDs ...uint64) error {
	if len(parentIDs) == 0 {
		return nil
	}
	return tx.
		Where("parent_kind = ? AND parent_id IN ?", kind, parentIDs).
		Delete(&Comment{}).Error
}
