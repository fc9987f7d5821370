package specification

import "gorm.io/gorm"

// TitleContains matches notes whose title contains the term, case-insensitively.
type TitleContains struct {
	Term string
}

func (s TitleContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title ILIKE ?", "%"+s.Term+"%")
}
