package specification

import "gorm.io/gorm"

// NameOrEmailContains matches users whose first name, last name or email
// contains the term, case-insensitively.
type NameOrEmailContains struct {
	Term string
}

func (s NameOrEmailContains) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Term + "%"
	return db.Where(
		"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?",
		pattern, pattern, pattern,
	)
}
