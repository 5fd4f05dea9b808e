package ordering

import "gorm.io/gorm"

// Scope identifies the set of sibling rows whose relative order is
// jointly maintained. Lists are ordered per owning user, cards per list,
// checklist items per checklist; the constructors below are the only
// scope kinds.
type Scope struct {
	table string
	query string
	arg   uint64
}

func UserLists(userID uint64) Scope {
	return Scope{table: "lists", query: "user_id = ?", arg: userID}
}

func ListCards(listID uint64) Scope {
	return Scope{table: "cards", query: "list_id = ?", arg: listID}
}

func ChecklistItems(checklistID uint64) Scope {
	return Scope{table: "checklist_items", query: "checklist_id = ?", arg: checklistID}
}

func (s Scope) apply(tx *gorm.DB) *gorm.DB {
	return tx.Table(s.table).Where(s.query, s.arg)
}
