package repository

// ListOptions common pagination input. Zero values mean "no limit".
type ListOptions struct {
	Page     int
	PageSize int
}

// ProductListFilter narrows product listings.
type ProductListFilter struct {
	CategoryIDs []uint
	ActiveOnly  bool
	Keyword     string
	Limit       int
}

// OrderListFilter narrows order listings.
type OrderListFilter struct {
	UserID       uint
	Status       string
	RootOnly     bool // exclude generated delivery occurrences
	IsRecurring  *bool
	WithItems    bool
	WithChildren bool
}

// SliderListFilter narrows slider listings.
type SliderListFilter struct {
	ActiveOnly bool
	Limit      int
}
