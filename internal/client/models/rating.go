package models

// Rating is a single user's rating of a store, as returned by the owner
// dashboard. The service owns the one-rating-per-(user,store) invariant;
// resubmission updates the existing rating in place.
type Rating struct {
	ID    int64    `json:"id"`
	Value int      `json:"rating"`
	Rater *UserRef `json:"User,omitempty"`
}

// OwnerDashboard is the aggregate feedback view for a single store.
type OwnerDashboard struct {
	Average float64  `json:"average"`
	Ratings []Rating `json:"ratings"`
}

// DashboardStats are the admin landing counters.
type DashboardStats struct {
	UsersCount   int `json:"usersCount"`
	StoresCount  int `json:"storesCount"`
	RatingsCount int `json:"ratingsCount"`
}
