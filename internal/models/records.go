package models

// Activity intensity labels. The field is a free string on the wire; these
// are the values the UI offers.
const (
	IntensityLow      = "low"
	IntensityModerate = "moderate"
	IntensityHigh     = "high"
)

// WaterRecord is a single logged water intake.
// Datetime is an ISO-like local string such as "2026-08-28T09:30".
type WaterRecord struct {
	ID       string  `json:"id"`
	Datetime string  `json:"datetime"`
	AmountMl float64 `json:"amountMl"`
}

// SleepRecord is a single logged sleep session.
type SleepRecord struct {
	ID       string  `json:"id"`
	Datetime string  `json:"datetime"`
	Hours    float64 `json:"hours"`
}

// ActivityRecord is a single logged activity session.
type ActivityRecord struct {
	ID        string  `json:"id"`
	Datetime  string  `json:"datetime"`
	Minutes   float64 `json:"minutes"`
	Intensity string  `json:"intensity"`
}

// Category is a user-defined tracked metric, unique by name within an
// account.
type Category struct {
	ID           string `json:"id"`
	CategoryName string `json:"categoryName"`
}

// CustomItem is a logged entry under a custom category.
type CustomItem struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId,omitempty"`
	Datetime   string `json:"datetime"`
	Note       string `json:"note"`
}

// WaterUpdate describes a partial update to a water record. Nil fields
// retain their prior value.
type WaterUpdate struct {
	Datetime *string  `json:"datetime,omitempty"`
	AmountMl *float64 `json:"amountMl,omitempty"`
}

// SleepUpdate describes a partial update to a sleep record.
type SleepUpdate struct {
	Datetime *string  `json:"datetime,omitempty"`
	Hours    *float64 `json:"hours,omitempty"`
}

// ActivityUpdate describes a partial update to an activity record.
type ActivityUpdate struct {
	Datetime  *string  `json:"datetime,omitempty"`
	Minutes   *float64 `json:"minutes,omitempty"`
	Intensity *string  `json:"intensity,omitempty"`
}

// CustomItemUpdate describes a partial update to a custom item.
type CustomItemUpdate struct {
	Datetime *string `json:"datetime,omitempty"`
	Note     *string `json:"note,omitempty"`
}

// Ptr returns a pointer to v. It keeps partial-update literals short.
func Ptr[T any](v T) *T { return &v }
