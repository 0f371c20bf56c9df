package domain

import "time"

// AssetStatus represents the lifecycle state of a physical asset.
type AssetStatus string

const (
	AssetAvailable  AssetStatus = "AVAILABLE"
	AssetCheckedOut AssetStatus = "CHECKED_OUT"
)

// IsValid reports whether s is a known asset status.
func (s AssetStatus) IsValid() bool {
	return s == AssetAvailable || s == AssetCheckedOut
}

// Asset is a piece of company equipment, optionally assigned to a user.
type Asset struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	Type           string      `json:"type"`
	SerialNumber   string      `json:"serialNumber"`
	Status         AssetStatus `json:"status"`
	AssignedUserID *int64      `json:"assignedUserId"`
	AssignedUser   *User       `json:"assignedUser,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// Department groups employees. The "none" department is seeded and acts as
// the default for fresh signups.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DashboardSummary aggregates the counters shown on the dashboard.
type DashboardSummary struct {
	TotalAssets     int64 `json:"totalAssets"`
	TotalEmployees  int64 `json:"totalEmployees"`
	AvailableAssets int64 `json:"availableAssets"`
	TotalAdmins     int64 `json:"totalAdmins"`
}
