package dto

type DashboardResponse struct {
	TotalProperties int64 `json:"total_properties"`
	TotalRooms      int64 `json:"total_rooms"`
	OccupiedRooms   int64 `json:"occupied_rooms"`
	VacantRooms     int64 `json:"vacant_rooms"`
	ActiveTenants   int64 `json:"active_tenants"`
	// paise; sum of rent over occupied rooms
	ExpectedMonthlyRent int64 `json:"expected_monthly_rent"`
	// paise; sum of outstanding tenant balances
	TotalOutstanding int64 `json:"total_outstanding"`
	// paise; sum of held advance credit
	TotalAdvanceHeld int64 `json:"total_advance_held"`
	UnpaidCycles     int64 `json:"unpaid_cycles"`
	OverdueCycles    int64 `json:"overdue_cycles"`
}
