package model

import "time"

// Driver statuses.
const (
	DriverActive    = "active"
	DriverInactive  = "inactive"
	DriverOnLeave   = "on_leave"
	DriverSuspended = "suspended"
)

// Driver is a carrier employee registered to one company.
// Optional columns are pointers so NULL round-trips as JSON null.
type Driver struct {
	ID            string     `json:"id"`
	CompanyID     string     `json:"company_id"`
	UserID        string     `json:"user_id"`
	LicenseNumber string     `json:"license_number"`
	LicenseClass  *string    `json:"license_class"`
	LicenseExpiry *time.Time `json:"license_expiry"`
	VehicleType   *string    `json:"vehicle_type"`
	VehicleVIN    *string    `json:"vehicle_vin"`
	VehiclePlate  *string    `json:"vehicle_plate"`
	Status        string     `json:"status"`
	Rating        float64    `json:"rating"`
	TotalLoads    int        `json:"total_loads"`
	TotalMiles    float64    `json:"total_miles"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// DriverUpdate carries the fields of a partial update. Nil means unchanged.
type DriverUpdate struct {
	LicenseNumber *string
	LicenseClass  *string
	LicenseExpiry *time.Time
	VehicleType   *string
	VehicleVIN    *string
	VehiclePlate  *string
	Status        *string
}

// Empty reports whether the update changes nothing.
func (u DriverUpdate) Empty() bool {
	return u.LicenseNumber == nil && u.LicenseClass == nil && u.LicenseExpiry == nil &&
		u.VehicleType == nil && u.VehicleVIN == nil && u.VehiclePlate == nil && u.Status == nil
}
