package model

import "time"

// Driver document types.
const (
	DocLicense         = "license"
	DocInsurance       = "insurance"
	DocMedicalCert     = "medical_cert"
	DocBackgroundCheck = "background_check"
)

// DriverDocument is a file attached to a driver and kept in object storage.
// DownloadURL is filled per response and never stored.
type DriverDocument struct {
	ID          string     `json:"id"`
	DriverID    string     `json:"driver_id"`
	Type        string     `json:"type"`
	Filename    string     `json:"filename"`
	StoragePath string     `json:"storage_path"`
	ContentType string     `json:"content_type"`
	Size        int64      `json:"size"`
	ExpiryDate  *time.Time `json:"expiry_date"`
	UploadedAt  time.Time  `json:"uploaded_at"`
	DownloadURL string     `json:"download_url,omitempty"`
}
