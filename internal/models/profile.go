package models

// Profile is the stored "profile" document.
type Profile struct {
	Name       string `json:"name"`
	Language   string `json:"language"`
	NgiritMode bool   `json:"ngiritMode"`
}
