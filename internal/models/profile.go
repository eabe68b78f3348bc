// ABOUTME: Local user profile for the settings flow.
// ABOUTME: Height and weight feed the derived BMI metric; nothing is verified.
package models

// Profile is the local user profile. There is no credential verification;
// this is device-local display data.
type Profile struct {
	Name     string  `json:"name,omitempty"`
	Phone    string  `json:"phone,omitempty"`
	HeightCm float64 `json:"heightCm,omitempty"`
	WeightKg float64 `json:"weightKg,omitempty"`
}
