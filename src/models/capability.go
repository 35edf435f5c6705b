package models

// MCapabilityResult holds process capability against caller-supplied limits.
// Cp, Cpk, Cpu and Cpl are rounded to two decimals; Mean and Sigma are not.
type MCapabilityResult struct {
	Cp     float64 `json:"cp"`
	Cpk    float64 `json:"cpk"`
	Cpu    float64 `json:"cpu"`
	Cpl    float64 `json:"cpl"`
	Mean   float64 `json:"mean"`
	Sigma  float64 `json:"sigma"`
	LSL    float64 `json:"lsl"`
	USL    float64 `json:"usl"`
	Points int     `json:"points"`
}
