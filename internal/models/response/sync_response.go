package response

// SyncResult reports where the current dataset came from after a load
type SyncResult struct {
	Source string     `json:"source" example:"sheet"`
	Notice string     `json:"notice,omitempty" example:"Silakan setup Google Sheets terlebih dahulu!"`
	Counts SyncCounts `json:"counts"`
}

// SyncCounts holds per-collection record counts after a load
type SyncCounts struct {
	Kas   int `json:"kas" example:"5"`
	Iuran int `json:"iuran" example:"8"`
	Ronda int `json:"ronda" example:"3"`
	Info  int `json:"info" example:"4"`
}

// HealthResponse is the health-check payload
type HealthResponse struct {
	Status          string `json:"status" example:"ok"`
	Service         string `json:"service" example:"EMURAI Backend Service"`
	SheetConfigured bool   `json:"sheet_configured" example:"false"`
	GatewayInFlight int64  `json:"gateway_in_flight" example:"0"`
}
