package domain

// SafetyEntry is one country's travel advisory as reported by the external
// safety provider. Entries are held only in memory as part of the advisory
// snapshot and are never persisted; the JSON tags follow the provider's own
// field names so the snapshot can be served to clients unchanged.
type SafetyEntry struct {
	CountryName string `json:"country_nm"`
	CountryISO  string `json:"country_iso_alp2"`
	AlarmLevel  int    `json:"alarm_lvl"`
	Remark      string `json:"remark,omitempty"`
	WrittenAt   string `json:"wrt_dt,omitempty"`
}
