package dto

// SummaryResponse is the dashboard payload: the hand-maintained indicator
// cards plus aggregates computed from the live booking data.
type SummaryResponse struct {
	TotalMeetings    string              `json:"total_meetings"`
	InternalMeetings string              `json:"internal_meetings"`
	ExternalMeetings string              `json:"external_meetings"`
	BusiestDay       string              `json:"busiest_day"`
	TopDepartments   []DepartmentCount   `json:"top_departments"`
	MeetingTypes     []MeetingTypeCount  `json:"meeting_types"`
	Indicators       []IndicatorResponse `json:"indicators"`
}

type IndicatorResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Notes string `json:"notes"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

type MeetingTypeCount struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}
