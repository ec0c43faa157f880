package dto

type StatusCounts struct {
	Pending  int64 `json:"pending"`
	Verified int64 `json:"verified"`
	Rejected int64 `json:"rejected"`
}

type DashboardResponse struct {
	Qualifications       StatusCounts `json:"qualifications"`
	Sessions             StatusCounts `json:"sessions"`
	Activities           StatusCounts `json:"activities"`
	Applications         StatusCounts `json:"applications"`
	ProfileVerifications StatusCounts `json:"profile_verifications"`
}
