package models

type DashboardStats struct {
	Owner                  string `json:"owner"`
	TotalPolls             uint64 `json:"total_polls"`
	CompletedPolls         uint64 `json:"completed_polls"`
	ExistingPolls          uint64 `json:"existing_polls"`
	TotalVoters            uint64 `json:"total_voters"`
	TotalCandidates        uint64 `json:"total_candidates"`
	VotersToBeApproved     uint64 `json:"voters_to_be_approved"`
	CandidatesToBeApproved uint64 `json:"candidates_to_be_approved"`
}
