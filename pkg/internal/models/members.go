package models

type Voter struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	VoterAddress string `json:"voter_address"`
	Age          uint64 `json:"age"`
	Image        string `json:"image"`
	Ipfs         string `json:"ipfs"`
	VoteCount    uint64 `json:"vote_count"`
	Exists       bool   `json:"exists"`
}

type Candidate struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	CandidateAddress string `json:"candidate_address"`
	Age              uint64 `json:"age"`
	Image            string `json:"image"`
	Ipfs             string `json:"ipfs"`
	VoteCount        uint64 `json:"vote_count"`
	Exists           bool   `json:"exists"`
}
