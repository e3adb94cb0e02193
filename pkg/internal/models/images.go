package models

const (
	ImageCategoryVoter     = "voter"
	ImageCategoryCandidate = "candidate"
	ImageCategoryGroup     = "group"
)

var ImageCategories = []string{ImageCategoryVoter, ImageCategoryCandidate, ImageCategoryGroup}

type UploadedImage struct {
	Success bool   `json:"success"`
	CID     string `json:"cid"`
	URL     string `json:"url"`
}
