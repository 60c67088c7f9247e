package response

type BoardResponse struct {
	Cells     []int `json:"cells"`
	Current   int   `json:"current"`
	Validated []int `json:"validated"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
