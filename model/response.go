package model

// UploadResponse is returned on a successful album upload.
type UploadResponse struct {
	Message string `json:"message"`
	Album   *Album `json:"album"`
}

// DeleteResponse is returned on a successful album deletion.
type DeleteResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a user-facing error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
