package entities

// Change is a dated operational note shown to the production floor.
type Change struct {
	ID       string `json:"id"`
	DateFrom Day    `json:"dateFrom"`
	DateTo   Day    `json:"dateTo,omitempty"`
	Title    string `json:"title"`
	Text     string `json:"text"`
}

// DocumentFolder groups uploaded files.
type DocumentFolder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DocumentFile is an uploaded file; Path holds the stored data reference and
// FileName the original name for download.
type DocumentFile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	FileName string `json:"fileName"`
	FolderID string `json:"folderId"`
}
