package dto

// ImportFile is one uploaded CSV file queued for import.
type ImportFile struct {
	Name string
	Data []byte
}

// FileImportResult tags the outcome of importing one file. One bad file never
// aborts the rest of the batch.
type FileImportResult struct {
	FileName string `json:"fileName"`
	Type     string `json:"type"`
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Count    int    `json:"count,omitempty"`
}

// ImportSummary aggregates the per-file results for the response toast.
type ImportSummary struct {
	Results   []FileImportResult `json:"results"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
}
