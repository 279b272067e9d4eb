package ingestion

import "time"

// Branch is the business unit a document belongs to.
type Branch string

const (
	BranchPatiobella Branch = "patiobella"
	BranchEateroo    Branch = "eateroo"
)

func (b Branch) Valid() bool {
	return b == BranchPatiobella || b == BranchEateroo
}

// FileType is the document category declared by the uploader.
type FileType string

const (
	FileTypeProcurement FileType = "procurement"
	FileTypeInventory   FileType = "inventory"
	FileTypeSales       FileType = "sales"
	FileTypeFinance     FileType = "finance"
	FileTypePettyCash   FileType = "petty_cash"
)

func (f FileType) Valid() bool {
	switch f {
	case FileTypeProcurement, FileTypeInventory, FileTypeSales, FileTypeFinance, FileTypePettyCash:
		return true
	}
	return false
}

// Status is an upload's processing state. StatusPending and StatusFailed are
// part of the client vocabulary but the simulated pipeline never produces
// them: uploads start at processing and end at completed or review_needed.
type Status string

const (
	StatusPending      Status = "pending"
	StatusProcessing   Status = "processing"
	StatusCompleted    Status = "completed"
	StatusFailed       Status = "failed"
	StatusReviewNeeded Status = "review_needed"
)

// Upload is one ingested (or link-imported) document. AuditScore and AuditID
// are set together by the lifecycle transition and are nil until then.
type Upload struct {
	ID               int64     `json:"id"`
	OriginalFilename string    `json:"original_filename"`
	Branch           Branch    `json:"branch"`
	FileType         FileType  `json:"file_type"`
	UploadDate       time.Time `json:"upload_date"`
	FileSize         int64     `json:"file_size"`
	GridFSID         string    `json:"mongo_gridfs_id"`
	ProcessingStatus Status    `json:"processing_status"`
	AuditScore       *float64  `json:"ai_audit_score,omitempty"`
	AuditID          *string   `json:"ai_audit_id,omitempty"`
}

// File holds a stored raw payload, base64 encoded. Link imports store an
// empty payload.
type File struct {
	Name       string
	ContentB64 string
}

// ColumnMapping describes one source column mapped to a canonical field.
// The simulated auditor emits no mappings; the type exists so the wire shape
// matches what a real extractor would return.
type ColumnMapping struct {
	SourceColumn string  `json:"source_column"`
	MappedField  string  `json:"mapped_field"`
	Confidence   float64 `json:"confidence"`
}

// ExtractedData is the placeholder extraction result tagged with the file
// type the client declared.
type ExtractedData struct {
	Records  []map[string]any `json:"records"`
	FileType FileType         `json:"file_type"`
}

// Audit is the synthesized quality report for a processed upload.
type Audit struct {
	ID                string             `json:"_id"`
	ExcelUploadID     int64              `json:"excel_upload_id"`
	GridFSFileID      string             `json:"gridfs_file_id"`
	ExtractedData     ExtractedData      `json:"extracted_data"`
	ColumnMappings    []ColumnMapping    `json:"column_mappings"`
	FieldConfidence   map[string]float64 `json:"field_confidence"`
	Anomalies         []string           `json:"anomalies"`
	Warnings          []string           `json:"warnings"`
	OverallConfidence float64            `json:"overall_confidence"`
}
