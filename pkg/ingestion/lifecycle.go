package ingestion

// finishProcessing is the one-shot simulated background job scheduled by
// CreateUpload. It moves the upload to its terminal status and synthesizes
// the paired audit. Status, score and audit reference are written under the
// registry lock together with the audit insert, so no reader ever observes
// a terminal upload without its audit or the reverse.
func (s *Store) finishProcessing(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findLocked(id)
	if u == nil {
		// Upload vanished (store was swapped out underneath the timer).
		s.log.Warn("upload gone before processing finished", "upload_id", id)
		return
	}
	if u.ProcessingStatus != StatusProcessing {
		return
	}

	score := s.score()
	status := StatusReviewNeeded
	if score >= AuditScoreThreshold {
		status = StatusCompleted
	}

	auditRef := NewAuditReference()
	u.ProcessingStatus = status
	u.AuditScore = &score
	u.AuditID = &auditRef
	s.audits[auditRef] = &Audit{
		ID:            auditRef,
		ExcelUploadID: id,
		GridFSFileID:  u.GridFSID,
		ExtractedData: ExtractedData{
			Records:  []map[string]any{},
			FileType: u.FileType,
		},
		ColumnMappings:    []ColumnMapping{},
		FieldConfidence:   map[string]float64{},
		Anomalies:         []string{},
		Warnings:          []string{},
		OverallConfidence: score,
	}

	s.log.Info("upload processed",
		"upload_id", id,
		"audit_id", auditRef,
		"status", status,
		"score", score,
	)
}
