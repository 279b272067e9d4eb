package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hugamara-ceo-portal/pkg/ingestion"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func setupRoutes(r *gin.Engine, s *server) {
	r.GET("/", s.rootHandler)

	api := r.Group("/api")
	api.GET("/health", s.healthHandler)

	auth := api.Group("/auth")
	auth.POST("/login", s.loginHandler)
	auth.GET("/me", s.authRequired(), s.meHandler)

	// The ingestion endpoints intentionally do not verify the bearer token
	// the front-end attaches; a real backend would.
	ing := api.Group("/ingestion")
	ing.POST("/upload", s.uploadHandler)
	ing.POST("/import-link", s.importLinkHandler)
	ing.GET("/uploads", s.listUploadsHandler)
	ing.GET("/upload/:id", s.getUploadHandler)
	ing.GET("/file/:fileId", s.downloadFileHandler)
	ing.GET("/file/:fileId/preview", s.previewFileHandler)
	ing.GET("/audit/:excelUploadId", s.getAuditHandler)

	ai := api.Group("/ai")
	ai.GET("/alerts", s.alertsHandler)
	ai.POST("/query", s.aiQueryHandler)
	ai.GET("/summary", s.aiSummaryHandler)
}

func (s *server) rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to Hugamara CEO Portal API"})
}

func (s *server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// uploadHandler accepts a multipart spreadsheet and registers it for
// simulated processing.
func (s *server) uploadHandler(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "file is required"})
		return
	}
	branch := ingestion.Branch(c.PostForm("branch"))
	if !branch.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "branch is required"})
		return
	}
	fileType := ingestion.FileType(c.PostForm("file_type"))
	if !fileType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "file_type is required"})
		return
	}
	lower := strings.ToLower(fh.Filename)
	if !strings.HasSuffix(lower, ".xlsx") && !strings.HasSuffix(lower, ".xls") {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid file format. Please upload .xlsx or .xls"})
		return
	}
	if fh.Size > s.cfg.MaxFileSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"detail": fmt.Sprintf("File too large (max %dMB)", s.cfg.MaxFileSize/(1024*1024)),
		})
		return
	}

	src, err := fh.Open()
	if err != nil {
		slog.Error("failed to open uploaded file", "filename", fh.Filename, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to read file"})
		return
	}
	defer src.Close()
	content, err := io.ReadAll(src)
	if err != nil {
		slog.Error("failed to read uploaded file", "filename", fh.Filename, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to read file"})
		return
	}

	upload, fileRef := s.store.CreateUpload(fh.Filename, branch, fileType, int64(len(content)), ingestion.EncodeBytes(content))
	c.JSON(http.StatusOK, gin.H{
		"file_id":         fileRef,
		"excel_upload_id": upload.ID,
		"status":          "queued",
		"sha256":          "mock",
	})
}

// importLinkHandler registers an upload for a remote document. The content
// is not fetched in demo mode; the record carries an empty payload.
func (s *server) importLinkHandler(c *gin.Context) {
	var req struct {
		URL      string `json:"url"`
		Branch   string `json:"branch"`
		FileType string `json:"file_type"`
	}
	_ = c.ShouldBindJSON(&req) // missing fields fall through to validation

	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "url is required"})
		return
	}
	branch := ingestion.Branch(req.Branch)
	if !branch.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "branch is required"})
		return
	}
	fileType := ingestion.FileType(req.FileType)
	if !fileType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "file_type is required"})
		return
	}

	filename := req.URL[strings.LastIndex(req.URL, "/")+1:]
	if filename == "" {
		filename = "import.xlsx"
	}

	upload, fileRef := s.store.CreateUpload(filename, branch, fileType, 0, "")
	c.JSON(http.StatusOK, gin.H{
		"file_id":         fileRef,
		"excel_upload_id": upload.ID,
		"status":          "queued",
		"sha256":          "mock",
	})
}

func (s *server) listUploadsHandler(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = min(max(n, 1), 100)
		}
	}
	rows := s.store.ListUploads(limit,
		ingestion.Branch(c.Query("branch")),
		ingestion.FileType(c.Query("file_type")),
	)
	c.JSON(http.StatusOK, rows)
}

func (s *server) getUploadHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid id"})
		return
	}
	u, ok := s.store.GetUpload(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Upload not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *server) downloadFileHandler(c *gin.Context) {
	fileID := c.Param("fileId")
	f, ok := s.store.GetFile(fileID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "File not found"})
		return
	}
	data, err := ingestion.DecodeBytes(f.ContentB64)
	if err != nil {
		slog.Error("stored payload is not valid base64", "file_id", fileID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "stored file is corrupt"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// previewFileHandler returns stable placeholder rows. Demo mode never parses
// real spreadsheet content on the server; this keeps the preview UI working.
func (s *server) previewFileHandler(c *gin.Context) {
	rows := 10
	if v := c.Query("rows"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			rows = min(max(n, 1), 25)
		}
	}
	out := make([][]string, 0, rows)
	for i := 1; i <= rows; i++ {
		out = append(out, []string{
			fmt.Sprintf("Row %dA", i),
			fmt.Sprintf("Row %dB", i),
			fmt.Sprintf("Row %dC", i),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"file_id": c.Param("fileId"),
		"columns": []string{"Column A", "Column B", "Column C"},
		"rows":    out,
	})
}

// getAuditHandler distinguishes an audit that does not exist yet (409, keep
// polling) from one that never will (404).
func (s *server) getAuditHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("excelUploadId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid id"})
		return
	}
	u, ok := s.store.GetUpload(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Upload not found"})
		return
	}
	if u.AuditID == nil {
		c.JSON(http.StatusConflict, gin.H{"detail": "Audit not ready"})
		return
	}
	audit, ok := s.store.GetAudit(*u.AuditID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Audit not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"upload": gin.H{
			"excel_upload_id":   u.ID,
			"ai_audit_id":       u.AuditID,
			"mongo_gridfs_id":   u.GridFSID,
			"ai_audit_score":    u.AuditScore,
			"processing_status": u.ProcessingStatus,
		},
		"audit": audit,
	})
}

func (s *server) alertsHandler(c *gin.Context) {
	now := time.Now().UTC()
	c.JSON(http.StatusOK, []gin.H{
		{
			"id":          "a1",
			"type":        "warning",
			"message":     "Vendor price variance detected (mock)",
			"timestamp":   now,
			"description": "Tomatoes price delta +18.9% at Patiobella (demo data).",
		},
		{
			"id":          "a2",
			"type":        "critical",
			"message":     "Outstanding invoice aging risk (mock)",
			"timestamp":   now,
			"description": "Eateroo has 1 invoice in 0-30 bucket flagged for review (demo data).",
		},
	})
}

func (s *server) aiQueryHandler(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	_ = c.ShouldBindJSON(&req)
	c.JSON(http.StatusOK, gin.H{
		"response": fmt.Sprintf("Mock AI Response: I received your query: \"%s\". In hosted demo mode, insights are simulated.", req.Query),
	})
}

func (s *server) aiSummaryHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"summary": "Consolidated revenue is tracking at 124,850 with 12.5% growth; 3 red flags need review (demo data).",
	})
}
