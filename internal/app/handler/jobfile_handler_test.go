package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/internal/app/ds"

	"github.com/gin-gonic/gin"
)

// MinIO может быть недоступен при старте (server.go продолжает работу
// с nil клиентом) - обработчики дел обязаны это переживать.

func TestJobFileToDTOWithoutMinIO(t *testing.T) {
	h := &APIHandler{} // MinIOClient == nil

	filename := "jobfile_a1b2c3d4_1756500000.pdf"
	jobFile := &ds.JobFile{
		ID:         1,
		Title:      "Договор поставки",
		Status:     "открыт",
		ClientID:   1,
		Client:     ds.Client{ID: 1, Name: "ООО Ромашка"},
		CreatedAt:  time.Now(),
		Attachment: &filename,
	}

	response := h.jobFileToDTO(jobFile)

	if response.Attachment != filename {
		t.Errorf("Attachment = %q, ожидается %q", response.Attachment, filename)
	}
	// Без хранилища ссылки нет, но имя файла сохраняется
	if response.AttachmentURL != "" {
		t.Errorf("AttachmentURL = %q, ожидается пустая строка", response.AttachmentURL)
	}
}

func TestAttachmentEndpointsWithoutMinIO(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &APIHandler{}

	tests := []struct {
		name    string
		method  string
		handler gin.HandlerFunc
	}{
		{"загрузка", http.MethodPost, h.UploadJobFileAttachment},
		{"скачивание", http.MethodGet, h.DownloadJobFileAttachment},
		{"удаление", http.MethodDelete, h.DeleteJobFileAttachment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(tt.method, "/api/job-files/1/attachment", nil)
			c.Params = gin.Params{{Key: "id", Value: "1"}}

			tt.handler(c)

			if w.Code != http.StatusServiceUnavailable {
				t.Errorf("код ответа = %d, ожидается %d", w.Code, http.StatusServiceUnavailable)
			}
		})
	}
}
