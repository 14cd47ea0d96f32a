package material

import (
	"strings"
	"time"

	"github.com/edustack/studyhub/core"
)

// Material is one study-material record. The file bytes themselves live with
// the storage collaborator; only the metadata lifecycle is tracked here.
type Material struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	FilePath    string    `json:"file_path,omitempty"`
	FileSize    int64     `json:"file_size,omitempty"`
	UploadedBy  string    `json:"uploaded_by"`
	Course      string    `json:"course,omitempty"`
	Subject     string    `json:"subject,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"` // UTC
	Downloads   int       `json:"downloads_count"`
	Views       int       `json:"views_count"`
	IsPublic    bool      `json:"is_public"`
}

// NewMaterial contains the metadata accepted with an upload.
type NewMaterial struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	FileName    string `json:"file_name" validate:"required"`
	FileSize    int64  `json:"file_size"`
	Course      string `json:"course"`
	Subject     string `json:"subject"`
	IsPublic    bool   `json:"is_public"`
}

func (nm *NewMaterial) Validate() error {
	nm.Title = core.CleanString(nm.Title)
	nm.Description = core.CleanString(nm.Description)
	nm.FileName = core.CleanString(nm.FileName)
	nm.Course = core.CleanString(nm.Course)
	nm.Subject = core.CleanString(nm.Subject)
	return core.TranslateValidatorError(core.Validate.Struct(nm))
}

// UpdateMaterial defines what metadata may be modified on an existing Material.
// Zero-valued fields are left untouched.
type UpdateMaterial struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Course      string `json:"course"`
	Subject     string `json:"subject"`
	IsPublic    *bool  `json:"is_public"`
}

// Filter applies AND on the set fields; matches are case-insensitive.
type Filter struct {
	Course  string
	Subject string
}

// fileType derives the material type from the uploaded file name.
func fileType(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 && i < len(name)-1 {
		return strings.ToLower(name[i+1:])
	}
	return "file"
}
