package constants

import "strings"

// FileTypes holds the allowed file types for the format field in ExtractJob.
var FileTypes = []string{"PDF", "IMAGE"}

const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// AllowedExtensions holds the default allowed file extensions for contract ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tif":  {},
	"tiff": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to the job format enum, or "" if unsupported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png", "tif", "tiff":
		return IMAGE
	default:
		return ""
	}
}
