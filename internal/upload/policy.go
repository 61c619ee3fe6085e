package upload

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects the upload policy for a resource.
type Kind string

const (
	KindProjectImage    Kind = "projectImage"
	KindResumeFile      Kind = "resumeFile"
	KindCertificateFile Kind = "certificateImage"
	KindProfilePhoto    Kind = "profilePhoto"
)

var (
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file exceeds the size limit")
)

// Policy is the per-resource upload configuration: which multipart field
// carries the file, what it may contain, how big it may be and where it goes.
type Policy struct {
	FieldName    string
	Category     string // destination directory under the blob store root
	MaxSizeBytes int64
	AllowedTypes []string // exact MIME types, or prefix wildcards like "image/*"
}

// Allows reports whether the policy accepts the given MIME type. A bare
// content type with parameters ("image/png; charset=...") is matched on the
// type alone.
func (p Policy) Allows(mimeType string) bool {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	for _, allowed := range p.AllowedTypes {
		if t, ok := strings.CutSuffix(allowed, "/*"); ok {
			if strings.HasPrefix(mimeType, t+"/") {
				return true
			}
		} else if mimeType == allowed {
			return true
		}
	}
	return false
}

// policies mirrors the per-resource upload rules of the admin panel. One
// generic acceptor consumes this table instead of four near-duplicate
// handlers carrying their own limits.
var policies = map[Kind]Policy{
	KindProjectImage: {
		FieldName:    "projectImage",
		Category:     "project_images",
		MaxSizeBytes: 10 << 20,
		AllowedTypes: []string{"image/*"},
	},
	KindResumeFile: {
		FieldName:    "resumeFile",
		Category:     "resumes",
		MaxSizeBytes: 5 << 20,
		AllowedTypes: []string{"application/pdf"},
	},
	KindCertificateFile: {
		FieldName:    "certificateImage",
		Category:     "certificate_images",
		MaxSizeBytes: 5 << 20,
		AllowedTypes: []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp", "application/pdf"},
	},
	KindProfilePhoto: {
		FieldName:    "profilePhoto",
		Category:     "profile_photo",
		MaxSizeBytes: 2 << 20,
		AllowedTypes: []string{"image/*"},
	},
}

// PolicyFor returns the policy registered for kind.
func PolicyFor(kind Kind) (Policy, error) {
	p, ok := policies[kind]
	if !ok {
		return Policy{}, fmt.Errorf("no upload policy for kind %q", kind)
	}
	return p, nil
}

// Categories lists every destination directory, for store initialization at
// startup.
func Categories() []string {
	out := make([]string, 0, len(policies))
	for _, p := range policies {
		out = append(out, p.Category)
	}
	return out
}
