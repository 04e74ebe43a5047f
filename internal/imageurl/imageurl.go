// Package imageurl turns CMS image asset references into CDN URLs.
package imageurl

import (
	"fmt"
	"regexp"
	"strings"

	"rally-results-service/internal/domain/rally"
)

// Placeholder is served whenever an image reference cannot be resolved.
const Placeholder = "/placeholder.svg"

const defaultCDN = "https://cdn.sanity.io"

// image-<assetId>-<width>x<height>-<format>
var assetRefPattern = regexp.MustCompile(`^image-([A-Za-z0-9]+)-(\d+x\d+)-([a-z0-9]+)$`)

// Builder resolves image references for one project and dataset.
type Builder struct {
	cdn       string
	projectID string
	dataset   string
}

// New returns a builder. An empty cdn falls back to the public image CDN.
func New(cdn, projectID, dataset string) *Builder {
	cdn = strings.TrimSuffix(strings.TrimSpace(cdn), "/")
	if cdn == "" {
		cdn = defaultCDN
	}
	return &Builder{cdn: cdn, projectID: projectID, dataset: dataset}
}

// URL returns the CDN URL for ref scaled to width, or Placeholder.
func (b *Builder) URL(ref rally.ImageRef, width int) string {
	if b == nil || b.projectID == "" || b.dataset == "" || ref.IsZero() {
		return Placeholder
	}
	m := assetRefPattern.FindStringSubmatch(strings.TrimSpace(ref.AssetRef))
	if m == nil {
		return Placeholder
	}
	u := fmt.Sprintf("%s/images/%s/%s/%s-%s.%s", b.cdn, b.projectID, b.dataset, m[1], m[2], m[3])
	if width > 0 {
		u += fmt.Sprintf("?w=%d", width)
	}
	return u
}
