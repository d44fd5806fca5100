package asset

import (
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/catalogd/internal/domain"
)

// Kind tags the asset variant.
type Kind string

const (
	// KindKPI is a metric definition with a calculation expression.
	KindKPI Kind = "KPI"
	// KindLayout is a page layout referencing KPIs.
	KindLayout Kind = "Layout"
	// KindVisualization is a chart or visual component.
	KindVisualization Kind = "Visualization"
	// KindStoryboard is a narrative sequence over KPI filters.
	KindStoryboard Kind = "Storyboard"
)

// Kinds returns all asset kinds in the fixed probe order.
// Lookups that span collections try kinds in exactly this order.
func Kinds() []Kind {
	return []Kind{KindKPI, KindLayout, KindVisualization, KindStoryboard}
}

// IsValid checks if the kind is one of the four variants.
func (k Kind) IsValid() bool {
	switch k {
	case KindKPI, KindLayout, KindVisualization, KindStoryboard:
		return true
	}
	return false
}

// ParseKind converts a client-supplied type tag into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("unknown asset type %q: %w", s, domain.ErrValidation)
	}
	return k, nil
}

// Access is the visibility/permission state of an asset.
type Access string

const (
	// AccessGranted means the caller may use the asset.
	AccessGranted Access = "granted"
	// AccessRequested means access has been asked for but not yet granted.
	AccessRequested Access = "requested"
	// AccessRestricted means the asset is not available to the caller.
	AccessRestricted Access = "restricted"
)

// IsValid checks if the access value is one of the three states.
func (a Access) IsValid() bool {
	return a == AccessGranted || a == AccessRequested || a == AccessRestricted
}

// ParseAccess converts a client-supplied access value into an Access.
func ParseAccess(s string) (Access, error) {
	a := Access(s)
	if !a.IsValid() {
		return "", fmt.Errorf("access must be granted, requested or restricted, got %q: %w",
			s, domain.ErrValidation)
	}
	return a, nil
}

// BusinessQuestion is a question/answer pair attached to KPIs and Layouts.
type BusinessQuestion struct {
	Question    string `json:"question"`
	Description string `json:"description"`
}

// Asset is a catalog entry. The four variants share engagement metadata and
// are distinguished by Kind; variant-specific fields are zero for other kinds.
type Asset struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Kind        Kind      `json:"category"`
	Description string    `json:"description"`
	LastUpdated time.Time `json:"lastUpdated"`

	Tags              []string           `json:"tags,omitempty"`
	Preview           []string           `json:"preview,omitempty"`
	BusinessQuestions []BusinessQuestion `json:"businessQuestion,omitempty"`

	UsedCount      int  `json:"usedCount"`
	FavoritedCount int  `json:"favoritedCount"`
	Favorited      bool `json:"favorited"`
	SharedCount    int  `json:"sharedCount"`

	Access Access `json:"access"`

	// KPI
	MetricID               string `json:"metricID,omitempty"`
	Calculation            string `json:"calculation,omitempty"`
	AffiliateApplicability bool   `json:"affiliateApplicability,omitempty"`

	// Layout
	LayoutType string   `json:"type,omitempty"`
	About      string   `json:"about,omitempty"`
	Pages      []string `json:"page,omitempty"`
	KPIUsed    []string `json:"kpiUsed,omitempty"`

	// Visualization
	InfoContext      string   `json:"infoContext,omitempty"`
	ApplicableKPIIDs []string `json:"applicableKpiIDs,omitempty"`

	// Storyboard
	KPIFilters []string `json:"kpifilters,omitempty"`
	Affiliates string   `json:"affiliates,omitempty"`
}

// Summary is the listing projection of an asset.
type Summary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	LastUpdated time.Time `json:"lastUpdated"`
	Category    Kind      `json:"category"`
	Access      Access    `json:"access"`
}

// Summary returns the listing projection of the asset.
func (a *Asset) Summary() Summary {
	return Summary{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		LastUpdated: a.LastUpdated,
		Category:    a.Kind,
		Access:      a.Access,
	}
}

// Matches reports whether the query is a case-insensitive substring of the
// asset title or description.
func (a *Asset) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Description), q)
}

// New validates a client-supplied draft and returns the asset ready for
// persistence: engagement counters zeroed, favorited cleared, LastUpdated
// stamped with now. The ID is assigned by the store.
func New(kind Kind, draft Asset, now time.Time) (Asset, error) {
	if !kind.IsValid() {
		return Asset{}, fmt.Errorf("unknown asset kind %q: %w", kind, domain.ErrValidation)
	}
	if err := validateRequired(kind, &draft); err != nil {
		return Asset{}, err
	}
	if !draft.Access.IsValid() {
		return Asset{}, fmt.Errorf("access must be granted, requested or restricted, got %q: %w",
			draft.Access, domain.ErrValidation)
	}

	a := draft
	a.ID = ""
	a.Kind = kind
	a.LastUpdated = now
	a.UsedCount = 0
	a.FavoritedCount = 0
	a.Favorited = false
	a.SharedCount = 0
	return a, nil
}

func validateRequired(kind Kind, draft *Asset) error {
	required := map[string]string{
		"title":       draft.Title,
		"description": draft.Description,
	}
	switch kind {
	case KindKPI:
		required["metricID"] = draft.MetricID
		required["calculation"] = draft.Calculation
	case KindLayout:
		required["about"] = draft.About
	case KindVisualization:
		required["infoContext"] = draft.InfoContext
	case KindStoryboard:
		required["affiliates"] = draft.Affiliates
	}
	for field, v := range required {
		if v == "" {
			return fmt.Errorf("%s is required: %w", field, domain.ErrValidation)
		}
	}
	return nil
}
