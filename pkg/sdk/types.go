package catalog

import (
	domasset "github.com/kailas-cloud/catalogd/internal/domain/asset"
	domreq "github.com/kailas-cloud/catalogd/internal/domain/request"
	searchuc "github.com/kailas-cloud/catalogd/internal/usecase/search"
)

// Domain types re-exported for SDK consumers.
type (
	// Asset is a full catalog asset of any kind.
	Asset = domasset.Asset
	// Summary is the listing projection of an asset.
	Summary = domasset.Summary
	// Kind is the asset variant tag.
	Kind = domasset.Kind
	// Access is the visibility/permission state of an asset.
	Access = domasset.Access
	// BusinessQuestion is a question/answer pair attached to KPIs and Layouts.
	BusinessQuestion = domasset.BusinessQuestion
	// Request is a user's ask for a new catalog asset.
	Request = domreq.Request
	// SearchResult is the outcome of one search.
	SearchResult = searchuc.Result
)

// Asset kinds.
const (
	KindKPI           = domasset.KindKPI
	KindLayout        = domasset.KindLayout
	KindVisualization = domasset.KindVisualization
	KindStoryboard    = domasset.KindStoryboard
)

// Access states.
const (
	AccessGranted    = domasset.AccessGranted
	AccessRequested  = domasset.AccessRequested
	AccessRestricted = domasset.AccessRestricted
)
