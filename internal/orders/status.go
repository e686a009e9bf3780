package orders

// Canonical status codes. Feed adapters normalize every upstream vocabulary to these.
const (
	StatusPending         = "pending"
	StatusProcessing      = "processing"
	StatusShipped         = "shipped"
	StatusDelivered       = "delivered"
	StatusCancelled       = "cancelled"
	StatusReturnRequested = "return_requested"
	StatusReturned        = "returned"
	StatusReturnRejected  = "return_rejected"
)

type Tone string

const (
	ToneNeutral    Tone = "neutral"
	ToneWarning    Tone = "warning"
	ToneInfo       Tone = "info"
	ToneInfoStrong Tone = "info-strong"
	ToneSuccess    Tone = "success"
	ToneSuccessAlt Tone = "success-alt"
	ToneAttention  Tone = "attention"
	ToneError      Tone = "error"
)

type Icon string

const (
	IconClock   Icon = "clock"
	IconPackage Icon = "package"
	IconCheck   Icon = "check"
	IconCross   Icon = "cross"
	IconAlert   Icon = "alert"
)

type StatusInfo struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Tone  Tone   `json:"tone"`
	Icon  Icon   `json:"icon"`
	Known bool   `json:"known"`
}

var statusTable = map[string]StatusInfo{
	StatusPending:         {Label: "awaiting processing", Tone: ToneWarning, Icon: IconClock},
	StatusProcessing:      {Label: "in progress", Tone: ToneInfo, Icon: IconClock},
	StatusShipped:         {Label: "in transit", Tone: ToneInfoStrong, Icon: IconPackage},
	StatusDelivered:       {Label: "delivered", Tone: ToneSuccess, Icon: IconCheck},
	StatusCancelled:       {Label: "cancelled", Tone: ToneError, Icon: IconCross},
	StatusReturnRequested: {Label: "return requested", Tone: ToneAttention, Icon: IconPackage},
	StatusReturned:        {Label: "returned", Tone: ToneSuccessAlt, Icon: IconCheck},
	StatusReturnRejected:  {Label: "return rejected", Tone: ToneError, Icon: IconCross},
}

// knownOrder fixes the order status filter options are offered in.
var knownOrder = []string{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
	StatusReturnRequested,
	StatusReturned,
	StatusReturnRejected,
}

// statusSynonyms are alternate spellings the storefront uses for a canonical
// code.
var statusSynonyms = map[string]string{
	"shipping": StatusShipped,
}

// Canonical returns the canonical code for status, resolving synonyms.
func Canonical(status string) string {
	if c, ok := statusSynonyms[status]; ok {
		return c
	}
	return status
}

// Classify maps a raw status code to its display category. It never fails:
// codes outside the canonical vocabulary land in the unknown bucket.
func Classify(status string) StatusInfo {
	info, ok := statusTable[Canonical(status)]
	if !ok {
		return StatusInfo{Code: status, Label: "unknown", Tone: ToneNeutral, Icon: IconAlert}
	}
	info.Code = status
	info.Known = true
	return info
}

// KnownStatuses returns the classification of every canonical code.
func KnownStatuses() []StatusInfo {
	out := make([]StatusInfo, 0, len(knownOrder))
	for _, code := range knownOrder {
		out = append(out, Classify(code))
	}
	return out
}

func IsKnownStatus(status string) bool {
	_, ok := statusTable[Canonical(status)]
	return ok
}
