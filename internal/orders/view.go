package orders

import "time"

// View is an Order enriched for presentation. It is rebuilt on every read and
// never stored.
type View struct {
	Order
	StatusInfo     StatusInfo       `json:"status_info"`
	CanReturn      bool             `json:"can_return"`
	ReturnDeadline time.Time        `json:"return_deadline"`
	Return         ReturnResolution `json:"return"`
	Actions        []Action         `json:"actions"`
}

func Enrich(o Order, now time.Time) View {
	ret := ResolveReturn(o.Status, o.ReturnRequest)
	return View{
		Order:          o,
		StatusInfo:     Classify(o.Status),
		CanReturn:      CanReturn(o.PlacedAt, now),
		ReturnDeadline: ReturnDeadline(o.PlacedAt),
		Return:         ret,
		Actions:        AvailableActions(ret.State),
	}
}

func EnrichAll(list []Order, now time.Time) []View {
	views := make([]View, len(list))
	for i, o := range list {
		views[i] = Enrich(o, now)
	}
	return views
}
