package orders_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/orders"
)

var filterNow = time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)

func sampleViews() []orders.View {
	list := []orders.Order{
		{Code: "DH001", CustomerName: "Nguyễn Văn An", Status: orders.StatusDelivered, PlacedAt: filterNow.Add(-48 * time.Hour), Total: decimal.NewFromInt(450000)},
		{Code: "DH002", CustomerName: "Trần Thị Bình", Status: orders.StatusDelivered, PlacedAt: filterNow.Add(-240 * time.Hour), ReturnRequest: request("requested")},
		{Code: "DH003", CustomerName: "Lê Văn Cường", Status: "foo_bar", PlacedAt: filterNow.Add(-time.Hour)},
		{Code: "NGUYEN-7", CustomerName: "Phạm Minh", Status: orders.StatusShipped, PlacedAt: filterNow},
		{Code: "DH005", CustomerName: "NGUYEN THI HOA", Status: orders.StatusReturned, PlacedAt: filterNow, ReturnRequest: request("requested")},
		{Code: "DH006", CustomerName: "Đỗ Hùng", Status: orders.StatusDelivered, PlacedAt: filterNow, ReturnRequest: request("approved")},
	}
	return orders.EnrichAll(list, filterNow)
}

func codes(views []orders.View) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.Code
	}
	return out
}

func TestFilter_MatchAllIsIdentity(t *testing.T) {
	views := sampleViews()
	got := orders.Filter(views, orders.Query{Search: "", Status: "all", Return: "all"})
	assert.Equal(t, views, got)

	got = orders.Filter(views, orders.Query{})
	assert.Equal(t, views, got)
}

func TestFilter_Search(t *testing.T) {
	views := sampleViews()

	got := orders.Filter(views, orders.Query{Search: "nguyen", Status: "all", Return: "all"})
	assert.Equal(t, []string{"NGUYEN-7", "DH005"}, codes(got))

	got = orders.Filter(views, orders.Query{Search: "  dh00  "})
	assert.Equal(t, []string{"DH001", "DH002", "DH003", "DH005", "DH006"}, codes(got))

	got = orders.Filter(views, orders.Query{Search: "văn"})
	assert.Equal(t, []string{"DH001", "DH003"}, codes(got))

	assert.Empty(t, orders.Filter(views, orders.Query{Search: "zzz"}))
}

func TestFilter_Status(t *testing.T) {
	views := sampleViews()

	got := orders.Filter(views, orders.Query{Status: orders.StatusDelivered})
	assert.Equal(t, []string{"DH001", "DH002", "DH006"}, codes(got))

	for _, st := range orders.KnownStatuses() {
		for _, v := range orders.Filter(views, orders.Query{Status: st.Code}) {
			assert.NotEqual(t, "DH003", v.Code)
		}
	}
}

func TestFilter_StatusSynonym(t *testing.T) {
	views := orders.EnrichAll([]orders.Order{
		{Code: "DH010", Status: orders.StatusShipped, PlacedAt: filterNow},
		{Code: "DH011", Status: "shipping", PlacedAt: filterNow},
		{Code: "DH012", Status: orders.StatusDelivered, PlacedAt: filterNow},
	}, filterNow)

	assert.Equal(t, []string{"DH010", "DH011"}, codes(orders.Filter(views, orders.Query{Status: orders.StatusShipped})))
	assert.Equal(t, []string{"DH010", "DH011"}, codes(orders.Filter(views, orders.Query{Status: "shipping"})))
}

func TestFilter_SearchTermIsNotTrimmed(t *testing.T) {
	views := sampleViews()

	assert.Empty(t, orders.Filter(views, orders.Query{Search: " dh001"}))
	assert.Equal(t, []string{"DH001"}, codes(orders.Filter(views, orders.Query{Search: "dh001"})))
	assert.Equal(t, " dh001", orders.NormalizeQuery(orders.Query{Search: " dh001"}).Search)
}

func TestFilter_Return(t *testing.T) {
	views := sampleViews()

	tests := []struct {
		ret  string
		want []string
	}{
		{"none", []string{"DH001", "DH003", "NGUYEN-7"}},
		{"requested", []string{"DH002"}},
		{"approved", []string{"DH006"}},
		{"completed", []string{"DH005"}},
		{"rejected", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.ret, func(t *testing.T) {
			assert.Equal(t, tt.want, codes(orders.Filter(views, orders.Query{Return: tt.ret})))
		})
	}
}

func TestFilter_Combined(t *testing.T) {
	views := sampleViews()
	got := orders.Filter(views, orders.Query{Search: "dh", Status: orders.StatusDelivered, Return: "none"})
	assert.Equal(t, []string{"DH001"}, codes(got))
}

func TestFilter_PredicatesCommute(t *testing.T) {
	views := sampleViews()
	a := orders.All(orders.MatchSearch("dh"), orders.MatchStatus(orders.StatusDelivered), orders.MatchReturn("none"))
	b := orders.All(orders.MatchReturn("none"), orders.MatchStatus(orders.StatusDelivered), orders.MatchSearch("dh"))
	for _, v := range views {
		assert.Equal(t, a(v), b(v), v.Code)
	}
}

func TestFilter_IdempotentAndPure(t *testing.T) {
	views := sampleViews()
	before := codes(views)
	q := orders.Query{Search: "nguyen", Status: "all", Return: "all"}

	first := orders.Filter(views, q)
	second := orders.Filter(views, q)
	assert.Equal(t, first, second)
	assert.Equal(t, first, orders.Filter(first, q))
	assert.Equal(t, before, codes(views))
}

func TestEndToEndScenario(t *testing.T) {
	now := filterNow
	o1 := orders.Enrich(orders.Order{Code: "O1", Status: orders.StatusDelivered, PlacedAt: now.Add(-48 * time.Hour)}, now)
	o2 := orders.Enrich(orders.Order{Code: "O2", Status: orders.StatusDelivered, PlacedAt: now.Add(-240 * time.Hour), ReturnRequest: request("requested")}, now)
	o3 := orders.Enrich(orders.Order{Code: "O3", Status: "foo_bar", PlacedAt: now}, now)

	assert.True(t, o1.CanReturn)
	assert.Equal(t, orders.ReturnNone, o1.Return.State)
	assert.Empty(t, o1.Actions)

	assert.False(t, o2.CanReturn)
	assert.Equal(t, orders.ReturnRequested, o2.Return.State)
	assert.Equal(t, []orders.Action{orders.ActionApproveReturn, orders.ActionRejectReturn}, o2.Actions)

	assert.Equal(t, "unknown", o3.StatusInfo.Label)
	assert.Equal(t, orders.ToneNeutral, o3.StatusInfo.Tone)

	views := []orders.View{o1, o2, o3}
	require.Len(t, orders.Filter(views, orders.Query{Status: "all"}), 3)
	for _, st := range orders.KnownStatuses() {
		assert.NotContains(t, codes(orders.Filter(views, orders.Query{Status: st.Code})), "O3")
	}
}
