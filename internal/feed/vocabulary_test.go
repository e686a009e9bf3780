package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/orders"
)

func TestVocabulary_Normalize(t *testing.T) {
	tests := []struct {
		vocab Vocabulary
		in    string
		want  string
	}{
		{Storefront, "shipped", orders.StatusShipped},
		{Storefront, " Delivered ", orders.StatusDelivered},
		{Storefront, "cancelled", orders.StatusCancelled},
		{Storefront, "shipping", orders.StatusShipped},
		{Storefront, " SHIPPING", orders.StatusShipped},
		{Legacy, "shipping", orders.StatusShipped},
		{Legacy, "yeu_cau_hoan_tra", orders.StatusReturnRequested},
		{Legacy, "paid", orders.StatusReturned},
		{Legacy, "cancelled", orders.StatusReturnRejected},
		{Legacy, "tuchoi", orders.StatusCancelled},
		{Legacy, "pending", orders.StatusPending},
		{Legacy, "foo_bar", "foo_bar"},
	}

	for _, tt := range tests {
		t.Run(tt.vocab.Name()+"/"+tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.vocab.Normalize(tt.in))
		})
	}
}

func TestVocabulary_ShippingIsInTransit(t *testing.T) {
	for _, vocab := range []Vocabulary{Storefront, Legacy} {
		info := orders.Classify(vocab.Normalize("shipping"))
		assert.True(t, info.Known, vocab.Name())
		assert.Equal(t, "in transit", info.Label, vocab.Name())
		assert.Equal(t, orders.ToneInfoStrong, info.Tone, vocab.Name())
	}
}

func TestParseVocabulary(t *testing.T) {
	v, err := ParseVocabulary("")
	require.NoError(t, err)
	assert.Equal(t, "storefront", v.Name())

	v, err = ParseVocabulary("LEGACY")
	require.NoError(t, err)
	assert.Equal(t, "legacy", v.Name())

	_, err = ParseVocabulary("other")
	assert.Error(t, err)
}
