package feed

import (
	"fmt"
	"strings"

	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/orders"
)

// Vocabulary translates one upstream status dialect into canonical codes.
type Vocabulary struct {
	name    string
	aliases map[string]string
}

var (
	// Storefront is the order list vocabulary. It uses canonical codes plus
	// the "shipping" spelling of shipped.
	Storefront = Vocabulary{
		name: "storefront",
		aliases: map[string]string{
			"shipping": orders.StatusShipped,
		},
	}

	// Legacy is the older admin screen dialect, where "cancelled" meant a
	// refused return and "tuchoi" a cancelled order.
	Legacy = Vocabulary{
		name: "legacy",
		aliases: map[string]string{
			"shipping":         orders.StatusShipped,
			"yeu_cau_hoan_tra": orders.StatusReturnRequested,
			"paid":             orders.StatusReturned,
			"cancelled":        orders.StatusReturnRejected,
			"tuchoi":           orders.StatusCancelled,
		},
	}
)

func ParseVocabulary(name string) (Vocabulary, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Storefront.name:
		return Storefront, nil
	case Legacy.name:
		return Legacy, nil
	default:
		return Vocabulary{}, fmt.Errorf("unknown feed vocabulary %q", name)
	}
}

func (v Vocabulary) Name() string {
	return v.name
}

// Normalize maps an upstream status to its canonical code. Codes the
// vocabulary does not know are passed through for the classifier to bucket.
func (v Vocabulary) Normalize(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	if canonical, ok := v.aliases[s]; ok {
		return canonical
	}
	return s
}
