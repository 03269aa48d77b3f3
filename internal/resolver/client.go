package resolver

import (
	"context"
	"time"

	"github.com/miekg/dns"
)

// Client is the DNS exchange client used by the resolver,
// satisfied by *dns.Client.
type Client interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, address string) (
		r *dns.Msg, rtt time.Duration, err error)
}
