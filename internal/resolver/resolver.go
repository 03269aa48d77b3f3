// Package resolver queries TXT records against a specific DNS server,
// bypassing the system resolver. The auth hook uses it to check
// challenge record propagation directly against a resolver of the
// operator's choosing.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

type Resolver struct {
	client  Client
	address string
}

func New(settings Settings) (resolver *Resolver, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	return &Resolver{
		client:  &dns.Client{Timeout: settings.Timeout},
		address: *settings.Address,
	}, nil
}

var ErrRcodeNotSuccess = errors.New("response rcode is not successful")

// FetchTXT returns the values of all TXT answers for the given name.
// A successful response without TXT answers yields an empty slice
// and no error.
func (r *Resolver) FetchTXT(ctx context.Context, name string) (values []string, err error) {
	message := new(dns.Msg)
	message.SetQuestion(dns.Fqdn(name), dns.TypeTXT)
	message.RecursionDesired = true

	response, _, err := r.client.ExchangeContext(ctx, message, r.address)
	if err != nil {
		return nil, fmt.Errorf("exchanging DNS message: %w", err)
	}

	if response.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("%w: %s", ErrRcodeNotSuccess, dns.RcodeToString[response.Rcode])
	}

	for _, answer := range response.Answer {
		txt, ok := answer.(*dns.TXT)
		if !ok {
			continue
		}
		values = append(values, strings.Join(txt.Txt, ""))
	}

	return values, nil
}
