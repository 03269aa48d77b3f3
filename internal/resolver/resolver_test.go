package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExchanger struct {
	response    *dns.Msg
	err         error
	gotQuestion dns.Question
	gotAddress  string
}

func (f *fakeExchanger) ExchangeContext(_ context.Context, m *dns.Msg, address string) (
	*dns.Msg, time.Duration, error) {
	f.gotQuestion = m.Question[0]
	f.gotAddress = address
	return f.response, 0, f.err
}

func Test_Resolver_FetchTXT(t *testing.T) {
	t.Parallel()

	response := new(dns.Msg)
	response.Rcode = dns.RcodeSuccess
	response.Answer = []dns.RR{
		&dns.TXT{
			Hdr: dns.RR_Header{
				Name:   "_acme-challenge.foo.example.com.",
				Rrtype: dns.TypeTXT,
				Class:  dns.ClassINET,
			},
			Txt: []string{"tok", "en"},
		},
	}
	exchanger := &fakeExchanger{response: response}
	resolver := &Resolver{client: exchanger, address: "1.1.1.1:53"}

	values, err := resolver.FetchTXT(context.Background(), "_acme-challenge.foo.example.com")

	require.NoError(t, err)
	assert.Equal(t, []string{"token"}, values)
	assert.Equal(t, "_acme-challenge.foo.example.com.", exchanger.gotQuestion.Name)
	assert.Equal(t, dns.TypeTXT, exchanger.gotQuestion.Qtype)
	assert.Equal(t, "1.1.1.1:53", exchanger.gotAddress)
}

func Test_Resolver_FetchTXT_rcodeFailure(t *testing.T) {
	t.Parallel()

	response := new(dns.Msg)
	response.Rcode = dns.RcodeNameError
	resolver := &Resolver{client: &fakeExchanger{response: response}, address: "1.1.1.1:53"}

	_, err := resolver.FetchTXT(context.Background(), "missing.example.com")

	assert.ErrorIs(t, err, ErrRcodeNotSuccess)
}

func Test_Settings_Validate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		settings   Settings
		errWrapped error
	}{
		"valid": {
			settings: Settings{
				Address: ptrTo("127.0.0.1:53"),
				Timeout: time.Second,
			},
		},
		"address not set": {
			settings: Settings{
				Address: ptrTo(""),
				Timeout: time.Second,
			},
			errWrapped: ErrAddressNotSet,
		},
		"timeout too low": {
			settings: Settings{
				Address: ptrTo("127.0.0.1:53"),
				Timeout: time.Millisecond,
			},
			errWrapped: ErrTimeoutTooLow,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := testCase.settings.Validate()

			assert.ErrorIs(t, err, testCase.errWrapped)
		})
	}
}

func ptrTo[T any](value T) *T { return &value }
