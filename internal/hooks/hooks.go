// Package hooks implements the certbot auth and cleanup hooks
// managing the ACME DNS-01 challenge TXT record through the
// RackCorp DNS API.
package hooks

import (
	"context"
	"time"

	"github.com/rackcorp/certbot-dns-rackcorp/internal/rackcorp"
)

//go:generate mockgen -destination=mock_hooks/client.go -package=mock_hooks . Client

type Client interface {
	DomainList(ctx context.Context) (domains []rackcorp.Domain, err error)
	DomainGet(ctx context.Context, domainID string) (domain rackcorp.Domain, err error)
	RecordCreate(ctx context.Context, record rackcorp.Record) (created rackcorp.Record, err error)
	RecordUpdate(ctx context.Context, record rackcorp.Record) (updated rackcorp.Record, err error)
	RecordDelete(ctx context.Context, recordID string) (err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}

// TXTFetcher looks up the values of a TXT record, used to verify
// challenge record propagation after the auth hook mutation.
type TXTFetcher interface {
	FetchTXT(ctx context.Context, fqdn string) (values []string, err error)
}

type Settings struct {
	// Domain is the fully qualified challenge domain, from CERTBOT_DOMAIN.
	Domain string
	// Validation is the challenge token, from CERTBOT_VALIDATION.
	Validation string
	// PropagationDelay is how long the auth hook pauses after a
	// successful mutation.
	PropagationDelay time.Duration
}

type Hooks struct {
	client    Client
	fetcher   TXTFetcher // optional, nil disables the propagation check
	settings  Settings
	logger    Logger
	timeSleep func(ctx context.Context, duration time.Duration)
}

func New(client Client, fetcher TXTFetcher, settings Settings, logger Logger) *Hooks {
	return &Hooks{
		client:    client,
		fetcher:   fetcher,
		settings:  settings,
		logger:    logger,
		timeSleep: timeSleep,
	}
}

func timeSleep(ctx context.Context, duration time.Duration) {
	timer := time.NewTimer(duration)
	select {
	case <-timer.C:
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
	}
}
