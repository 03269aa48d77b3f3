package config

import (
	"fmt"
	"net"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Hook holds the orchestration settings shared by the auth and
// cleanup hooks.
type Hook struct {
	// PropagationDelay is the pause after a successful record
	// mutation, leaving the provider time to propagate the zone.
	PropagationDelay time.Duration
	// ResolverAddress is the host:port of a DNS server to verify the
	// challenge record against after the delay. Empty disables the check.
	ResolverAddress *string
	// ResolverTimeout bounds each verification DNS exchange.
	ResolverTimeout time.Duration
}

func (h *Hook) read(reader *reader.Reader) (err error) {
	h.PropagationDelay, err = reader.Duration("RACKCORP_PROPAGATION_DELAY")
	if err != nil {
		return err
	}

	h.ResolverAddress = reader.Get("RACKCORP_DNS_CHECK_RESOLVER")
	if h.ResolverAddress != nil && *h.ResolverAddress != "" {
		_, _, splitErr := net.SplitHostPort(*h.ResolverAddress)
		if splitErr != nil { // conveniently add port 53 if not specified
			*h.ResolverAddress = net.JoinHostPort(*h.ResolverAddress, "53")
		}
	}

	h.ResolverTimeout, err = reader.Duration("RACKCORP_DNS_CHECK_TIMEOUT")
	return err
}

func (h *Hook) setDefaults() {
	const defaultPropagationDelay = 10 * time.Second
	h.PropagationDelay = gosettings.DefaultComparable(h.PropagationDelay, defaultPropagationDelay)
	h.ResolverAddress = gosettings.DefaultPointer(h.ResolverAddress, "")
	const defaultResolverTimeout = 5 * time.Second
	h.ResolverTimeout = gosettings.DefaultComparable(h.ResolverTimeout, defaultResolverTimeout)
}

func (h Hook) Validate() (err error) {
	if *h.ResolverAddress != "" {
		_, _, err = net.SplitHostPort(*h.ResolverAddress)
		if err != nil {
			return fmt.Errorf("splitting host and port from resolver address: %w", err)
		}
	}
	return nil
}

func (h Hook) String() string {
	return h.toLinesNode().String()
}

func (h Hook) toLinesNode() *gotree.Node {
	node := gotree.New("Hook")
	node.Appendf("Propagation delay: %s", h.PropagationDelay)
	if *h.ResolverAddress == "" {
		node.Appendf("Propagation check: disabled")
	} else {
		node.Appendf("Propagation check resolver: %s", *h.ResolverAddress)
		node.Appendf("Propagation check timeout: %s", h.ResolverTimeout)
	}
	return node
}
