package resolver

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"
)

type Settings struct {
	// Address is the host:port of the DNS server to query.
	Address *string
	Timeout time.Duration
}

func (s *Settings) SetDefaults() {
	s.Address = gosettings.DefaultPointer(s.Address, "")
	const defaultTimeout = 5 * time.Second
	s.Timeout = gosettings.DefaultComparable(s.Timeout, defaultTimeout)
}

var (
	ErrAddressNotSet    = errors.New("address is not set")
	ErrAddressHostEmpty = errors.New("address host is empty")
	ErrAddressPortEmpty = errors.New("address port is empty")
	ErrTimeoutTooLow    = errors.New("timeout is too low")
)

func (s Settings) Validate() (err error) {
	if *s.Address == "" {
		return fmt.Errorf("%w", ErrAddressNotSet)
	}

	host, port, err := net.SplitHostPort(*s.Address)
	if err != nil {
		return fmt.Errorf("splitting host and port from address: %w", err)
	}

	switch {
	case host == "":
		return fmt.Errorf("%w: in %s", ErrAddressHostEmpty, *s.Address)
	case port == "":
		return fmt.Errorf("%w: in %s", ErrAddressPortEmpty, *s.Address)
	}

	const minTimeout = 10 * time.Millisecond
	if s.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrTimeoutTooLow, s.Timeout, minTimeout)
	}

	return nil
}

func (s Settings) String() string {
	return s.ToLinesNode().String()
}

func (s Settings) ToLinesNode() *gotree.Node {
	node := gotree.New("Propagation check resolver")
	node.Appendf("Address: %s", *s.Address)
	node.Appendf("Timeout: %s", s.Timeout)
	return node
}
