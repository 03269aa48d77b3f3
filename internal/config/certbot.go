package config

import (
	"errors"
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Certbot holds the challenge inputs certbot passes to its hooks
// through the environment.
type Certbot struct {
	// Domain is the fully qualified domain being validated.
	Domain string
	// Validation is the DNS-01 challenge token to publish.
	Validation string
}

func (c *Certbot) read(reader *reader.Reader) {
	c.Domain = reader.String("CERTBOT_DOMAIN")
	c.Validation = reader.String("CERTBOT_VALIDATION")
}

var (
	ErrCertbotDomainNotSet     = errors.New("CERTBOT_DOMAIN is not set")
	ErrCertbotValidationNotSet = errors.New("CERTBOT_VALIDATION is not set")
)

func (c Certbot) Validate() (err error) {
	switch {
	case c.Domain == "":
		return fmt.Errorf("%w", ErrCertbotDomainNotSet)
	case c.Validation == "":
		return fmt.Errorf("%w", ErrCertbotValidationNotSet)
	}
	return nil
}

func (c Certbot) String() string {
	return c.toLinesNode().String()
}

func (c Certbot) toLinesNode() *gotree.Node {
	node := gotree.New("Certbot")
	node.Appendf("Domain: %s", c.Domain)
	node.Appendf("Validation: %s", obfuscate(c.Validation))
	return node
}
