package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Client holds the RackCorp API client settings.
type Client struct {
	BaseURL    string
	APIVersion string
	Timeout    time.Duration
}

func (c *Client) read(reader *reader.Reader) (err error) {
	c.BaseURL = reader.String("RACKCORP_BASE_URL")
	c.APIVersion = reader.String("RACKCORP_API_VERSION")
	c.Timeout, err = reader.Duration("RACKCORP_HTTP_TIMEOUT")
	return err
}

func (c *Client) setDefaults() {
	c.BaseURL = gosettings.DefaultComparable(c.BaseURL, "https://api.rackcorp.net/api/")
	c.APIVersion = gosettings.DefaultComparable(c.APIVersion, "v2.8")
	const defaultTimeout = 30 * time.Second
	c.Timeout = gosettings.DefaultComparable(c.Timeout, defaultTimeout)
}

var (
	ErrBaseURLNotValid = errors.New("base URL is not valid")
	ErrTimeoutTooLow   = errors.New("timeout is too low")
)

func (c Client) Validate() (err error) {
	_, err = url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBaseURLNotValid, err)
	}

	const minTimeout = time.Second
	if c.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrTimeoutTooLow, c.Timeout, minTimeout)
	}

	return nil
}

func (c Client) String() string {
	return c.toLinesNode().String()
}

func (c Client) toLinesNode() *gotree.Node {
	node := gotree.New("Client")
	node.Appendf("Base URL: %s", c.BaseURL)
	node.Appendf("API version: %s", c.APIVersion)
	node.Appendf("HTTP timeout: %s", c.Timeout)
	return node
}
