package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"gopkg.in/ini.v1"
)

// Credential is the RackCorp API key pair. It is resolved from the
// environment first and from the RackCorp configuration files second,
// without merging between sources.
type Credential struct {
	UUID   string
	Secret string
}

func (c *Credential) read(reader *reader.Reader) (err error) {
	return c.readFrom(reader, defaultFilePaths())
}

func (c *Credential) readFrom(reader *reader.Reader, filePaths []string) (err error) {
	c.UUID = strings.TrimSpace(reader.String("RACKCORP_API_UUID"))
	c.Secret = strings.TrimSpace(reader.String("RACKCORP_API_SECRET"))
	if c.UUID != "" && c.Secret != "" {
		return nil
	}

	c.UUID, c.Secret = "", ""
	return c.readFromFiles(filePaths)
}

// defaultFilePaths returns the two well known RackCorp configuration
// file locations, probed in order.
func defaultFilePaths() (paths []string) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, ".rackcorp"),
		filepath.Join(home, ".config", "rackcorp", "config"),
	}
}

// readFromFiles probes each path in order and takes the key pair from
// the first existing file holding both a non-empty apiuuid and
// apisecret in its [general] section. Finding none of the files, or
// only files with incomplete key pairs, is not an error; the
// credential is simply left unset for Validate to report.
func (c *Credential) readFromFiles(paths []string) (err error) {
	for _, path := range paths {
		_, err = os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("probing file: %w", err)
		}

		file, err := ini.Load(path)
		if err != nil {
			return fmt.Errorf("parsing file %s: %w", path, err)
		}

		section := file.Section("general")
		uuid := strings.TrimSpace(section.Key("apiuuid").String())
		secret := strings.TrimSpace(section.Key("apisecret").String())
		if uuid != "" && secret != "" {
			c.UUID = uuid
			c.Secret = secret
			return nil
		}
	}

	return nil
}

var ErrCredentialsNotSet = errors.New("API credentials are not set")

func (c Credential) Validate() (err error) {
	if c.UUID == "" || c.Secret == "" {
		return fmt.Errorf("%w: set RACKCORP_API_UUID and RACKCORP_API_SECRET, "+
			"or add apiuuid and apisecret to the [general] section of "+
			"~/.rackcorp or ~/.config/rackcorp/config", ErrCredentialsNotSet)
	}
	return nil
}

func (c Credential) String() string {
	return c.toLinesNode().String()
}

func (c Credential) toLinesNode() *gotree.Node {
	node := gotree.New("Credential")
	node.Appendf("API UUID: %s", c.UUID)
	node.Appendf("API secret: %s", obfuscate(c.Secret))
	return node
}

func obfuscate(secret string) string {
	if secret == "" {
		return "[not set]"
	}
	return "[set]"
}
