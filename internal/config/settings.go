// Package config reads and validates all the program settings from
// environment variables and, for the API credential, from the
// RackCorp configuration files.
package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Settings struct {
	Client     Client
	Credential Credential
	Certbot    Certbot
	Hook       Hook
	Logger     Logger
}

func (s *Settings) Read(reader *reader.Reader) (err error) {
	err = s.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	err = s.Credential.read(reader)
	if err != nil {
		return fmt.Errorf("reading credential settings: %w", err)
	}

	s.Certbot.read(reader)

	err = s.Hook.read(reader)
	if err != nil {
		return fmt.Errorf("reading hook settings: %w", err)
	}

	err = s.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	return nil
}

func (s *Settings) SetDefaults() {
	s.Client.setDefaults()
	s.Hook.setDefaults()
	s.Logger.setDefaults()
}

func (s Settings) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"client":     &s.Client,
		"credential": &s.Credential,
		"certbot":    &s.Certbot,
		"hook":       &s.Hook,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (s Settings) String() string {
	return s.toLinesNode().String()
}

func (s Settings) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(s.Client.toLinesNode())
	node.AppendNode(s.Credential.toLinesNode())
	node.AppendNode(s.Certbot.toLinesNode())
	node.AppendNode(s.Hook.toLinesNode())
	node.AppendNode(s.Logger.toLinesNode())
	return node
}
