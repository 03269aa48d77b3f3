package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
	"github.com/rackcorp/certbot-dns-rackcorp/internal/config"
	"github.com/rackcorp/certbot-dns-rackcorp/internal/hooks"
	"github.com/rackcorp/certbot-dns-rackcorp/internal/models"
	"github.com/rackcorp/certbot-dns-rackcorp/internal/rackcorp"
	"github.com/rackcorp/certbot-dns-rackcorp/internal/resolver"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	err := _main(ctx, reader, os.Args, logger, buildInfo)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

var errCommandUnknown = errors.New("command is unknown")

func _main(ctx context.Context, reader *reader.Reader, args []string,
	logger log.LoggerInterface, buildInfo models.BuildInformation) (err error) {
	if len(args) < 2 { //nolint:gomnd
		return fmt.Errorf("%w: expected CertbotAuthHook or CertbotCleanupHook argument",
			errCommandUnknown)
	}

	switch args[1] {
	case "version", "-version", "--version":
		fmt.Println(buildInfo.VersionString())
		return nil
	case "CertbotAuthHook", "CertbotCleanupHook":
	default:
		return fmt.Errorf("%w: %q", errCommandUnknown, args[1])
	}

	printSplash(buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: config.Client.Timeout}
	defer httpClient.CloseIdleConnections()

	client, err := rackcorp.New(rackcorp.Settings{
		Credential: rackcorp.Credential{
			UUID:   config.Credential.UUID,
			Secret: config.Credential.Secret,
		},
		BaseURL:    config.Client.BaseURL,
		APIVersion: config.Client.APIVersion,
		UserAgent:  "certbot-dns-rackcorp/" + buildInfo.VersionString(),
		HTTPClient: httpClient,
		Logger:     logger.New(log.SetComponent("rackcorp")),
	})
	if err != nil {
		return fmt.Errorf("creating RackCorp API client: %w", err)
	}

	var fetcher hooks.TXTFetcher
	if *config.Hook.ResolverAddress != "" {
		fetcher, err = resolver.New(resolver.Settings{
			Address: config.Hook.ResolverAddress,
			Timeout: config.Hook.ResolverTimeout,
		})
		if err != nil {
			return fmt.Errorf("creating propagation check resolver: %w", err)
		}
	}

	hooksSettings := hooks.Settings{
		Domain:           config.Certbot.Domain,
		Validation:       config.Certbot.Validation,
		PropagationDelay: config.Hook.PropagationDelay,
	}
	hooksLogger := logger.New(log.SetComponent("hooks"))
	runner := hooks.New(client, fetcher, hooksSettings, hooksLogger)

	switch args[1] {
	case "CertbotAuthHook":
		return runner.Auth(ctx)
	case "CertbotCleanupHook":
		return runner.Cleanup(ctx)
	default: // unreachable, checked above
		return fmt.Errorf("%w: %q", errCommandUnknown, args[1])
	}
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "rackcorp",
		Repository: "certbot-dns-rackcorp",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Settings, err error) {
	err = config.Read(reader)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Debug(config.String())
	return config, nil
}
