package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/2beens/gymweeks/internal"
	"github.com/2beens/gymweeks/internal/config"
	"github.com/2beens/gymweeks/internal/logging"

	log "github.com/sirupsen/logrus"
)

// version can be set at build time: -ldflags "-X main.version=..."
var version = ""

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	dotEnvPath := flag.String("dotenv", "", "optional .env file with secrets")
	flag.Parse()

	if err := run(*env, *configPath, *dotEnvPath); err != nil {
		log.Fatalf("gymweeks service: %s", err)
	}
}

func run(env, configPath, dotEnvPath string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	secrets, err := config.LoadSecrets(ctx, dotEnvPath)
	if err != nil {
		return fmt.Errorf("load secrets: %w", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        secrets.SentryDSN,
		SentryServerName: "gymweeks-service",
	})
	log.WithFields(log.Fields{
		"env":  env,
		"port": cfg.Port,
		"logs": cfg.LogsPath,
	}).Info("starting gymweeks service")

	if err := checkSecrets(secrets); err != nil {
		return err
	}

	versionInfo := resolveVersion()
	log.Debugf("running version: %s", versionInfo)

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			Secrets:                 secrets,
			VersionInfo:             versionInfo,
			HoneycombTracingEnabled: secrets.HoneycombEnabled,
		},
	)
	if err != nil {
		return fmt.Errorf("new server: %w", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, shutting down", receivedSig)
	cancel()

	server.GracefulShutdown()
	return nil
}

// checkSecrets fails on what the service cannot run without and warns about the rest.
func checkSecrets(secrets *config.Secrets) error {
	if secrets.JWTSecret == "" {
		return errors.New("jwt secret not set, use GYMWEEKS_JWT_SECRET")
	}
	if secrets.AdminEmail == "" || secrets.AdminPasswordHash == "" {
		log.Warnln("no bootstrap admin: GYMWEEKS_ADMIN_EMAIL or GYMWEEKS_ADMIN_PASSWORD_HASH not set")
	}
	if secrets.RedisPassword == "" {
		log.Warnln("redis password not set, use GYMWEEKS_REDIS_PASS")
	}
	if secrets.HoneycombEnabled && secrets.HoneycombAPIKey == "" {
		log.Warnln("honeycomb enabled but HONEYCOMB_API_KEY not set")
	}
	if secrets.OtelServiceName == "" {
		log.Debugln("OTEL_SERVICE_NAME not set")
	}
	return nil
}

// resolveVersion prefers the build-time version, then the git commit of the working dir.
func resolveVersion() string {
	if version != "" {
		return version
	}
	out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		log.Tracef("no version info: %s", err)
		return ""
	}
	return strings.TrimSpace(string(out))
}
