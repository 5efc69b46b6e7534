package observes

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/ncobase/nasadmin/config"
	"github.com/ncobase/nasadmin/version"
)

// NewSentry initializes the sentry client. It reports false without error
// when no endpoint is configured. The returned function flushes buffered
// events.
func NewSentry(appName string, opt *config.Sentry) (bool, func(), error) {
	if opt == nil || opt.Endpoint == "" {
		return false, func() {}, nil
	}

	release := opt.Release
	if release == "" {
		release = version.GetVersionInfo().Version
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              opt.Endpoint,
		AttachStacktrace: true,
		SampleRate:       opt.SampleRate,
		ServerName:       appName,
		Release:          release,
		Environment:      opt.Environment,
	})
	if err != nil {
		return false, func() {}, err
	}
	return true, func() { sentry.Flush(2 * time.Second) }, nil
}
