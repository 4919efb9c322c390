package sentinel

import (
	"context"
	"fmt"

	"github.com/oshokin/camera-sentinel/internal/camera"
	"github.com/oshokin/camera-sentinel/internal/config"
	"github.com/oshokin/camera-sentinel/internal/logger"
	"github.com/oshokin/camera-sentinel/internal/notify"
)

// Options controls a single monitoring pass.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
}

// Run performs one check-and-notify pass: load configuration, log in to
// the camera service, resolve the schedule against every base station and
// email the operator on mismatch. Any fatal condition aborts the pass and
// is returned to the caller for a non-zero exit.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "camera-sentinel")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	client := camera.New(camera.Config{
		BaseURL:  cfg.Camera.BaseURL,
		Username: cfg.Camera.Username,
		Password: cfg.Camera.Password,
		Timeout:  cfg.Timeout,
	})

	if err = client.Login(ctx); err != nil {
		return fmt.Errorf("camera login: %w", err)
	}

	logger.InfoKV(ctx, "Connected to camera service", "base_url", cfg.Camera.BaseURL)

	sender := notify.NewSMTPSender(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUsername,
		cfg.Email.SMTPPassword,
		cfg.Timeout,
	)

	return newService(cfg, client, sender, nil).check(ctx)
}
