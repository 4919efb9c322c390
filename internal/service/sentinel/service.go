package sentinel

import (
	"context"
	"fmt"
	"time"

	"github.com/oshokin/camera-sentinel/internal/camera"
	"github.com/oshokin/camera-sentinel/internal/config"
	"github.com/oshokin/camera-sentinel/internal/domain/mode"
	"github.com/oshokin/camera-sentinel/internal/domain/schedule"
	"github.com/oshokin/camera-sentinel/internal/logger"
	"github.com/oshokin/camera-sentinel/internal/notify"
)

// ModeSource provides the observed camera modes, one per base station.
type ModeSource interface {
	BaseStations(ctx context.Context) ([]camera.BaseStation, error)
}

// Notifier delivers a notification message synchronously.
type Notifier interface {
	Send(ctx context.Context, msg notify.Message) error
}

// service runs the check-and-notify pass against injected collaborators.
// It is unexported to keep the wiring decoupled from the logic.
type service struct {
	// cfg is the validated run configuration.
	cfg *config.Config
	// source observes the camera modes.
	source ModeSource
	// notifier delivers mismatch notifications.
	notifier Notifier
	// now supplies the reference instant, replaceable in tests.
	now func() time.Time
}

// newService wires a service from its collaborators.
func newService(cfg *config.Config, source ModeSource, notifier Notifier, now func() time.Time) *service {
	if now == nil {
		now = time.Now
	}

	return &service{
		cfg:      cfg,
		source:   source,
		notifier: notifier,
		now:      now,
	}
}

// check performs one full pass: build the schedule, observe every base
// station and notify on each mismatch. The first fatal condition aborts
// the pass; there is no partial-success mode.
func (s *service) check(ctx context.Context) error {
	now := s.now()

	sched, err := schedule.Build(
		schedule.SplitList(s.cfg.Schedule.Entries),
		s.cfg.Schedule.Definitions,
		s.cfg.Schedule.Clock,
		now,
	)
	if err != nil {
		return fmt.Errorf("build schedule: %w", err)
	}

	stations, err := s.source.BaseStations(ctx)
	if err != nil {
		return fmt.Errorf("observe camera modes: %w", err)
	}

	if len(stations) == 0 {
		logger.Warn(ctx, "No base stations found, nothing to check")

		return nil
	}

	recipients := schedule.SplitList(s.cfg.Email.Recipients)

	// All base stations are assumed to be on the same schedule.
	for _, station := range stations {
		logger.InfoKV(ctx, "Checking base station", "device_id", station.DeviceID, "name", station.DeviceName)

		if err = s.checkStation(ctx, sched, station, now, recipients); err != nil {
			return err
		}
	}

	return nil
}

// checkStation resolves the expected mode at now and notifies when the
// station's observed mode deviates from it.
func (s *service) checkStation(
	ctx context.Context,
	sched schedule.Schedule,
	station camera.BaseStation,
	now time.Time,
	recipients []string,
) error {
	entry, err := sched.ActiveAt(now)
	if err != nil {
		return fmt.Errorf("resolve schedule at %s: %w", now.Format("15:04"), err)
	}

	comparison := mode.Compare(entry.Mode, station.Mode)

	logger.Infof(ctx, "Expected camera to be in mode %s, it's in %s", comparison.Expected, comparison.Observed)

	if comparison.Matches {
		logger.Info(ctx, "Camera is in the expected mode")

		return nil
	}

	logger.Info(ctx, "Camera is not in the expected mode, notifying")

	content := fmt.Sprintf("Camera in %s should be %s", comparison.Observed, comparison.Expected)
	message := notify.Message{
		From:    s.cfg.Email.Originator,
		To:      recipients,
		Subject: content,
		Body:    content,
	}

	logger.InfoKV(ctx, "Sending notification", "originator", message.From, "recipients", recipients)

	if err = s.notifier.Send(ctx, message); err != nil {
		return fmt.Errorf("notify %v from %s: %w", recipients, message.From, err)
	}

	logger.Info(ctx, "Notification sent")

	return nil
}
