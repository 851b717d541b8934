package plugin

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/debcf/disposable-email-blocker/internal/blocker"
	"github.com/debcf/disposable-email-blocker/internal/db/controller/formtoggle"
	"github.com/debcf/disposable-email-blocker/internal/hooks"
)

var errUnexpectedPayload = errors.New("unexpected event payload")

func (p *Plugin) onActivate(_ context.Context, _ *hooks.Event) error {
	if p.scheduleSync() {
		log.Info().Dur("delay", p.Config.Domains.SyncDelay).Msg("domain sync scheduled on activation")
	}

	return nil
}

func (p *Plugin) onDeactivate(_ context.Context, _ *hooks.Event) error {
	log.Info().Msg("deactivated, stored data is kept")

	return nil
}

// onUninstall runs every cleanup step even when an earlier one fails.
func (p *Plugin) onUninstall(ctx context.Context, _ *hooks.Event) error {
	var result *multierror.Error

	p.Queue.Cancel(hooks.EventSyncDomains)

	if err := p.Domains.Drop(ctx); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "failed to drop domain table"))
	}

	if err := p.Versions.Clear(ctx); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "failed to clear sync version"))
	}

	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	log.Info().Msg("uninstalled, domain table dropped")

	return nil
}

func (p *Plugin) onAdminNotices(ctx context.Context, e *hooks.Event) error {
	payload, ok := e.Payload.(*hooks.NoticesPayload)
	if !ok {
		return errUnexpectedPayload
	}

	if !p.Config.Host.Active {
		payload.Notices = append(payload.Notices, p.hostNotice())

		log.Warn().Str("host", p.Config.Host.Name).Msg("host form plugin is not active")

		return nil
	}

	if p.Queue.Scheduled(hooks.EventSyncDomains) {
		return nil
	}

	needed, err := p.Syncer.NeedsSync(ctx)
	if err != nil {
		return err
	}

	if needed && p.scheduleSync() {
		log.Info().Str("version", blocker.DBVersion).Msg("domain data outdated, sync scheduled")
	}

	return nil
}

func (p *Plugin) onSaveForm(ctx context.Context, e *hooks.Event) error {
	payload, ok := e.Payload.(*hooks.SaveFormPayload)
	if !ok {
		return errUnexpectedPayload
	}

	if !payload.Editor {
		log.Warn().Str("form", payload.FormID).Msg("form settings save without editor rights ignored")
		return nil
	}

	value := formtoggle.ValueOff
	if payload.Enabled {
		value = formtoggle.ValueOn
	}

	if err := p.Toggles.SetToggle(ctx, payload.FormID, value); err != nil {
		return errors.Wrap(err, "failed to save form toggle")
	}

	payload.Saved = true

	log.Info().Str("form", payload.FormID).Str("value", value).Msg("form settings saved")

	return nil
}

func (p *Plugin) onSyncDomains(ctx context.Context, _ *hooks.Event) error {
	return p.Syncer.Sync(ctx)
}

func (p *Plugin) onMessages(_ context.Context, e *hooks.Event) error {
	payload, ok := e.Payload.(*hooks.MessagesPayload)
	if !ok {
		return errUnexpectedPayload
	}

	if payload.Messages == nil {
		payload.Messages = make(map[string]hooks.Message)
	}

	payload.Messages[blocker.MessageKey] = hooks.Message{
		Description: blocker.MessageDescription,
		Default:     p.message(),
	}

	return nil
}

// onValidateEmail never fails the dispatch, store errors let the submission pass.
func (p *Plugin) onValidateEmail(ctx context.Context, e *hooks.Event) error {
	payload, ok := e.Payload.(*hooks.ValidationPayload)
	if !ok {
		return errUnexpectedPayload
	}

	if payload.Result.Invalid {
		return nil
	}

	disposable, err := p.Validator.IsDisposable(ctx, payload.FormID, payload.Value)
	if err != nil {
		log.Error().Err(err).Str("form", payload.FormID).Str("field", payload.Field).
			Msg("disposable check failed, submission passes")

		return nil
	}

	if disposable {
		payload.Invalidate(blocker.MessageKey, p.message())
	}

	return nil
}
