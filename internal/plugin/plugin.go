// Package plugin wires the disposable email check into the host form system: lifecycle
// events, admin notices, per form settings and the validate hooks.
package plugin

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/debcf/disposable-email-blocker/internal/blocker"
	"github.com/debcf/disposable-email-blocker/internal/config"
	"github.com/debcf/disposable-email-blocker/internal/db/controller/formtoggle"
	"github.com/debcf/disposable-email-blocker/internal/hooks"
	"github.com/debcf/disposable-email-blocker/internal/scheduler"
)

const (
	noticeLevelWarning = "warning"
)

type (
	// DomainTable is the part of the domain store the lifecycle needs.
	DomainTable interface {
		Drop(ctx context.Context) error
	}

	// VersionClearer forgets the synced version.
	VersionClearer interface {
		Clear(ctx context.Context) error
	}

	// ToggleWriter reads and writes form toggles.
	ToggleWriter interface {
		Toggle(ctx context.Context, formID string) (string, error)
		SetToggle(ctx context.Context, formID, value string) error
	}

	// Options are the dependencies of a Plugin.
	Options struct {
		Config    *config.Config
		Queue     *scheduler.Queue
		Syncer    *blocker.Syncer
		Validator *blocker.Validator
		Domains   DomainTable
		Versions  VersionClearer
		Toggles   ToggleWriter
	}

	// Result is the outcome of validating one email field.
	Result struct {
		Valid      bool   `json:"valid"`
		MessageKey string `json:"messageKey,omitempty"`
		Message    string `json:"message,omitempty"`
	}

	// Plugin owns the event table and dispatches host events to the blocker.
	Plugin struct {
		Options

		registry *hooks.Registry
	}
)

// New creates a Plugin and subscribes all of its handlers.
func New(opts Options) (*Plugin, error) {
	if opts.Config == nil || opts.Queue == nil || opts.Syncer == nil || opts.Validator == nil ||
		opts.Domains == nil || opts.Versions == nil || opts.Toggles == nil {
		return nil, ErrNilDependency
	}

	p := &Plugin{
		Options:  opts,
		registry: hooks.NewRegistry(),
	}

	p.subscribe()

	return p, nil
}

func (p *Plugin) subscribe() {
	r := p.registry

	r.Subscribe(hooks.EventActivate, hooks.DefaultPriority, hooks.HandlerFunc(p.onActivate))
	r.Subscribe(hooks.EventDeactivate, hooks.DefaultPriority, hooks.HandlerFunc(p.onDeactivate))
	r.Subscribe(hooks.EventUninstall, hooks.DefaultPriority, hooks.HandlerFunc(p.onUninstall))
	r.Subscribe(hooks.EventAdminNotices, hooks.DefaultPriority, hooks.HandlerFunc(p.onAdminNotices))
	r.Subscribe(hooks.EventSaveForm, hooks.DefaultPriority, hooks.HandlerFunc(p.onSaveForm))
	r.Subscribe(hooks.EventSyncDomains, hooks.DefaultPriority, hooks.HandlerFunc(p.onSyncDomains))
	r.Subscribe(hooks.EventMessages, hooks.DefaultPriority, hooks.HandlerFunc(p.onMessages))
	r.Subscribe(hooks.EventValidateEmail, hooks.ValidateEmailPriority, hooks.HandlerFunc(p.onValidateEmail))
	r.Subscribe(hooks.EventValidateEmailReq, hooks.ValidateEmailPriority, hooks.HandlerFunc(p.onValidateEmail))
}

// Registry returns the event table.
func (p *Plugin) Registry() *hooks.Registry {
	return p.registry
}

// Activate schedules the first domain sync.
func (p *Plugin) Activate(ctx context.Context) error {
	return p.registry.Dispatch(ctx, hooks.EventActivate, nil)
}

// Deactivate keeps all data, a later activation continues where it left off.
func (p *Plugin) Deactivate(ctx context.Context) error {
	return p.registry.Dispatch(ctx, hooks.EventDeactivate, nil)
}

// Uninstall drops the domain table, cancels a pending sync and forgets the synced version.
func (p *Plugin) Uninstall(ctx context.Context) error {
	return p.registry.Dispatch(ctx, hooks.EventUninstall, nil)
}

// AdminNotices returns the notices to show on an admin page and schedules a sync when
// the stored data is outdated.
func (p *Plugin) AdminNotices(ctx context.Context) ([]hooks.Notice, error) {
	payload := &hooks.NoticesPayload{}

	if err := p.registry.Dispatch(ctx, hooks.EventAdminNotices, payload); err != nil {
		return nil, err
	}

	return payload.Notices, nil
}

// SaveFormSettings switches blocking for formID. Only editors may do so.
func (p *Plugin) SaveFormSettings(ctx context.Context, formID string, enabled, editor bool) error {
	payload := &hooks.SaveFormPayload{
		FormID:  formID,
		Enabled: enabled,
		Editor:  editor,
	}

	if err := p.registry.Dispatch(ctx, hooks.EventSaveForm, payload); err != nil {
		return err
	}

	if !payload.Saved {
		return ErrNotEditor
	}

	return nil
}

// FormSettings reports whether blocking is switched on for formID.
func (p *Plugin) FormSettings(ctx context.Context, formID string) (bool, error) {
	v, err := p.Toggles.Toggle(ctx, formID)
	if err != nil {
		return false, errors.Wrap(err, "failed to read form toggle")
	}

	return v == formtoggle.ValueOn, nil
}

// Messages returns the message catalogue entries of this service.
func (p *Plugin) Messages(ctx context.Context) map[string]hooks.Message {
	payload := &hooks.MessagesPayload{Messages: make(map[string]hooks.Message)}

	if err := p.registry.Dispatch(ctx, hooks.EventMessages, payload); err != nil {
		log.Error().Err(err).Msg("can't collect messages")
	}

	return payload.Messages
}

// Validate runs the validate hooks for one email field. Required fields use the
// required field event.
func (p *Plugin) Validate(ctx context.Context, formID, field, value string, required bool) (Result, error) {
	event := hooks.EventValidateEmail
	if required {
		event = hooks.EventValidateEmailReq
	}

	payload := &hooks.ValidationPayload{
		FormID:   formID,
		Field:    field,
		Value:    value,
		Required: required,
	}

	if err := p.registry.Dispatch(ctx, event, payload); err != nil {
		return Result{}, err
	}

	return Result{
		Valid:      !payload.Result.Invalid,
		MessageKey: payload.Result.MessageKey,
		Message:    payload.Result.Message,
	}, nil
}

// SyncNow runs the domain sync in the calling goroutine.
func (p *Plugin) SyncNow(ctx context.Context) error {
	return p.registry.Dispatch(ctx, hooks.EventSyncDomains, nil)
}

// message is the text shown to a submitter using a disposable address.
func (p *Plugin) message() string {
	if p.Config.Messages.DisposableEmailsFound != "" {
		return p.Config.Messages.DisposableEmailsFound
	}

	return blocker.DefaultMessage
}

// scheduleSync queues a sync unless one is already pending.
func (p *Plugin) scheduleSync() bool {
	return p.Queue.ScheduleOnce(hooks.EventSyncDomains, p.Config.Domains.SyncDelay, func(ctx context.Context) error {
		return p.registry.Dispatch(ctx, hooks.EventSyncDomains, nil)
	})
}

func (p *Plugin) hostNotice() hooks.Notice {
	title := p.Config.Title
	if title == "" {
		title = "Disposable Email Blocker"
	}

	msg := fmt.Sprintf("%s requires %s plugin to be active!", title, p.Config.Host.Name)
	if p.Config.Host.PluginURL != "" {
		msg = fmt.Sprintf("%s requires %s (%s) plugin to be active!", title, p.Config.Host.Name, p.Config.Host.PluginURL)
	}

	return hooks.Notice{
		Level:       noticeLevelWarning,
		Message:     msg,
		Dismissible: true,
	}
}
