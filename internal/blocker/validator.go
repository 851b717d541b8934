package blocker

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/debcf/disposable-email-blocker/internal/address"
	"github.com/debcf/disposable-email-blocker/internal/domainlist"
)

// Validator checks submitted addresses of forms that enabled blocking.
type Validator struct {
	toggles  ToggleStore
	domains  DomainStore
	listFile string
}

// NewValidator creates a Validator. listFile is scanned while the domain table does not exist.
func NewValidator(toggles ToggleStore, domains DomainStore, listFile string) (*Validator, error) {
	if toggles == nil || domains == nil {
		return nil, ErrNilStore
	}

	return &Validator{
		toggles:  toggles,
		domains:  domains,
		listFile: listFile,
	}, nil
}

// IsDisposable reports whether value is a valid address on a disposable domain
// submitted to a form that has blocking switched on.
// Disabled forms and malformed addresses are never disposable.
func (v *Validator) IsDisposable(ctx context.Context, formID, value string) (bool, error) {
	toggle, err := v.toggles.Toggle(ctx, formID)
	if err != nil {
		return false, errors.Wrap(err, "failed to read form toggle")
	}

	if toggle != ToggleOn {
		validationsTotal.WithLabelValues(resultDisabled).Inc()
		return false, nil
	}

	addr := address.Sanitize(value)
	if !address.Valid(addr) {
		validationsTotal.WithLabelValues(resultInvalid).Inc()
		return false, nil
	}

	domain := address.Domain(addr)

	disposable, err := v.lookup(ctx, domain)
	if err != nil {
		return false, err
	}

	if disposable {
		validationsTotal.WithLabelValues(resultDisposable).Inc()
		log.Debug().Str("form", formID).Str("domain", domain).Msg("disposable domain rejected")
	} else {
		validationsTotal.WithLabelValues(resultAllowed).Inc()
	}

	return disposable, nil
}

// lookup asks the domain table, or the bundled list while the table is missing.
func (v *Validator) lookup(ctx context.Context, domain string) (bool, error) {
	exists, err := v.domains.Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to check domain table")
	}

	if exists {
		lookupsTotal.WithLabelValues(sourceTable).Inc()

		found, err := v.domains.Contains(ctx, domain)
		if err != nil {
			return false, errors.Wrap(err, "failed to look up domain")
		}

		return found, nil
	}

	lookupsTotal.WithLabelValues(sourceFile).Inc()

	found, err := domainlist.Contains(v.listFile, domain)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug().Str("file", v.listFile).Msg("domain list not found, domain treated as allowed")
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return found, nil
}
