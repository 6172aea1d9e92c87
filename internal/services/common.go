package services

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/utils"
)

// EventPublisher is the part of *eventbus.Bus the services need.
type EventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event)
}

// actorID returns the authenticated user or 0 for anonymous calls.
func actorID(ctx context.Context) uint64 {
	id, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return 0
	}
	return id
}

// notFoundAs replaces ErrNotFound with a 404 carrying message and passes any
// other error through.
func notFoundAs(err error, message string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError(message)
	}
	return err
}

// parseOptionalDate turns an optional date string into a time; an empty string
// clears the value.
func parseOptionalDate(raw *string, field string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil, nil
	}
	t, err := utils.ParseTime(value)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("invalid %s: %q", field, value)
	}
	return &t, nil
}

// dateValue stores a cleared date as SQL NULL.
func dateValue(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(utils.DateLayout)
	return &s
}
