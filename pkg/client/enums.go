package client

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a maintenance request.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusRepaired   Status = "repaired"
	StatusScrap      Status = "scrap"
)

// Statuses returns every status in board column order.
func Statuses() []Status {
	return []Status{StatusNew, StatusInProgress, StatusRepaired, StatusScrap}
}

// ParseStatus accepts the wire form and the kebab-case spelling ("in-progress").
func ParseStatus(raw string) (Status, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_")
	for _, s := range Statuses() {
		if string(s) == norm {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", raw)
}

// Terminal reports whether the status ends the request's lifecycle.
func (s Status) Terminal() bool {
	return s == StatusRepaired || s == StatusScrap
}

func (s Status) Valid() bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}

// Label is the human readable column title.
func (s Status) Label() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusInProgress:
		return "In Progress"
	case StatusRepaired:
		return "Repaired"
	case StatusScrap:
		return "Scrap"
	}
	return string(s)
}

// MarshalText always emits the snake_case wire form.
func (s Status) MarshalText() ([]byte, error) {
	parsed, err := ParseStatus(string(s))
	if err != nil {
		return nil, err
	}
	return []byte(parsed), nil
}

// UnmarshalText normalises known spellings and keeps any other value as is,
// so one unexpected status does not fail a whole response. Callers check
// Valid before sending a status back.
func (s *Status) UnmarshalText(text []byte) error {
	if parsed, err := ParseStatus(string(text)); err == nil {
		*s = parsed
		return nil
	}
	*s = Status(text)
	return nil
}

type RequestType string

const (
	RequestTypeCorrective RequestType = "corrective"
	RequestTypePreventive RequestType = "preventive"
)

func ParseRequestType(raw string) (RequestType, error) {
	switch t := RequestType(strings.ToLower(strings.TrimSpace(raw))); t {
	case RequestTypeCorrective, RequestTypePreventive:
		return t, nil
	}
	return "", fmt.Errorf("unknown request type %q", raw)
}

func (t RequestType) MarshalText() ([]byte, error) {
	if _, err := ParseRequestType(string(t)); err != nil {
		return nil, err
	}
	return []byte(t), nil
}

func (t *RequestType) UnmarshalText(text []byte) error {
	parsed, err := ParseRequestType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func ParsePriority(raw string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(raw))); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	}
	return "", fmt.Errorf("unknown priority %q", raw)
}

func (p Priority) MarshalText() ([]byte, error) {
	if _, err := ParsePriority(string(p)); err != nil {
		return nil, err
	}
	return []byte(p), nil
}

func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
