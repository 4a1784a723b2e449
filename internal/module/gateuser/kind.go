// Package gateuser serves the gate staff account list screen.
package gateuser

import (
	"strings"
	"time"

	"github.com/simp-lee/gateadmin/internal/domain"
	"github.com/simp-lee/gateadmin/internal/query"
)

// Kind returns the collection configuration for gate users. Newest accounts
// are listed first.
func Kind() query.Kind[domain.GateUser] {
	return query.Kind[domain.GateUser]{
		Name:  "gate user",
		ID:    func(u domain.GateUser) string { return u.ID },
		SetID: func(u *domain.GateUser, id string) { u.ID = id },
		Search: []query.Field[domain.GateUser]{
			func(u domain.GateUser) string { return u.Username },
			func(u domain.GateUser) string { return u.Name },
			func(u domain.GateUser) string { return u.Phone },
			func(u domain.GateUser) string { return u.CardNo },
		},
		Facets: map[string]query.Field[domain.GateUser]{
			"role":   func(u domain.GateUser) string { return string(u.Role) },
			"status": func(u domain.GateUser) string { return string(u.Status) },
		},
		Compare:   query.Newest(func(u domain.GateUser) time.Time { return u.CreatedAt }),
		Key:       func(u domain.GateUser) string { return u.Username },
		Validate:  validate,
		Init:      initUser,
		Merge:     merge,
		SetStatus: setStatus,
	}
}

// NewController builds a gate user controller over seed.
func NewController(seed []domain.GateUser, opts ...query.Option) (*query.Controller[domain.GateUser], error) {
	return query.New(Kind(), seed, opts...)
}

func validate(u domain.GateUser) error {
	switch {
	case strings.TrimSpace(u.Username) == "":
		return domain.RequiredError("username")
	case strings.TrimSpace(u.Name) == "":
		return domain.RequiredError("name")
	case u.Role == "":
		return domain.RequiredError("role")
	case !u.Role.Valid():
		return domain.InvalidValueError("role", string(u.Role))
	case u.Status != "" && !u.Status.Valid():
		return domain.InvalidValueError("status", string(u.Status))
	}
	return nil
}

func initUser(u *domain.GateUser, now time.Time) {
	u.CreatedAt = now
	u.UpdatedAt = now
	u.LoginCount = 0
	u.LastLoginAt = time.Time{}
	if u.Status == "" {
		u.Status = domain.GateUserActive
	}
}

func merge(dst *domain.GateUser, draft domain.GateUser, now time.Time) {
	dst.Username = draft.Username
	dst.Name = draft.Name
	dst.Phone = draft.Phone
	dst.CardNo = draft.CardNo
	dst.Role = draft.Role
	if draft.Status != "" {
		dst.Status = draft.Status
	}
	dst.UpdatedAt = now
}

func setStatus(u *domain.GateUser, status string, now time.Time) error {
	s := domain.GateUserStatus(status)
	if !s.Valid() {
		return domain.InvalidValueError("status", status)
	}
	u.Status = s
	u.UpdatedAt = now
	return nil
}
