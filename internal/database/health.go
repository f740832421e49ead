package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Health is the result of a connectivity check.
type Health struct {
	OK        bool   `json:"ok" example:"true"`                                                                 // Is the database reachable?
	Target    string `json:"target" example:"postgres://localhost:5432/expense_tracker"`                        // Address of the database
	LatencyMS int64  `json:"latencyMs" example:"3"`                                                             // Round trip time of the check in milliseconds
	Message   string `json:"message" example:"DB OK (postgres://localhost:5432/expense_tracker, latency 3 ms)"` // Human readable result
}

// Ping acquires a connection, runs a trivial query and reports the result.
//
// Ping never fails. All errors, including panics in the driver, are
// converted into an unhealthy result describing the failure.
func (p *Provider) Ping(ctx context.Context) (health Health) {
	start := time.Now()
	health.Target = p.Address()

	defer func() {
		if r := recover(); r != nil {
			health.OK = false
			health.Message = Describe(fmt.Errorf("panic during connectivity check: %v", r))
		}
	}()

	h, err := p.Acquire(ctx)
	if err != nil {
		health.Message = Describe(err)
		return health
	}
	defer h.Release()

	health.Target = h.Address

	session, cancel := h.Query(ctx)
	defer cancel()

	var one int
	err = session.Raw("SELECT 1").Scan(&one).Error
	if err != nil {
		health.Message = Describe(err)
		return health
	}

	latency := time.Since(start)
	health.OK = true
	health.LatencyMS = latency.Milliseconds()
	health.Message = fmt.Sprintf("DB OK (%s, latency %d ms)", h.Address, health.LatencyMS)
	return health
}

// Describe returns a single line description of a connection error, its
// root cause and all recovery attempts that failed before it.
func Describe(err error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "DB ERROR: %s: %s", typeName(err), err.Error())

	if root := rootCause(err); root != err {
		fmt.Fprintf(&b, " | cause=%s: %s", typeName(root), root.Error())
	}

	var connectErr *ConnectError
	if errors.As(err, &connectErr) && len(connectErr.Suppressed) > 0 {
		b.WriteString(" | suppressed=")
		for i, s := range connectErr.Suppressed {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%s: %s", typeName(s), s.Error())
		}
	}

	return b.String()
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

func typeName(err error) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
}
