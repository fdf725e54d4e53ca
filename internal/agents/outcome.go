// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package agents

// Mode tags how a synthesis result was produced.
type Mode string

const (
	// ModeGenerated marks output produced by a remote AI provider.
	ModeGenerated Mode = "generated"
	// ModeFallback marks deterministic locally computed output, used when
	// no provider is configured or a provider call failed.
	ModeFallback Mode = "fallback"
)

// Outcome describes how a synthesizer produced its value. The external
// contract always reports success; Outcome lets callers log and test
// degraded results without changing the wire shape.
type Outcome struct {
	Mode   Mode
	Reason string // empty when Mode is ModeGenerated
}

// Generated returns a nominal outcome.
func Generated() Outcome {
	return Outcome{Mode: ModeGenerated}
}

// Fallback returns a degraded outcome with the reason the remote path
// was not taken.
func Fallback(reason string) Outcome {
	return Outcome{Mode: ModeFallback, Reason: reason}
}

// Degraded reports whether the value came from the fallback path.
func (o Outcome) Degraded() bool {
	return o.Mode == ModeFallback
}
