// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Domain violations emit one diagnostic per call, not one per
// offending element.
func TestWarnBatching(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	d := LomaxDist{Lambda: []float64{-1}, Kappa: []float64{2}}
	d.PDF([]float64{1, 2, 3, 4, 5}, false)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "NaNs produced", entry.Message)
	assert.Equal(t, "lomax", entry.ContextMap()["dist"])
}

func TestNoWarnOnValidCall(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	d := LomaxDist{Lambda: []float64{1}, Kappa: []float64{2}}
	d.PDF([]float64{1, 2, 3}, false)
	d.CDF([]float64{1, NA}, true, false) // missing is silent
	assert.Zero(t, logs.Len())
}
