// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "go.uber.org/zap"

// warnLog receives domain-violation diagnostics. No-op unless the
// caller installs a logger with SetLogger.
var warnLog = zap.NewNop()

// SetLogger directs this package's diagnostics to l. Out-of-domain
// parameters are reported as a "NaNs produced" warning, at most once
// per call. Passing nil restores the default no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	warnLog = l
}

func warnNaNs(name string) {
	warnLog.Warn("NaNs produced", zap.String("dist", name))
}
