// SPDX-License-Identifier: MIT

package comm

import (
	"io"

	"github.com/sirupsen/logrus"
)

// RankLogger tags every entry of base with the caller's rank, so that
// interleaved output from many ranks stays attributable.
func RankLogger(base logrus.FieldLogger, c Communicator) logrus.FieldLogger {
	if base == nil {
		base = DiscardLogger()
	}
	return base.WithField("rank", c.Rank())
}

// DiscardLogger returns a logger that drops everything; library defaults use it.
func DiscardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// RootOnly returns base on the root rank and a discarding logger elsewhere,
// for summaries that should be printed once per group.
func RootOnly(base logrus.FieldLogger, c Communicator) logrus.FieldLogger {
	if c.Rank() != Root || base == nil {
		return DiscardLogger()
	}
	return base
}
