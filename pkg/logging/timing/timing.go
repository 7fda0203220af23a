package timing

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Timeit logs the elapsed time of an operation when the returned func runs,
// intended for use with defer.
func Timeit(op string, detail string) func() {
	start := time.Now()
	return func() {
		logrus.WithField("detail", detail).Debugf("%s took %s", op, time.Since(start))
	}
}
