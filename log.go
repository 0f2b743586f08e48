package drm

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log receives debug output of buffer allocations and mappings. Debug output
// is enabled by setting DRM_DEBUG in the environment.
var Log = logrus.New()

func init() {
	if os.Getenv("DRM_DEBUG") != "" {
		Log.SetLevel(logrus.DebugLevel)
	}
}
