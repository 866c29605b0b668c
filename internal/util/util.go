// Package util holds internal utility (or helper) functions.
package util

import (
	klog "k8s.io/klog/v2"
)

// ReportError reports an error to the log, but otherwise ignores it. Meant
// for cleanup paths (deferred closes and removals) where there is nothing
// else to do with the error.
func ReportError(err error) {
	if err != nil {
		klog.Warningf("Unhandled error: %+v", err)
	}
}
