// Package platform hides the few filesystem differences the generator cares
// about. Unix permission bits are applied directly and skipped on Windows.
package platform
