// Package version provides build information for the nasadmin binaries.
//
// Set the values at build time with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/ncobase/nasadmin/version.Version=1.2.3 \
//	  -X github.com/ncobase/nasadmin/version.Branch=main \
//	  -X github.com/ncobase/nasadmin/version.Revision=abc1234 \
//	  -X 'github.com/ncobase/nasadmin/version.BuiltAt=$(date)'" ./cmd/nasadmin
//
// Anything left unset is filled from the VCS stamp embedded by the go
// toolchain, when there is one:
//
//	info := version.GetVersionInfo()
//	fmt.Println(info.String())
//
//	// Version: 1.2.3
//	// Branch: main
//	// Revision: abc1234
//	// Built At: 2026-01-15T10:30:00Z
//	// Go Version: go1.24.2
package version
