// Package version exposes build information. Set it at build time with:
//
//	go build -ldflags "-X github.com/ncobase/tablekit/version.Version=v1.0.0 \
//	  -X github.com/ncobase/tablekit/version.Revision=$(git rev-parse --short HEAD)"
package version
