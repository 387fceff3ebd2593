// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package data

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// OpenStore opens the ROOT file behind urlString. gs:// objects are fetched
// from Google Cloud Storage, file:// URLs and plain paths are read locally.
func OpenStore(ctx context.Context, urlString, credentials string) (store *RootStore, err error) {
	if !strings.Contains(urlString, "://") {
		return OpenRootFile(filepath.Clean(urlString))
	}

	var thisUrl *url.URL
	thisUrl, err = url.Parse(urlString)
	if err != nil {
		return
	}

	switch thisUrl.Scheme {
	case "gs":
		store, err = CreateGcsStore(
			ctx,
			thisUrl.Host,
			strings.TrimLeft(thisUrl.Path, "/"),
			[]byte(credentials),
		)
	case "file":
		store, err = OpenRootFile(LocalPath(thisUrl))
	default:
		err = fmt.Errorf("%w: %q", ErrBadScheme, thisUrl.Scheme)
	}
	return
}

// LocalPath follows the file://host/path convention of the rest of the
// tools: the host part is the first path element, relative to the working
// directory, and file:///abs/path is absolute.
func LocalPath(u *url.URL) string {
	if u.Host == "" {
		return filepath.Clean(u.Path)
	}
	return filepath.Clean(fmt.Sprintf("%v/%v", u.Host, strings.TrimLeft(u.Path, "/")))
}
