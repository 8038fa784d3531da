/*
Copyright 2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fake

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"strings"
)

var (
	// tiffLittleEndian and tiffBigEndian also cover camera raw formats
	// built on TIFF, such as Nikon NEF.
	tiffLittleEndian = []byte("II*\x00")
	tiffBigEndian    = []byte("MM\x00*")
)

// sniffImage returns the image MIME type of data, if it is an image at all.
// Only the content is inspected; file names and declared types are ignored,
// as the real service does.
func sniffImage(data []byte) (string, bool) {
	if contentType := http.DetectContentType(data); strings.HasPrefix(contentType, "image/") {
		return contentType, true
	}

	if bytes.HasPrefix(data, tiffLittleEndian) || bytes.HasPrefix(data, tiffBigEndian) {
		return "image/tiff", true
	}

	return "", false
}

// dataURI renders a photo the way the service returns it.
func dataURI(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
