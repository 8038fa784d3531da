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

package petfriends

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// photoField is the multipart part name the service reads photos from.
const photoField = "pet_photo"

// LoadPhoto reads a photo from disk.
func LoadPhoto(path string) (*openapi_types.File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPhotoPath
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading photo %s: %w", path, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrPhotoIsDirectory, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading photo %s: %w", path, err)
	}

	var file openapi_types.File

	file.InitFromBytes(data, filepath.Base(path))

	return &file, nil
}

// photoContentType guesses the part content type from the file name.
// Unknown extensions, raw camera formats included, go out as an opaque
// byte stream and it is up to the service to sniff them.
func photoContentType(filename string) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); t != "" {
		return t
	}

	return "application/octet-stream"
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeMultipart writes the pet fields followed by the optional photo.
func encodeMultipart(fields PetFields, photo *openapi_types.File) (io.Reader, string, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	for _, field := range fields.fields() {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("writing field %s: %w", field.name, err)
		}
	}

	if photo != nil {
		if err := writePhotoPart(writer, photo); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}

func writePhotoPart(writer *multipart.Writer, photo *openapi_types.File) error {
	data, err := photo.Bytes()
	if err != nil {
		return fmt.Errorf("reading photo data: %w", err)
	}

	filename := photo.Filename()

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, photoField, quoteEscaper.Replace(filename)))
	header.Set("Content-Type", photoContentType(filename))

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("creating photo part: %w", err)
	}

	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("writing photo part: %w", err)
	}

	return nil
}
