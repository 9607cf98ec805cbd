// Package patch embeds a preview image into a G-code file.
package patch

import (
	"encoding/base64"
	"io"
)

// WriteBase64 writes data to w in standard, padded Base64.
func WriteBase64(w io.Writer, data []byte) error {
	enc := base64.NewEncoder(base64.StdEncoding, w)
	if _, err := enc.Write(data); err != nil {
		return err
	}

	return enc.Close()
}
