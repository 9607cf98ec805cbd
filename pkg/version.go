package sm2lbpp

import "fmt"

const (
	// Version of the post-processor.
	Version = "1.0.0"
	// URL is the project home page.
	URL = "https://github.com/gucio321/sm2lbpp"
)

// Header returns the first line (without ';') of every processed file.
// It starts with the marker the scanner checks for.
func Header() string {
	return fmt.Sprintf("post-processed by sm2lbpp %s (%s)", Version, URL)
}
