package manifest

import "errors"

// ErrUnsupportedFormat is returned for a file extension or format name that
// has no decoder.
var ErrUnsupportedFormat = errors.New("manifest: unsupported format")

// ErrInvalidManifest is returned when a manifest decodes but is unusable:
// an entry without a name, or two entries sharing one.
var ErrInvalidManifest = errors.New("manifest: invalid manifest")
