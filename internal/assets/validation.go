package assets

import (
	"fmt"
	"strings"

	"github.com/alnah/go-cv2docx/internal/fileutil"
)

// maxAssetNameLength bounds set names; they become directory names.
const maxAssetNameLength = 64

// ValidateAssetName checks that a set name is a single, dot-free path
// element. Returns ErrInvalidAssetName otherwise.
func ValidateAssetName(name string) error {
	if err := fileutil.ValidateName(name); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidAssetName, name, err)
	}
	if strings.Contains(name, ".") || len(name) > maxAssetNameLength {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
