package content

import (
	"encoding/hex"
	"strings"

	"github.com/samber/lo"
)

// Leading bytes of PNG, JPEG (JFIF / Exif / ICC), GIF and RIFF containers.
var imageSignatures = []string{
	"89504e47",
	"ffd8ffe0",
	"ffd8ffe1",
	"ffd8ffe2",
	"47494638",
	"52494646",
}

// IsImage checks the first four bytes against the accepted signatures.
// RIFF is accepted as a whole, so WAV or AVI headers pass as well.
func IsImage(data []byte) bool {
	header := data
	if len(header) > 4 {
		header = header[:4]
	}
	encoded := hex.EncodeToString(header)
	return lo.SomeBy(imageSignatures, func(item string) bool {
		return strings.HasPrefix(encoded, item)
	})
}
