package extract

import (
	"fmt"
	"os"
	"strings"
)

// ReadDump reads the dump file at path into memory as one immutable
// string. Decoding is best-effort UTF-8: invalid byte sequences are
// dropped rather than failing the run. A missing or unreadable file is the
// one fatal condition of the pipeline, so the error names the path.
func ReadDump(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read dump file %s: %w", path, err)
	}
	return strings.ToValidUTF8(string(b), ""), nil
}
