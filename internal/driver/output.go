package driver

import (
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"kdc/internal/ir"
)

// WriteUnit writes unit to path as msgpack, truncating any existing
// file. This is out.bin's actual content: the real downstream artifact
// is machine code from a backend this pipeline doesn't implement, so
// the generated IR itself is the only thing there is to write.
func WriteUnit(path string, unit *ir.Unit) error {
	f, err := os.Create(path) // #nosec G304 -- path is the CLI's own output file argument
	if err != nil {
		return err
	}
	defer f.Close()
	return msgpack.NewEncoder(f).Encode(unit)
}
