package report

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// JSON writes out as indented JSON.
func JSON(w io.Writer, out Output) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// MsgPack writes out as a single MessagePack document.
func MsgPack(w io.Writer, out Output) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(out)
}
